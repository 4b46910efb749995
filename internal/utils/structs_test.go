package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type taggedRow struct {
	ID        string     `db:"id"`
	Label     string     `db:"label"`
	Ignored   string     `db:"-"`
	UpdatedAt *time.Time `db:"updated_at"`
}

func TestStructTagValues(t *testing.T) {
	columns := StructTagValues(taggedRow{})

	assert.Equal(t, []string{"id", "label", "updated_at"}, columns)
}

func TestStructToMap(t *testing.T) {
	now := time.Now()
	row := &taggedRow{ID: "x1", Label: "Pasta", UpdatedAt: &now}

	m := StructToMap(row)

	assert.Equal(t, "x1", m["id"])
	assert.Equal(t, "Pasta", m["label"])
	assert.Equal(t, &now, m["updated_at"])
	assert.NotContains(t, m, "-")
}

func TestNanoIDShape(t *testing.T) {
	a := NanoID()
	b := NanoID()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
