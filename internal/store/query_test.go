package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueriesOrderNewestFirst(t *testing.T) {
	builders := map[string]sq.SelectBuilder{
		"suppliers": supplierListQuery(),
		"contracts": contractListQuery(),
		"documents": documentListQuery(),
	}

	for name, builder := range builders {
		t.Run(name, func(t *testing.T) {
			query, _, err := builder.ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, "ORDER BY created_at DESC")
			assert.Contains(t, query, "fornecedores."+name)
		})
	}
}

func TestContractsBySupplierFilter(t *testing.T) {
	query, args, err := contractListQuery().
		Where(sq.Eq{"supplier_id": "sup-1"}).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "supplier_id = $1")
	assert.Equal(t, []any{"sup-1"}, args)
}

func TestDocumentsByFolderFilter(t *testing.T) {
	query, args, err := documentListQuery().
		Where(sq.Eq{"folder_id": "fold-1"}).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "folder_id = $1")
	assert.Equal(t, []any{"fold-1"}, args)
}

func TestColumnsDerivedFromTags(t *testing.T) {
	assert.Contains(t, supplierColumns, "socios")
	assert.Contains(t, contractColumns, "file_urls")
	assert.Contains(t, documentColumns, "folder_name")
	assert.Contains(t, candidateColumns, "accept_terms")
	assert.Contains(t, userColumns, "role")

	// Credentials never reach the profile table.
	assert.NotContains(t, userColumns, "password")
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	assert.Equal(t, "x", nullable("x"))
}
