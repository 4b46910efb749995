package validate

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func validDocumentDraft() types.DocumentDraft {
	return types.DocumentDraft{
		Reference:   "DOC-2026-014",
		Title:       "Acta de abertura de propostas",
		Description: "Concurso público 04/2026",
		StartDate:   "2026-03-10",
	}
}

func TestDocumentCreate(t *testing.T) {
	errs := DocumentCreate(validDocumentDraft())
	assert.True(t, Valid(errs), "expected no errors, got %v", errs)

	errs = DocumentCreate(types.DocumentDraft{})
	for _, field := range []string{"reference", "title", "description", "startDate"} {
		assert.Equal(t, MsgRequired, errs[field], "field %s", field)
	}

	// Creation does not require files.
	assert.NotContains(t, errs, "files")
}

func TestDocumentUpdateFileRule(t *testing.T) {
	t.Run("no files at all", func(t *testing.T) {
		errs := DocumentUpdate(validDocumentDraft())
		assert.Equal(t, "Por favor mantenha ou adicione pelo menos um ficheiro", errs["files"])
	})

	t.Run("kept existing file", func(t *testing.T) {
		draft := validDocumentDraft()
		draft.ExistingFiles = []string{"https://bucket.s3.eu-west-1.amazonaws.com/documents/1_acta.pdf"}

		errs := DocumentUpdate(draft)
		assert.True(t, Valid(errs), "expected no errors, got %v", errs)
	})

	t.Run("new upload only", func(t *testing.T) {
		draft := validDocumentDraft()
		draft.NewFileCount = 2

		errs := DocumentUpdate(draft)
		assert.True(t, Valid(errs), "expected no errors, got %v", errs)
	})
}
