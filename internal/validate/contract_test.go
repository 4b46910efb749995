package validate

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func validContractDraft() types.ContractDraft {
	return types.ContractDraft{
		SupplierID:   "sup-1",
		SupplierName: "Construtora Kilamba, Lda",
		Reference:    "CT-2026-001",
		Object:       "Reabilitação de estradas",
		Description:  "Reabilitação do troço Lubango-Matala",
		StartDate:    "2026-01-01",
		EndDate:      "2026-12-31",
		Amount:       "1500000.50",
		Status:       "Em andamento",
	}
}

func TestContractValidDraft(t *testing.T) {
	errs := Contract(validContractDraft())
	assert.True(t, Valid(errs), "expected no errors, got %v", errs)
}

func TestContractSupplierRequired(t *testing.T) {
	draft := validContractDraft()
	draft.SupplierID = ""

	errs := Contract(draft)
	assert.Equal(t, "Por favor selecione um fornecedor", errs["supplierId"])

	// Name alone is not enough either.
	draft = validContractDraft()
	draft.SupplierName = ""
	errs = Contract(draft)
	assert.Equal(t, "Por favor selecione um fornecedor", errs["supplierId"])
}

func TestContractAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"positive", "100", true},
		{"decimal", "99.99", true},
		{"zero", "0", false},
		{"negative", "-5", false},
		{"not a number", "abc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validContractDraft()
			draft.Amount = tt.amount

			errs := Contract(draft)
			if tt.valid {
				assert.NotContains(t, errs, "amount")
			} else {
				assert.Equal(t, MsgPositiveNumber, errs["amount"])
			}
		})
	}
}

func TestContractDateOrder(t *testing.T) {
	draft := validContractDraft()
	draft.StartDate = "2026-06-01"
	draft.EndDate = "2026-05-31"

	errs := Contract(draft)
	assert.Equal(t, MsgEndBeforeStart, errs["endDate"])

	// Same-day contracts are allowed.
	draft.EndDate = "2026-06-01"
	errs = Contract(draft)
	assert.NotContains(t, errs, "endDate")
}

func TestContractRequiredFields(t *testing.T) {
	errs := Contract(types.ContractDraft{})

	for _, field := range []string{"reference", "description", "startDate", "endDate", "object", "status"} {
		assert.Equal(t, MsgRequired, errs[field], "field %s", field)
	}
}
