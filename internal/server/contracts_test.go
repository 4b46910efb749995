package server

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestSupplierNameByID(t *testing.T) {
	suppliers := []*types.Supplier{
		{ID: "s1", Name: "Construtora Kilamba, Lda"},
		{ID: "s2", Name: "Electro Huíla"},
	}

	assert.Equal(t, "Electro Huíla", supplierNameByID(suppliers, "s2"))
	assert.Equal(t, "", supplierNameByID(suppliers, "missing"))
	assert.Equal(t, "", supplierNameByID(suppliers, ""))
}

// A creation link from a supplier page carries ?supplierId; the form
// must come back with both the select and the hidden denormalized name
// already bound.
func TestContractFormPreselectedSupplier(t *testing.T) {
	suppliers := []*types.Supplier{
		{ID: "s1", Name: "Construtora Kilamba, Lda"},
		{ID: "s2", Name: "Electro Huíla"},
	}

	data := &types.ContractFormPageData{
		BasePageData: types.BasePageData{Title: "Registar Contrato"},
		Draft: types.ContractDraft{
			SupplierID:   "s2",
			SupplierName: supplierNameByID(suppliers, "s2"),
		},
		FieldErrors: map[string]string{},
		Suppliers:   suppliers,
	}

	body := renderPage(t, "page.contracts.create", data)

	assert.Contains(t, body, `<option value="s2" data-name="Electro Huíla" selected>`)
	assert.Contains(t, body, `name="supplierName" value="Electro Huíla"`)
}
