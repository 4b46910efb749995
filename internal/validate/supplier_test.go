package validate

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func validSupplierDraft() types.SupplierDraft {
	return types.SupplierDraft{
		Name:      "Construtora Kilamba, Lda",
		NIF:       "5401234567",
		Provincia: "Luanda",
		Telefone1: "923111222",
		Email:     "geral@kilamba.ao",
		Inicio:    "2020-01-15",
		Tipo:      "Serviço",
		Descricao: "Construção civil e obras públicas",
		Status:    "Activo",
		Address:   "Rua 12, Talatona",
		Registro:  "2019-11-02",
		Natureza:  "Sociedade por Quotas",
		Socios: []types.Socio{
			{Responsavel: "João Manuel", TelefoneResponsavel: "923000111", CargoResponsavel: "Gerente"},
		},
	}
}

func TestSupplierValidDraft(t *testing.T) {
	errs := Supplier(validSupplierDraft())
	assert.True(t, Valid(errs), "expected no errors, got %v", errs)
}

func TestSupplierStepEmpresa(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*types.SupplierDraft)
		field    string
		expected string
	}{
		{
			name:     "missing name",
			mutate:   func(d *types.SupplierDraft) { d.Name = "  " },
			field:    "name",
			expected: "Nome da empresa é obrigatório",
		},
		{
			name:     "missing nif",
			mutate:   func(d *types.SupplierDraft) { d.NIF = "" },
			field:    "nif",
			expected: "NIF é obrigatório",
		},
		{
			name:     "non numeric nif",
			mutate:   func(d *types.SupplierDraft) { d.NIF = "54A123" },
			field:    "nif",
			expected: "NIF deve conter apenas números",
		},
		{
			name:     "missing natureza",
			mutate:   func(d *types.SupplierDraft) { d.Natureza = "" },
			field:    "natureza",
			expected: "Natureza jurídica é obrigatória",
		},
		{
			name:     "missing registro",
			mutate:   func(d *types.SupplierDraft) { d.Registro = "" },
			field:    "registro",
			expected: "Data de abertura é obrigatória",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validSupplierDraft()
			tt.mutate(&draft)

			errs := SupplierStep(draft, SupplierStepEmpresa)
			assert.Equal(t, tt.expected, errs[tt.field])
		})
	}
}

func TestSupplierStepContactos(t *testing.T) {
	draft := validSupplierDraft()
	draft.Email = "not-an-email"
	draft.Telefone1 = ""

	errs := SupplierStep(draft, SupplierStepContactos)
	assert.Equal(t, "Email inválido", errs["email"])
	assert.Equal(t, "Telefone 1 é obrigatório", errs["telefone1"])
	assert.NotContains(t, errs, "address")
}

func TestSupplierStepSocios(t *testing.T) {
	t.Run("no socios", func(t *testing.T) {
		draft := validSupplierDraft()
		draft.Socios = nil

		errs := SupplierStep(draft, SupplierStepSocios)
		assert.Equal(t, "Pelo menos um sócio é obrigatório", errs["socios"])
	})

	t.Run("incomplete second socio", func(t *testing.T) {
		draft := validSupplierDraft()
		draft.Socios = append(draft.Socios, types.Socio{Responsavel: "Maria Silva"})

		errs := SupplierStep(draft, SupplierStepSocios)
		assert.NotContains(t, errs, "socio0responsavel")
		assert.Equal(t, "Telefone é obrigatório", errs["socio1telefone"])
		assert.Equal(t, "Cargo é obrigatório", errs["socio1cargo"])
	})
}

func TestSupplierStepOutras(t *testing.T) {
	draft := validSupplierDraft()
	draft.Inicio = ""
	draft.Tipo = ""
	draft.Descricao = " "

	errs := SupplierStep(draft, SupplierStepOutras)
	assert.Equal(t, "Início do vínculo é obrigatório", errs["inicio"])
	assert.Equal(t, "Tipo é obrigatório", errs["tipo"])
	assert.Equal(t, "Descrição é obrigatória", errs["descricao"])
}

func TestSupplierAggregatesAllSteps(t *testing.T) {
	errs := Supplier(types.SupplierDraft{})

	// One error per step proves every step ran.
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "socios")
	assert.Contains(t, errs, "tipo")
}
