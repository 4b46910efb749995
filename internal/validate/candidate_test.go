package validate

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func validCandidateDraft() types.CandidateDraft {
	return types.CandidateDraft{
		CompanyName:   "Tecnologias do Namibe, SA",
		NIF:           "5409876543",
		Email:         "comercial@tecnamibe.ao",
		Phone:         "924555666",
		Address:       "Avenida Marginal, Moçâmedes",
		Sector:        "Tecnologia da Informação",
		Description:   "Integração de sistemas e redes",
		Products:      "Servidores, redes, suporte técnico",
		ContactPerson: "Ana Domingos",
		ContactTitle:  "Directora Comercial",
		AcceptTerms:   true,
	}
}

func TestCandidateValidDraft(t *testing.T) {
	errs := Candidate(validCandidateDraft())
	assert.True(t, Valid(errs), "expected no errors, got %v", errs)
}

func TestCandidateRequiredFields(t *testing.T) {
	errs := Candidate(types.CandidateDraft{})

	required := []string{
		"companyName", "nif", "email", "phone", "address",
		"sector", "description", "products", "contactPerson", "contactTitle",
	}
	for _, field := range required {
		assert.Equal(t, MsgRequired, errs[field], "field %s", field)
	}
}

func TestCandidateEmailFormat(t *testing.T) {
	draft := validCandidateDraft()
	draft.Email = "sem-arroba"

	errs := Candidate(draft)
	assert.Equal(t, MsgInvalidEmail, errs["email"])
}

func TestCandidateAcceptTerms(t *testing.T) {
	draft := validCandidateDraft()
	draft.AcceptTerms = false

	errs := Candidate(draft)
	assert.Equal(t, "É necessário aceitar os termos e condições", errs["acceptTerms"])
}

func TestCandidateNIFNotNumericOnly(t *testing.T) {
	// Unlike the supplier wizard, the candidatura accepts any non-empty
	// NIF.
	draft := validCandidateDraft()
	draft.NIF = "54-ABC/99"

	errs := Candidate(draft)
	assert.NotContains(t, errs, "nif")
}
