package validate

import "fornecedores/pkg/types"

// Candidate validates the public candidatura submission. The NIF here
// only needs to be present; the numeric-only rule applies to the
// supplier wizard alone.
func Candidate(d types.CandidateDraft) map[string]string {
	errs := map[string]string{}

	required := []struct {
		field string
		value string
	}{
		{"companyName", d.CompanyName},
		{"nif", d.NIF},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"sector", d.Sector},
		{"description", d.Description},
		{"products", d.Products},
		{"contactPerson", d.ContactPerson},
		{"contactTitle", d.ContactTitle},
	}
	for _, f := range required {
		if blank(f.value) {
			errs[f.field] = MsgRequired
		}
	}

	if !blank(d.Email) && !EmailOK(d.Email) {
		errs["email"] = MsgInvalidEmail
	}

	if !d.AcceptTerms {
		errs["acceptTerms"] = "É necessário aceitar os termos e condições"
	}

	return errs
}
