package validate

import "fornecedores/pkg/types"

// User validates the admin user-creation form. The password only
// travels to the identity provider; it is never part of the stored
// profile.
func User(d types.UserDraft) map[string]string {
	errs := map[string]string{}

	if blank(d.Name) {
		errs["name"] = "Nome é obrigatório"
	}

	if blank(d.Email) {
		errs["email"] = "Email é obrigatório"
	} else if !EmailOK(d.Email) {
		errs["email"] = "Email deve ter um formato válido"
	}

	if d.Password == "" {
		errs["password"] = "Senha é obrigatória"
	} else if len(d.Password) < 6 {
		errs["password"] = MsgPasswordShort
	}

	if blank(d.Role) {
		errs["role"] = "Função é obrigatória"
	}

	return errs
}

// Login validates the credential form before the identity-provider
// round-trip.
func Login(email, password string) map[string]string {
	errs := map[string]string{}

	if blank(email) {
		errs["email"] = "Email é obrigatório."
	} else if !EmailOK(email) {
		errs["email"] = MsgInvalidEmail
	}

	if password == "" {
		errs["password"] = "Senha é obrigatória."
	} else if len(password) < 6 {
		errs["password"] = "A senha deve ter pelo menos 6 caracteres."
	}

	return errs
}
