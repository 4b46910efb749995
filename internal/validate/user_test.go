package validate

import (
	"testing"

	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestUser(t *testing.T) {
	draft := types.UserDraft{
		Name:     "Carlos Baptista",
		Email:    "carlos@governo.ao",
		Password: "segredo1",
		Role:     "admin",
	}

	assert.True(t, Valid(User(draft)))

	draft.Password = "12345"
	errs := User(draft)
	assert.Equal(t, MsgPasswordShort, errs["password"])

	draft.Password = ""
	errs = User(draft)
	assert.Equal(t, "Senha é obrigatória", errs["password"])

	draft = types.UserDraft{}
	errs = User(draft)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "role")
}

func TestLogin(t *testing.T) {
	assert.True(t, Valid(Login("carlos@governo.ao", "segredo1")))

	errs := Login("", "")
	assert.Equal(t, "Email é obrigatório.", errs["email"])
	assert.Equal(t, "Senha é obrigatória.", errs["password"])

	errs = Login("invalido", "short")
	assert.Equal(t, MsgInvalidEmail, errs["email"])
	assert.Equal(t, "A senha deve ter pelo menos 6 caracteres.", errs["password"])
}
