package server

import (
	"errors"
	"testing"

	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
)

func TestTranslateAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "wrong credentials",
			err:      &cognitotypes.NotAuthorizedException{},
			expected: "Email ou palavra-passe incorrectos.",
		},
		{
			name:     "unknown account",
			err:      &cognitotypes.UserNotFoundException{},
			expected: "Email ou palavra-passe incorrectos.",
		},
		{
			name:     "unconfirmed account",
			err:      &cognitotypes.UserNotConfirmedException{},
			expected: "Conta ainda não confirmada. Contacte o administrador.",
		},
		{
			name:     "throttled",
			err:      &cognitotypes.TooManyRequestsException{},
			expected: "Demasiadas tentativas. Aguarde alguns minutos.",
		},
		{
			name:     "anything else",
			err:      errors.New("network down"),
			expected: "Erro ao fazer login. Tente novamente.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translateAuthError(tt.err))
		})
	}
}
