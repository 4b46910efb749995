// Package validate holds the pure form validators that gate every
// write. Each validator maps a draft to field→message; an empty map
// means the draft may be submitted.
package validate

import (
	"regexp"
	"strings"
)

const (
	// MsgRequired is the canonical required-field message. The source
	// forms carried both "Campo obrigatório" and "Required"; one
	// message is kept.
	MsgRequired = "Campo obrigatório"

	MsgInvalidEmail   = "Formato de email inválido."
	MsgPositiveNumber = "Deve ser um número positivo"
	MsgEndBeforeStart = "Data de término deve ser posterior à data de início"
	MsgPasswordShort  = "Senha deve ter pelo menos 6 caracteres"
)

var (
	// emailReg is the loose pattern; the stricter {2,4}-TLD variant the
	// auth forms used rejects modern TLDs and was not kept.
	emailReg   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	numericReg = regexp.MustCompile(`^\d+$`)
)

// Valid reports whether a validator result allows submission.
func Valid(errs map[string]string) bool {
	return len(errs) == 0
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EmailOK reports whether s matches the canonical email pattern.
func EmailOK(s string) bool {
	return emailReg.MatchString(s)
}

// NumericOK reports whether s consists of digits only.
func NumericOK(s string) bool {
	return numericReg.MatchString(s)
}
