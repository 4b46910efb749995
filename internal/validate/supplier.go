package validate

import (
	"fmt"

	"fornecedores/pkg/types"
)

// Supplier wizard steps.
const (
	SupplierStepEmpresa = iota
	SupplierStepContactos
	SupplierStepSocios
	SupplierStepOutras
	supplierStepCount
)

// SupplierStep validates one step of the supplier creation/update
// wizard. NIF must be numeric here and only here; candidate and other
// forms accept any non-empty NIF.
func SupplierStep(d types.SupplierDraft, step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case SupplierStepEmpresa:
		if blank(d.Name) {
			errs["name"] = "Nome da empresa é obrigatório"
		}
		if blank(d.NIF) {
			errs["nif"] = "NIF é obrigatório"
		} else if !NumericOK(d.NIF) {
			errs["nif"] = "NIF deve conter apenas números"
		}
		if blank(d.Natureza) {
			errs["natureza"] = "Natureza jurídica é obrigatória"
		}
		if blank(d.Registro) {
			errs["registro"] = "Data de abertura é obrigatória"
		}
	case SupplierStepContactos:
		if blank(d.Address) {
			errs["address"] = "Endereço é obrigatório"
		}
		if blank(d.Email) {
			errs["email"] = "Email é obrigatório"
		} else if !EmailOK(d.Email) {
			errs["email"] = "Email inválido"
		}
		if blank(d.Telefone1) {
			errs["telefone1"] = "Telefone 1 é obrigatório"
		}
	case SupplierStepSocios:
		if len(d.Socios) == 0 {
			errs["socios"] = "Pelo menos um sócio é obrigatório"
		}
		for i, socio := range d.Socios {
			if blank(socio.Responsavel) {
				errs[fmt.Sprintf("socio%dresponsavel", i)] = "Nome do sócio é obrigatório"
			}
			if blank(socio.TelefoneResponsavel) {
				errs[fmt.Sprintf("socio%dtelefone", i)] = "Telefone é obrigatório"
			}
			if blank(socio.CargoResponsavel) {
				errs[fmt.Sprintf("socio%dcargo", i)] = "Cargo é obrigatório"
			}
		}
	case SupplierStepOutras:
		if blank(d.Inicio) {
			errs["inicio"] = "Início do vínculo é obrigatório"
		}
		if blank(d.Tipo) {
			errs["tipo"] = "Tipo é obrigatório"
		}
		if blank(d.Descricao) {
			errs["descricao"] = "Descrição é obrigatória"
		}
	}

	return errs
}

// Supplier runs every wizard step against the full draft.
func Supplier(d types.SupplierDraft) map[string]string {
	errs := map[string]string{}
	for step := 0; step < supplierStepCount; step++ {
		for field, msg := range SupplierStep(d, step) {
			errs[field] = msg
		}
	}
	return errs
}
