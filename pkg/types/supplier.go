package types

import "time"

type SupplierStatus string

const (
	SupplierStatusActive    SupplierStatus = "Activo"
	SupplierStatusInactive  SupplierStatus = "Inactivo"
	SupplierStatusSuspended SupplierStatus = "Suspenso"
)

type SupplierTipo string

const (
	SupplierTipoProduto SupplierTipo = "Produto"
	SupplierTipoServico SupplierTipo = "Serviço"
)

// Naturezas are the accepted legal natures for a registered supplier.
var Naturezas = []string{
	"Empresário em Nome Individual",
	"Sociedade Unipessoal por Quotas",
	"Sociedade por Quotas",
}

// Socio is a shareholder/partner record attached to a supplier. A
// supplier always carries at least one.
type Socio struct {
	Responsavel         string `json:"responsavel" form:"responsavel"`
	TelefoneResponsavel string `json:"telefoneResponsavel" form:"telefoneResponsavel"`
	CargoResponsavel    string `json:"cargoResponsavel" form:"cargoResponsavel"`
}

// Supplier is a registered vendor company eligible to hold contracts.
// Dates entered on forms (Inicio, Registro) are kept as the submitted
// YYYY-MM-DD strings.
type Supplier struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	NIF       string         `db:"nif"`
	Provincia string         `db:"provincia"`
	Telefone1 string         `db:"telefone1"`
	Telefone2 string         `db:"telefone2"`
	Email     string         `db:"email"`
	Inicio    string         `db:"inicio"`
	Tipo      SupplierTipo   `db:"tipo"`
	Descricao string         `db:"descricao"`
	Status    SupplierStatus `db:"status"`
	Address   string         `db:"address"`
	Registro  string         `db:"registro"`
	Natureza  string         `db:"natureza"`
	Socios    []Socio        `db:"socios"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt *time.Time     `db:"updated_at"`
	UpdatedBy *string        `db:"updated_by"`
}

// SupplierDraft carries the supplier wizard's submitted values before
// validation. Socios rows arrive indexed (socios[0].responsavel, ...).
type SupplierDraft struct {
	Name      string  `form:"name"`
	NIF       string  `form:"nif"`
	Provincia string  `form:"provincia"`
	Telefone1 string  `form:"telefone1"`
	Telefone2 string  `form:"telefone2"`
	Email     string  `form:"email"`
	Inicio    string  `form:"inicio"`
	Tipo      string  `form:"tipo"`
	Descricao string  `form:"descricao"`
	Status    string  `form:"status"`
	Address   string  `form:"address"`
	Registro  string  `form:"registro"`
	Natureza  string  `form:"natureza"`
	Socios    []Socio `form:"socios"`
}
