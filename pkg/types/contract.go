package types

import "time"

type ContractStatus string

const (
	ContractStatusEmAndamento ContractStatus = "Em andamento"
	ContractStatusConcluido   ContractStatus = "Concluido"
	ContractStatusCancelado   ContractStatus = "Cancelado"
)

// FileRef points at an uploaded blob: the original file name plus the
// public download URL returned at upload time.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Contract is a time-bounded financial agreement with a supplier. The
// supplier name is denormalized next to its id and does not cascade on
// rename.
type Contract struct {
	ID          string         `db:"id"`
	Supplier    string         `db:"supplier"`
	SupplierID  string         `db:"supplier_id"`
	Reference   string         `db:"reference"`
	Object      string         `db:"object"`
	Description string         `db:"description"`
	StartDate   string         `db:"start_date"`
	EndDate     string         `db:"end_date"`
	Amount      float64        `db:"amount"`
	Status      ContractStatus `db:"status"`
	FileUrls    []FileRef      `db:"file_urls"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	CreatedBy   *string        `db:"created_by"`
	UpdatedBy   *string        `db:"updated_by"`
}

// ContractDraft is the contract form as submitted. Amount stays a
// string until the validator confirms it parses as a positive number.
type ContractDraft struct {
	SupplierID   string `form:"supplierId"`
	SupplierName string `form:"supplierName"`
	Reference    string `form:"reference"`
	Object       string `form:"object"`
	Description  string `form:"description"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
	Amount       string `form:"amount"`
	Status       string `form:"status"`
}
