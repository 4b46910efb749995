package types

import "time"

type CandidateStatus string

const (
	CandidateStatusPendente  CandidateStatus = "Pendente"
	CandidateStatusAprovado  CandidateStatus = "Aprovado"
	CandidateStatusRejeitado CandidateStatus = "Rejeitado"
	CandidateStatusEmAnalise CandidateStatus = "Em Análise"
)

// CompanySectors lists the activity sectors offered on the public
// candidatura form.
var CompanySectors = []string{
	"Construção Civil",
	"Tecnologia da Informação",
	"Serviços de Consultoria",
	"Equipamentos e Máquinas",
	"Materiais de Escritório",
	"Serviços de Limpeza",
	"Segurança",
	"Alimentação e Catering",
	"Transporte e Logística",
	"Energia e Utilities",
	"Telecomunicações",
	"Serviços Financeiros",
	"Educação e Formação",
	"Saúde",
	"Agricultura",
	"Outros",
}

// Candidate is an unauthenticated public submission requesting future
// supplier status.
type Candidate struct {
	ID            string          `db:"id"`
	CompanyName   string          `db:"company_name"`
	NIF           string          `db:"nif"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Address       string          `db:"address"`
	Sector        string          `db:"sector"`
	Description   string          `db:"description"`
	Products      string          `db:"products"`
	ContactPerson string          `db:"contact_person"`
	ContactTitle  string          `db:"contact_title"`
	Website       *string         `db:"website"`
	AcceptTerms   bool            `db:"accept_terms"`
	Status        CandidateStatus `db:"status"`
	SubmittedAt   *time.Time      `db:"submitted_at"`
	ReviewedAt    *time.Time      `db:"reviewed_at"`
	ReviewedBy    *string         `db:"reviewed_by"`
	CreatedAt     time.Time       `db:"created_at"`
}

type CandidateDraft struct {
	CompanyName   string `form:"companyName"`
	NIF           string `form:"nif"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Address       string `form:"address"`
	Sector        string `form:"sector"`
	Description   string `form:"description"`
	Products      string `form:"products"`
	ContactPerson string `form:"contactPerson"`
	ContactTitle  string `form:"contactTitle"`
	Website       string `form:"website"`
	AcceptTerms   bool   `form:"acceptTerms"`
}
