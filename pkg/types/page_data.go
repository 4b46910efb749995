package types

type NavbarData struct {
	IsAuthenticated bool
	UserEmail       string
	Role            Role
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Notice string
	Error  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type LoginPageData struct {
	BasePageData
	Email       string
	FieldErrors map[string]string
}

type DashboardPageData struct {
	BasePageData
	ContractStats  ContractStats
	SupplierStats  SupplierStats
	DocumentStats  DocumentStats
	CandidateStats CandidateStats
	TotalValue     string
}

type SupplierListPageData struct {
	BasePageData
	Suppliers []*Supplier
	Stats     SupplierStats
}

type SupplierFormPageData struct {
	BasePageData
	Draft       SupplierDraft
	FieldErrors map[string]string
	SupplierID  string
}

type SupplierViewPageData struct {
	BasePageData
	Supplier  *Supplier
	Contracts []*Contract
	Documents []*Document
	Tab       string
}

type ContractListPageData struct {
	BasePageData
	Contracts []*Contract
	Stats     ContractStats
}

type ContractFormPageData struct {
	BasePageData
	Draft       ContractDraft
	FieldErrors map[string]string
	ContractID  string
	Suppliers   []*Supplier
	Existing    []FileRef
}

type DocumentListPageData struct {
	BasePageData
	Documents []*Document
	Folders   []*Folder
	FolderID  string
	Stats     DocumentStats
}

type DocumentFormPageData struct {
	BasePageData
	Draft       DocumentDraft
	FieldErrors map[string]string
	DocumentID  string
	Suppliers   []*Supplier
	Folders     []*Folder
	Existing    []FileRef
}

type CandidateListPageData struct {
	BasePageData
	Candidates []*Candidate
	Stats      CandidateStats
}

type CandidaturaPageData struct {
	BasePageData
	Draft       CandidateDraft
	FieldErrors map[string]string
	Sectors     []string
	Submitted   bool
}

type UserListPageData struct {
	BasePageData
	Users []*User
}

type UserFormPageData struct {
	BasePageData
	Draft       UserDraft
	FieldErrors map[string]string
	Roles       []string
}

type NotFoundPageData struct {
	BasePageData
	Message  string
	BackHref string
	BackText string
}
