package types

// ContractStats summarizes a contract list for the dashboard.
type ContractStats struct {
	Total                int
	EmAndamento          int
	Concluido            int
	Cancelado            int
	TotalValue           float64
	ActiveContracts      int
	UniqueSuppliersCount int
}

// SupplierStats counts suppliers per status and per tipo.
type SupplierStats struct {
	Total     int
	Active    int
	Inactive  int
	Suspended int
	Services  int
	Products  int
}

// DocumentStats counts distinct folders, suppliers and offices across
// a document list.
type DocumentStats struct {
	Total                int
	UniqueFoldersCount   int
	UniqueSuppliersCount int
	UniqueOfficesCount   int
}

// CandidateStats counts candidates per status plus submissions within
// the last seven days.
type CandidateStats struct {
	Total             int
	Pending           int
	Approved          int
	Rejected          int
	InReview          int
	RecentSubmissions int
}
