// Package stats holds the pure reducers behind the dashboard summary
// blocks. Reducers never fail: records with missing or malformed
// fields simply do not contribute to the affected bucket.
package stats

import (
	"time"

	"fornecedores/pkg/types"
)

const dateLayout = "2006-01-02"

// Contracts reduces a contract list to the dashboard counters. A
// contract is active when its end date parses, is not in the past
// relative to now, and the contract was not cancelled.
func Contracts(contracts []*types.Contract, now time.Time) types.ContractStats {
	stats := types.ContractStats{Total: len(contracts)}
	suppliers := map[string]struct{}{}

	for _, contract := range contracts {
		switch contract.Status {
		case types.ContractStatusEmAndamento:
			stats.EmAndamento++
		case types.ContractStatusConcluido:
			stats.Concluido++
		case types.ContractStatusCancelado:
			stats.Cancelado++
		}

		stats.TotalValue += contract.Amount

		if contract.Status != types.ContractStatusCancelado {
			if end, err := time.Parse(dateLayout, contract.EndDate); err == nil && !end.Before(now) {
				stats.ActiveContracts++
			}
		}

		if contract.SupplierID != "" {
			suppliers[contract.SupplierID] = struct{}{}
		}
	}

	stats.UniqueSuppliersCount = len(suppliers)
	return stats
}

// Suppliers counts suppliers per status and per tipo.
func Suppliers(suppliers []*types.Supplier) types.SupplierStats {
	stats := types.SupplierStats{Total: len(suppliers)}

	for _, supplier := range suppliers {
		switch supplier.Status {
		case types.SupplierStatusActive:
			stats.Active++
		case types.SupplierStatusInactive:
			stats.Inactive++
		case types.SupplierStatusSuspended:
			stats.Suspended++
		}

		switch supplier.Tipo {
		case types.SupplierTipoServico:
			stats.Services++
		case types.SupplierTipoProduto:
			stats.Products++
		}
	}

	return stats
}

// Documents counts the distinct non-empty folder, supplier and office
// values across a document list.
func Documents(documents []*types.Document) types.DocumentStats {
	stats := types.DocumentStats{Total: len(documents)}

	folders := map[string]struct{}{}
	suppliers := map[string]struct{}{}
	offices := map[string]struct{}{}

	for _, document := range documents {
		if document.FolderID != nil && *document.FolderID != "" {
			folders[*document.FolderID] = struct{}{}
		}
		if document.SupplierID != nil && *document.SupplierID != "" {
			suppliers[*document.SupplierID] = struct{}{}
		}
		if document.Office != nil && *document.Office != "" {
			offices[*document.Office] = struct{}{}
		}
	}

	stats.UniqueFoldersCount = len(folders)
	stats.UniqueSuppliersCount = len(suppliers)
	stats.UniqueOfficesCount = len(offices)
	return stats
}

// Candidates counts candidates per status. RecentSubmissions counts
// submissions within the seven days before now, falling back to
// CreatedAt when the submission timestamp is absent.
func Candidates(candidates []*types.Candidate, now time.Time) types.CandidateStats {
	stats := types.CandidateStats{Total: len(candidates)}
	sevenDaysAgo := now.AddDate(0, 0, -7)

	for _, candidate := range candidates {
		switch candidate.Status {
		case types.CandidateStatusPendente:
			stats.Pending++
		case types.CandidateStatusAprovado:
			stats.Approved++
		case types.CandidateStatusRejeitado:
			stats.Rejected++
		case types.CandidateStatusEmAnalise:
			stats.InReview++
		}

		submitted := candidate.CreatedAt
		if candidate.SubmittedAt != nil {
			submitted = *candidate.SubmittedAt
		}
		if !submitted.IsZero() && !submitted.Before(sevenDaysAgo) {
			stats.RecentSubmissions++
		}
	}

	return stats
}
