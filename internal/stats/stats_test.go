package stats

import (
	"testing"
	"time"

	"fornecedores/internal/utils"
	"fornecedores/pkg/types"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestContracts(t *testing.T) {
	contracts := []*types.Contract{
		{SupplierID: "a", Status: types.ContractStatusEmAndamento, Amount: 1000, EndDate: "2026-12-31"},
		{SupplierID: "a", Status: types.ContractStatusConcluido, Amount: 500, EndDate: "2026-01-31"},
		{SupplierID: "b", Status: types.ContractStatusCancelado, Amount: 250, EndDate: "2026-12-31"},
		{SupplierID: "c", Status: types.ContractStatusEmAndamento, Amount: 100, EndDate: "not-a-date"},
	}

	got := Contracts(contracts, now)

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 2, got.EmAndamento)
	assert.Equal(t, 1, got.Concluido)
	assert.Equal(t, 1, got.Cancelado)
	assert.InDelta(t, 1850, got.TotalValue, 0.001)
	assert.Equal(t, 3, got.UniqueSuppliersCount)

	// Only the first contract is active: the second already ended, the
	// third was cancelled, the fourth has an unparseable end date.
	assert.Equal(t, 1, got.ActiveContracts)
}

func TestContractsCancelledValueStillCounts(t *testing.T) {
	contracts := []*types.Contract{
		{Status: types.ContractStatusCancelado, Amount: 900},
	}

	got := Contracts(contracts, now)
	assert.InDelta(t, 900, got.TotalValue, 0.001)
	assert.Equal(t, 0, got.ActiveContracts)
}

func TestContractsEndingToday(t *testing.T) {
	contracts := []*types.Contract{
		{Status: types.ContractStatusEmAndamento, EndDate: "2026-06-15"},
	}

	// An end date on the current day has already passed midnight, so
	// end.Before(now) holds for any time-of-day after 00:00.
	got := Contracts(contracts, now)
	assert.Equal(t, 0, got.ActiveContracts)

	midnight := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	got = Contracts(contracts, midnight)
	assert.Equal(t, 1, got.ActiveContracts)
}

func TestSuppliers(t *testing.T) {
	suppliers := []*types.Supplier{
		{Status: types.SupplierStatusActive, Tipo: types.SupplierTipoServico},
		{Status: types.SupplierStatusActive, Tipo: types.SupplierTipoProduto},
		{Status: types.SupplierStatusInactive, Tipo: types.SupplierTipoServico},
		{Status: types.SupplierStatusSuspended},
	}

	got := Suppliers(suppliers)

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 2, got.Active)
	assert.Equal(t, 1, got.Inactive)
	assert.Equal(t, 1, got.Suspended)
	assert.Equal(t, 2, got.Services)
	assert.Equal(t, 1, got.Products)
}

func TestDocuments(t *testing.T) {
	documents := []*types.Document{
		{FolderID: utils.StringPtr("f1"), SupplierID: utils.StringPtr("s1"), Office: utils.StringPtr("Gabinete A")},
		{FolderID: utils.StringPtr("f1"), SupplierID: utils.StringPtr("s2")},
		{FolderID: utils.StringPtr(""), Office: utils.StringPtr("")},
		{},
	}

	got := Documents(documents)

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 1, got.UniqueFoldersCount)
	assert.Equal(t, 2, got.UniqueSuppliersCount)
	assert.Equal(t, 1, got.UniqueOfficesCount)
}

func TestCandidates(t *testing.T) {
	recent := now.AddDate(0, 0, -2)
	old := now.AddDate(0, 0, -30)

	candidates := []*types.Candidate{
		{Status: types.CandidateStatusPendente, SubmittedAt: utils.TimePtr(recent)},
		{Status: types.CandidateStatusAprovado, SubmittedAt: utils.TimePtr(old)},
		{Status: types.CandidateStatusRejeitado, SubmittedAt: utils.TimePtr(old)},
		{Status: types.CandidateStatusEmAnalise, SubmittedAt: utils.TimePtr(recent)},
		// No SubmittedAt: CreatedAt decides recency.
		{Status: types.CandidateStatusPendente, CreatedAt: recent},
	}

	got := Candidates(candidates, now)

	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.Pending)
	assert.Equal(t, 1, got.Approved)
	assert.Equal(t, 1, got.Rejected)
	assert.Equal(t, 1, got.InReview)
	assert.Equal(t, 3, got.RecentSubmissions)
}

func TestCandidatesZeroTimestampsNotRecent(t *testing.T) {
	candidates := []*types.Candidate{
		{Status: types.CandidateStatusPendente},
	}

	got := Candidates(candidates, now)
	assert.Equal(t, 0, got.RecentSubmissions)
}
