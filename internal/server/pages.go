package server

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fornecedores/internal/stats"
	"fornecedores/pkg/types"
)

// msgLoadFailed is the banner shown when a list read fails. The page
// still renders, with an empty list underneath.
const msgLoadFailed = "Não foi possível carregar os dados. Tente novamente."

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	pageError := r.URL.Query().Get("error")

	suppliers, err := s.supplierRepo.Suppliers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers for dashboard")
		pageError = msgLoadFailed
	}

	contracts, err := s.contractRepo.Contracts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch contracts for dashboard")
		pageError = msgLoadFailed
	}

	documents, err := s.documentRepo.Documents(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch documents for dashboard")
		pageError = msgLoadFailed
	}

	candidates, err := s.candidateRepo.Candidates(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch candidates for dashboard")
		pageError = msgLoadFailed
	}

	contractStats := stats.Contracts(contracts, now)

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{
			Title:  "Painel",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		ContractStats:  contractStats,
		SupplierStats:  stats.Suppliers(suppliers),
		DocumentStats:  stats.Documents(documents),
		CandidateStats: stats.Candidates(candidates, now),
		TotalValue:     formatCurrency(contractStats.TotalValue),
	}

	if err := s.renderTemplate(w, r, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, target, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, target+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, target, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, target+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (s *Service) notFound(w http.ResponseWriter, r *http.Request) {
	data := &types.NotFoundPageData{
		BasePageData: types.BasePageData{Title: "Página não encontrada"},
		Message:      "A página que procura não existe ou foi movida.",
		BackHref:     "/",
		BackText:     "Voltar ao painel",
	}

	w.WriteHeader(http.StatusNotFound)
	if err := s.renderTemplate(w, r, "page.notfound", data); err != nil {
		s.logger.WithError(err).Error("failed to render not found page")
		http.NotFound(w, r)
	}
}

// formatCurrency renders an amount the way the office reads it:
// thousands separated by dots, two decimals after a comma, Kz suffix.
func formatCurrency(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("%s,%02d Kz", strings.Join(groups, "."), cents)
	if negative {
		return "-" + out
	}
	return out
}
