package server

import (
	"errors"
	"net/http"
	"time"

	"fornecedores/internal/stats"
	"fornecedores/internal/utils"
	"fornecedores/internal/validate"
	"fornecedores/pkg/types"

	"github.com/sirupsen/logrus"
)

func (s *Service) handleCandidates(w http.ResponseWriter, r *http.Request) {
	pageError := r.URL.Query().Get("error")

	candidates, err := s.candidateRepo.Candidates(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch candidates")
		pageError = msgLoadFailed
	}

	data := &types.CandidateListPageData{
		BasePageData: types.BasePageData{
			Title:  "Candidaturas",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		Candidates: candidates,
		Stats:      stats.Candidates(candidates, time.Now()),
	}

	if err := s.renderTemplate(w, r, "page.candidates", data); err != nil {
		s.logger.WithError(err).Error("failed to render candidates page")
		s.internalServerError(w)
		return
	}
}

// handleGetCandidatura serves the public application form. No session
// required.
func (s *Service) handleGetCandidatura(w http.ResponseWriter, r *http.Request) {
	data := &types.CandidaturaPageData{
		BasePageData: types.BasePageData{Title: "Candidatura a Fornecedor"},
		FieldErrors:  map[string]string{},
		Sectors:      types.CompanySectors,
		Submitted:    r.URL.Query().Get("submitted") == "1",
	}

	if err := s.renderTemplate(w, r, "page.candidaturas", data); err != nil {
		s.logger.WithError(err).Error("failed to render candidatura page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostCandidatura(w http.ResponseWriter, r *http.Request) {
	var draft types.CandidateDraft
	if err := r.ParseForm(); err != nil {
		s.internalServerError(w)
		return
	}
	if err := decoder.Decode(&draft, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode candidatura form")
		s.internalServerError(w)
		return
	}

	if fieldErrors := validate.Candidate(draft); !validate.Valid(fieldErrors) {
		data := &types.CandidaturaPageData{
			BasePageData: types.BasePageData{
				Title: "Candidatura a Fornecedor",
				Error: "Verifique os campos assinalados.",
			},
			Draft:       draft,
			FieldErrors: fieldErrors,
			Sectors:     types.CompanySectors,
		}
		w.WriteHeader(http.StatusBadRequest)
		if err := s.renderTemplate(w, r, "page.candidaturas", data); err != nil {
			s.logger.WithError(err).Error("failed to render candidatura page")
			s.internalServerError(w)
		}
		return
	}

	candidate := &types.Candidate{
		CompanyName:   draft.CompanyName,
		NIF:           draft.NIF,
		Email:         draft.Email,
		Phone:         normalizePhone(draft.Phone),
		Address:       draft.Address,
		Sector:        draft.Sector,
		Description:   draft.Description,
		Products:      draft.Products,
		ContactPerson: draft.ContactPerson,
		ContactTitle:  draft.ContactTitle,
		Website:       utils.NullableString(draft.Website),
		AcceptTerms:   draft.AcceptTerms,
	}

	if err := s.candidateRepo.CreateCandidate(r.Context(), candidate); err != nil {
		s.logger.WithError(err).Error("failed to create candidate")
		s.redirectWithError(w, r, "/candidaturas", "Erro ao submeter a candidatura. Tente novamente.")
		return
	}

	s.logger.WithField("candidate_id", candidate.ID).Info("candidatura submitted")
	http.Redirect(w, r, "/candidaturas?submitted=1", http.StatusSeeOther)
}

func (s *Service) handlePostCandidateApprove(w http.ResponseWriter, r *http.Request) {
	s.reviewCandidate(w, r, types.CandidateStatusAprovado, "Candidatura aprovada.")
}

func (s *Service) handlePostCandidateReject(w http.ResponseWriter, r *http.Request) {
	s.reviewCandidate(w, r, types.CandidateStatusRejeitado, "Candidatura rejeitada.")
}

func (s *Service) handlePostCandidateReview(w http.ResponseWriter, r *http.Request) {
	s.reviewCandidate(w, r, types.CandidateStatusEmAnalise, "Candidatura marcada como em análise.")
}

func (s *Service) reviewCandidate(w http.ResponseWriter, r *http.Request, status types.CandidateStatus, notice string) {
	ctx := r.Context()
	candidateID := r.PathValue("candidateID")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := s.candidateRepo.Candidate(ctx, candidateID); err != nil {
		if errors.Is(err, types.ErrCandidateNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch candidate")
		s.internalServerError(w)
		return
	}

	if err := s.candidateRepo.UpdateStatus(ctx, candidateID, status, session.Email); err != nil {
		s.logger.WithError(err).Error("failed to update candidate status")
		s.redirectWithError(w, r, "/candidates", "Erro ao actualizar a candidatura.")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"candidate_id": candidateID,
		"status":       status,
	}).Info("candidate reviewed")
	s.redirectWithNotice(w, r, "/candidates", notice)
}
