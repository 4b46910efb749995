package server

import (
	"errors"
	"net/http"

	"fornecedores/internal/stats"
	"fornecedores/internal/validate"
	"fornecedores/pkg/types"
)

func (s *Service) handleSuppliers(w http.ResponseWriter, r *http.Request) {
	pageError := r.URL.Query().Get("error")

	suppliers, err := s.supplierRepo.Suppliers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers")
		pageError = msgLoadFailed
	}

	data := &types.SupplierListPageData{
		BasePageData: types.BasePageData{
			Title:  "Fornecedores",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		Suppliers: suppliers,
		Stats:     stats.Suppliers(suppliers),
	}

	if err := s.renderTemplate(w, r, "page.suppliers", data); err != nil {
		s.logger.WithError(err).Error("failed to render suppliers page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetSupplierCreate(w http.ResponseWriter, r *http.Request) {
	data := &types.SupplierFormPageData{
		BasePageData: types.BasePageData{Title: "Registar Fornecedor"},
		Draft:        types.SupplierDraft{Socios: []types.Socio{{}}},
		FieldErrors:  map[string]string{},
	}

	if err := s.renderTemplate(w, r, "page.suppliers.create", data); err != nil {
		s.logger.WithError(err).Error("failed to render supplier create page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostSupplierCreate(w http.ResponseWriter, r *http.Request) {
	draft, err := s.decodeSupplierDraft(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode supplier form")
		s.internalServerError(w)
		return
	}

	if fieldErrors := validate.Supplier(draft); !validate.Valid(fieldErrors) {
		data := &types.SupplierFormPageData{
			BasePageData: types.BasePageData{
				Title: "Registar Fornecedor",
				Error: "Verifique os campos assinalados.",
			},
			Draft:       draft,
			FieldErrors: fieldErrors,
		}
		w.WriteHeader(http.StatusBadRequest)
		if err := s.renderTemplate(w, r, "page.suppliers.create", data); err != nil {
			s.logger.WithError(err).Error("failed to render supplier create page")
			s.internalServerError(w)
		}
		return
	}

	supplier := supplierFromDraft(draft)

	if err := s.supplierRepo.CreateSupplier(r.Context(), supplier); err != nil {
		s.logger.WithError(err).Error("failed to create supplier")
		s.redirectWithError(w, r, "/suppliers", "Erro ao registar fornecedor.")
		return
	}

	s.logger.WithField("supplier_id", supplier.ID).Info("supplier created")
	s.redirectWithNotice(w, r, "/suppliers", "Fornecedor registado com sucesso.")
}

func (s *Service) handleSupplierView(w http.ResponseWriter, r *http.Request) {
	s.renderSupplierView(w, r, "geral")
}

func (s *Service) handleSupplierContracts(w http.ResponseWriter, r *http.Request) {
	s.renderSupplierView(w, r, "contracts")
}

func (s *Service) handleSupplierDocuments(w http.ResponseWriter, r *http.Request) {
	s.renderSupplierView(w, r, "documents")
}

func (s *Service) renderSupplierView(w http.ResponseWriter, r *http.Request, tab string) {
	ctx := r.Context()
	supplierID := r.PathValue("supplierID")

	supplier, err := s.supplierRepo.Supplier(ctx, supplierID)
	if err != nil {
		if errors.Is(err, types.ErrSupplierNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch supplier")
		s.internalServerError(w)
		return
	}

	data := &types.SupplierViewPageData{
		BasePageData: types.BasePageData{
			Title:  supplier.Name,
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Supplier: supplier,
		Tab:      tab,
	}

	switch tab {
	case "contracts":
		contracts, err := s.contractRepo.ContractsBySupplier(ctx, supplierID)
		if err != nil {
			s.logger.WithError(err).Error("failed to fetch supplier contracts")
			data.Error = msgLoadFailed
		}
		data.Contracts = contracts
	case "documents":
		documents, err := s.documentRepo.DocumentsBySupplier(ctx, supplierID)
		if err != nil {
			s.logger.WithError(err).Error("failed to fetch supplier documents")
			data.Error = msgLoadFailed
		}
		data.Documents = documents
	}

	if err := s.renderTemplate(w, r, "page.supplier.view", data); err != nil {
		s.logger.WithError(err).Error("failed to render supplier view page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetSupplierUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	supplierID := r.PathValue("supplierID")

	supplier, err := s.supplierRepo.Supplier(ctx, supplierID)
	if err != nil {
		if errors.Is(err, types.ErrSupplierNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch supplier")
		s.internalServerError(w)
		return
	}

	data := &types.SupplierFormPageData{
		BasePageData: types.BasePageData{Title: "Editar Fornecedor"},
		Draft:        draftFromSupplier(supplier),
		FieldErrors:  map[string]string{},
		SupplierID:   supplierID,
	}

	if err := s.renderTemplate(w, r, "page.supplier.update", data); err != nil {
		s.logger.WithError(err).Error("failed to render supplier update page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostSupplierUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	supplierID := r.PathValue("supplierID")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	existing, err := s.supplierRepo.Supplier(ctx, supplierID)
	if err != nil {
		if errors.Is(err, types.ErrSupplierNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch supplier")
		s.internalServerError(w)
		return
	}

	draft, err := s.decodeSupplierDraft(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode supplier form")
		s.internalServerError(w)
		return
	}

	if fieldErrors := validate.Supplier(draft); !validate.Valid(fieldErrors) {
		data := &types.SupplierFormPageData{
			BasePageData: types.BasePageData{
				Title: "Editar Fornecedor",
				Error: "Verifique os campos assinalados.",
			},
			Draft:       draft,
			FieldErrors: fieldErrors,
			SupplierID:  supplierID,
		}
		w.WriteHeader(http.StatusBadRequest)
		if err := s.renderTemplate(w, r, "page.supplier.update", data); err != nil {
			s.logger.WithError(err).Error("failed to render supplier update page")
			s.internalServerError(w)
		}
		return
	}

	supplier := supplierFromDraft(draft)
	supplier.CreatedAt = existing.CreatedAt
	supplier.UpdatedBy = &session.Email

	if err := s.supplierRepo.UpdateSupplier(ctx, supplierID, supplier); err != nil {
		s.logger.WithError(err).Error("failed to update supplier")
		s.redirectWithError(w, r, "/supplier/"+supplierID+"/view", "Erro ao actualizar fornecedor.")
		return
	}

	s.logger.WithField("supplier_id", supplierID).Info("supplier updated")
	s.redirectWithNotice(w, r, "/supplier/"+supplierID+"/view", "Fornecedor actualizado com sucesso.")
}

func (s *Service) decodeSupplierDraft(r *http.Request) (types.SupplierDraft, error) {
	var draft types.SupplierDraft
	if err := r.ParseForm(); err != nil {
		return draft, err
	}
	if err := decoder.Decode(&draft, r.PostForm); err != nil {
		return draft, err
	}
	return draft, nil
}

// supplierFromDraft converts a validated draft, normalizing every phone
// number to its international form. Numbers the normalizer rejects pass
// through untouched.
func supplierFromDraft(draft types.SupplierDraft) *types.Supplier {
	supplier := &types.Supplier{
		Name:      draft.Name,
		NIF:       draft.NIF,
		Provincia: draft.Provincia,
		Telefone1: normalizePhone(draft.Telefone1),
		Telefone2: normalizePhone(draft.Telefone2),
		Email:     draft.Email,
		Inicio:    draft.Inicio,
		Tipo:      types.SupplierTipo(draft.Tipo),
		Descricao: draft.Descricao,
		Status:    types.SupplierStatus(draft.Status),
		Address:   draft.Address,
		Registro:  draft.Registro,
		Natureza:  draft.Natureza,
	}

	for _, socio := range draft.Socios {
		socio.TelefoneResponsavel = normalizePhone(socio.TelefoneResponsavel)
		supplier.Socios = append(supplier.Socios, socio)
	}

	return supplier
}

func draftFromSupplier(supplier *types.Supplier) types.SupplierDraft {
	draft := types.SupplierDraft{
		Name:      supplier.Name,
		NIF:       supplier.NIF,
		Provincia: supplier.Provincia,
		Telefone1: supplier.Telefone1,
		Telefone2: supplier.Telefone2,
		Email:     supplier.Email,
		Inicio:    supplier.Inicio,
		Tipo:      string(supplier.Tipo),
		Descricao: supplier.Descricao,
		Status:    string(supplier.Status),
		Address:   supplier.Address,
		Registro:  supplier.Registro,
		Natureza:  supplier.Natureza,
		Socios:    supplier.Socios,
	}

	if len(draft.Socios) == 0 {
		draft.Socios = []types.Socio{{}}
	}

	return draft
}

func normalizePhone(numero string) string {
	if numero == "" {
		return ""
	}
	normalized, err := validate.AddCountryIndicator(numero)
	if err != nil {
		return numero
	}
	return normalized
}
