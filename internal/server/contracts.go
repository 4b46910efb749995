package server

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"fornecedores/internal/stats"
	"fornecedores/internal/storage"
	"fornecedores/internal/validate"
	"fornecedores/pkg/types"
)

const maxUploadBytes = 32 << 20

func (s *Service) handleContracts(w http.ResponseWriter, r *http.Request) {
	pageError := r.URL.Query().Get("error")

	contracts, err := s.contractRepo.Contracts(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch contracts")
		pageError = msgLoadFailed
	}

	data := &types.ContractListPageData{
		BasePageData: types.BasePageData{
			Title:  "Contratos",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		Contracts: contracts,
		Stats:     stats.Contracts(contracts, time.Now()),
	}

	if err := s.renderTemplate(w, r, "page.contracts", data); err != nil {
		s.logger.WithError(err).Error("failed to render contracts page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetContractCreate(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.supplierRepo.Suppliers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers")
		s.internalServerError(w)
		return
	}

	// A creation link from a supplier page pre-selects that supplier.
	// The denormalized name must be bound here as well, otherwise a
	// straight submit loses the supplier link.
	draft := types.ContractDraft{SupplierID: r.URL.Query().Get("supplierId")}
	draft.SupplierName = supplierNameByID(suppliers, draft.SupplierID)

	data := &types.ContractFormPageData{
		BasePageData: types.BasePageData{Title: "Registar Contrato"},
		Draft:        draft,
		FieldErrors:  map[string]string{},
		Suppliers:    suppliers,
	}

	if err := s.renderTemplate(w, r, "page.contracts.create", data); err != nil {
		s.logger.WithError(err).Error("failed to render contract create page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostContractCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft, uploads, closeUploads, err := s.decodeContractForm(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode contract form")
		s.internalServerError(w)
		return
	}
	defer closeUploads()

	if fieldErrors := validate.Contract(draft); !validate.Valid(fieldErrors) {
		s.renderContractForm(w, r, "page.contracts.create", "Registar Contrato", draft, fieldErrors, "", nil)
		return
	}

	fileRefs, err := s.storage.UploadAll(ctx, storage.PrefixContracts, uploads)
	if err != nil {
		s.logger.WithError(err).Error("failed to upload contract files")
		s.redirectWithError(w, r, "/contracts", "Erro ao carregar os ficheiros do contrato.")
		return
	}

	amount, _ := strconv.ParseFloat(draft.Amount, 64)
	contract := contractFromDraft(draft, amount)
	contract.FileUrls = fileRefs
	contract.CreatedBy = &session.Email
	contract.UpdatedBy = &session.Email

	if err := s.contractRepo.CreateContract(ctx, contract); err != nil {
		s.logger.WithError(err).Error("failed to create contract")
		s.redirectWithError(w, r, "/contracts", "Erro ao registar contrato.")
		return
	}

	s.logger.WithField("contract_id", contract.ID).Info("contract created")
	s.redirectWithNotice(w, r, "/contracts", "Contrato registado com sucesso.")
}

func (s *Service) handleGetContractUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID := r.PathValue("contractID")

	contract, err := s.contractRepo.Contract(ctx, contractID)
	if err != nil {
		if errors.Is(err, types.ErrContractNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch contract")
		s.internalServerError(w)
		return
	}

	suppliers, err := s.supplierRepo.Suppliers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers")
		s.internalServerError(w)
		return
	}

	data := &types.ContractFormPageData{
		BasePageData: types.BasePageData{Title: "Editar Contrato"},
		Draft: types.ContractDraft{
			SupplierID:   contract.SupplierID,
			SupplierName: contract.Supplier,
			Reference:    contract.Reference,
			Object:       contract.Object,
			Description:  contract.Description,
			StartDate:    contract.StartDate,
			EndDate:      contract.EndDate,
			Amount:       strconv.FormatFloat(contract.Amount, 'f', -1, 64),
			Status:       string(contract.Status),
		},
		FieldErrors: map[string]string{},
		ContractID:  contractID,
		Suppliers:   suppliers,
		Existing:    contract.FileUrls,
	}

	if err := s.renderTemplate(w, r, "page.contract.update", data); err != nil {
		s.logger.WithError(err).Error("failed to render contract update page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostContractUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID := r.PathValue("contractID")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	existing, err := s.contractRepo.Contract(ctx, contractID)
	if err != nil {
		if errors.Is(err, types.ErrContractNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch contract")
		s.internalServerError(w)
		return
	}

	draft, uploads, closeUploads, err := s.decodeContractForm(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode contract form")
		s.internalServerError(w)
		return
	}
	defer closeUploads()

	if fieldErrors := validate.Contract(draft); !validate.Valid(fieldErrors) {
		s.renderContractForm(w, r, "page.contract.update", "Editar Contrato", draft, fieldErrors, contractID, existing.FileUrls)
		return
	}

	uploaded, err := s.storage.UploadAll(ctx, storage.PrefixContracts, uploads)
	if err != nil {
		s.logger.WithError(err).Error("failed to upload contract files")
		s.redirectWithError(w, r, "/contracts", "Erro ao carregar os ficheiros do contrato.")
		return
	}

	deleteURLs := r.PostForm["deleteFiles"]

	amount, _ := strconv.ParseFloat(draft.Amount, 64)
	contract := contractFromDraft(draft, amount)
	contract.FileUrls = storage.MergeFiles(existing.FileUrls, deleteURLs, uploaded)
	contract.CreatedAt = existing.CreatedAt
	contract.CreatedBy = existing.CreatedBy
	contract.UpdatedBy = &session.Email

	if err := s.contractRepo.UpdateContract(ctx, contractID, contract); err != nil {
		s.logger.WithError(err).Error("failed to update contract")
		s.redirectWithError(w, r, "/contracts", "Erro ao actualizar contrato.")
		return
	}

	// Blob removal never blocks the update that already committed.
	s.deleteBlobs(deleteURLs)

	s.logger.WithField("contract_id", contractID).Info("contract updated")
	s.redirectWithNotice(w, r, "/contracts", "Contrato actualizado com sucesso.")
}

func (s *Service) handlePostContractDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID := r.PathValue("contractID")

	contract, err := s.contractRepo.Contract(ctx, contractID)
	if err != nil {
		if errors.Is(err, types.ErrContractNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch contract")
		s.internalServerError(w)
		return
	}

	if err := s.contractRepo.DeleteContract(ctx, contractID); err != nil {
		s.logger.WithError(err).Error("failed to delete contract")
		s.redirectWithError(w, r, "/contracts", "Erro ao eliminar contrato.")
		return
	}

	urls := make([]string, 0, len(contract.FileUrls))
	for _, file := range contract.FileUrls {
		urls = append(urls, file.URL)
	}
	s.deleteBlobs(urls)

	s.logger.WithField("contract_id", contractID).Info("contract deleted")
	s.redirectWithNotice(w, r, "/contracts", "Contrato eliminado com sucesso.")
}

func (s *Service) renderContractForm(w http.ResponseWriter, r *http.Request, templateName, title string, draft types.ContractDraft, fieldErrors map[string]string, contractID string, existing []types.FileRef) {
	suppliers, err := s.supplierRepo.Suppliers(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers")
		s.internalServerError(w)
		return
	}

	data := &types.ContractFormPageData{
		BasePageData: types.BasePageData{
			Title: title,
			Error: "Verifique os campos assinalados.",
		},
		Draft:       draft,
		FieldErrors: fieldErrors,
		ContractID:  contractID,
		Suppliers:   suppliers,
		Existing:    existing,
	}

	w.WriteHeader(http.StatusBadRequest)
	if err := s.renderTemplate(w, r, templateName, data); err != nil {
		s.logger.WithError(err).Error("failed to render contract form")
		s.internalServerError(w)
	}
}

func (s *Service) decodeContractForm(r *http.Request) (types.ContractDraft, []storage.Upload, func(), error) {
	var draft types.ContractDraft

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return draft, nil, func() {}, err
	}

	if err := decoder.Decode(&draft, r.PostForm); err != nil {
		return draft, nil, func() {}, err
	}

	uploads, closeUploads, err := openUploads(r.MultipartForm, "files")
	if err != nil {
		return draft, nil, func() {}, err
	}

	return draft, uploads, closeUploads, nil
}

// openUploads opens every file submitted under the given field. The
// returned closer releases them once the upload fan-out finishes.
func openUploads(form *multipart.Form, field string) ([]storage.Upload, func(), error) {
	if form == nil {
		return nil, func() {}, nil
	}

	var uploads []storage.Upload
	var opened []multipart.File

	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, header := range form.File[field] {
		if header.Filename == "" {
			continue
		}

		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}

		opened = append(opened, f)
		uploads = append(uploads, storage.Upload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	return uploads, closeAll, nil
}

// deleteBlobs removes stored files best-effort: failures are logged and
// never surface to the caller.
func (s *Service) deleteBlobs(urls []string) {
	for _, fileURL := range urls {
		if fileURL == "" {
			continue
		}
		// Detached from the request so a client disconnect does not
		// cancel the cleanup.
		if err := s.storage.Delete(context.Background(), fileURL); err != nil {
			s.logger.WithError(err).WithField("url", fileURL).Warn("failed to delete stored file")
		}
	}
}

func supplierNameByID(suppliers []*types.Supplier, id string) string {
	if id == "" {
		return ""
	}
	for _, supplier := range suppliers {
		if supplier.ID == id {
			return supplier.Name
		}
	}
	return ""
}

func contractFromDraft(draft types.ContractDraft, amount float64) *types.Contract {
	return &types.Contract{
		Supplier:    draft.SupplierName,
		SupplierID:  draft.SupplierID,
		Reference:   draft.Reference,
		Object:      draft.Object,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Amount:      amount,
		Status:      types.ContractStatus(draft.Status),
	}
}
