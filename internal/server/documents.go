package server

import (
	"errors"
	"net/http"
	"strings"

	"fornecedores/internal/stats"
	"fornecedores/internal/storage"
	"fornecedores/internal/utils"
	"fornecedores/internal/validate"
	"fornecedores/pkg/types"
)

func (s *Service) handleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	folderID := r.URL.Query().Get("folderId")

	pageError := r.URL.Query().Get("error")

	var documents []*types.Document
	var err error
	if folderID != "" {
		documents, err = s.documentRepo.DocumentsByFolder(ctx, folderID)
	} else {
		documents, err = s.documentRepo.Documents(ctx)
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch documents")
		pageError = msgLoadFailed
	}

	folders, err := s.folderRepo.Folders(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch folders")
		pageError = msgLoadFailed
	}

	data := &types.DocumentListPageData{
		BasePageData: types.BasePageData{
			Title:  "Documentos",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		Documents: documents,
		Folders:   folders,
		FolderID:  folderID,
		Stats:     stats.Documents(documents),
	}

	if err := s.renderTemplate(w, r, "page.documents", data); err != nil {
		s.logger.WithError(err).Error("failed to render documents page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetDocumentCreate(w http.ResponseWriter, r *http.Request) {
	s.renderDocumentForm(w, r, "page.documents.create", "Registar Documento", types.DocumentDraft{}, map[string]string{}, "", nil, http.StatusOK)
}

func (s *Service) handlePostDocumentCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	draft, uploads, closeUploads, err := s.decodeDocumentForm(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode document form")
		s.internalServerError(w)
		return
	}
	defer closeUploads()

	if fieldErrors := validate.DocumentCreate(draft); !validate.Valid(fieldErrors) {
		s.renderDocumentForm(w, r, "page.documents.create", "Registar Documento", draft, fieldErrors, "", nil, http.StatusBadRequest)
		return
	}

	fileRefs, err := s.storage.UploadAll(ctx, storage.PrefixDocuments, uploads)
	if err != nil {
		s.logger.WithError(err).Error("failed to upload document files")
		s.redirectWithError(w, r, "/documents", "Erro ao carregar os ficheiros do documento.")
		return
	}

	document := documentFromDraft(draft)
	document.FileUrls = fileRefs
	document.UpdatedBy = &session.Email

	if err := s.documentRepo.CreateDocument(ctx, document); err != nil {
		s.logger.WithError(err).Error("failed to create document")
		s.redirectWithError(w, r, "/documents", "Erro ao registar documento.")
		return
	}

	s.logger.WithField("document_id", document.ID).Info("document created")
	s.redirectWithNotice(w, r, "/documents", "Documento registado com sucesso.")
}

func (s *Service) handleGetDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	documentID := r.PathValue("documentID")

	document, err := s.documentRepo.Document(ctx, documentID)
	if err != nil {
		if errors.Is(err, types.ErrDocumentNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch document")
		s.internalServerError(w)
		return
	}

	draft := types.DocumentDraft{
		Reference:    document.Reference,
		Title:        document.Title,
		Description:  document.Description,
		StartDate:    document.StartDate,
		SupplierID:   utils.PtrString(document.SupplierID),
		SupplierName: utils.PtrString(document.SupplierName),
		FolderID:     utils.PtrString(document.FolderID),
		FolderName:   utils.PtrString(document.FolderName),
		Office:       utils.PtrString(document.Office),
	}

	s.renderDocumentForm(w, r, "page.document.update", "Editar Documento", draft, map[string]string{}, documentID, document.FileUrls, http.StatusOK)
}

func (s *Service) handlePostDocumentUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	documentID := r.PathValue("documentID")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	existing, err := s.documentRepo.Document(ctx, documentID)
	if err != nil {
		if errors.Is(err, types.ErrDocumentNotFound) {
			s.notFound(w, r)
			return
		}
		s.logger.WithError(err).Error("failed to fetch document")
		s.internalServerError(w)
		return
	}

	draft, uploads, closeUploads, err := s.decodeDocumentForm(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to decode document form")
		s.internalServerError(w)
		return
	}
	defer closeUploads()

	draft.NewFileCount = len(uploads)

	if fieldErrors := validate.DocumentUpdate(draft); !validate.Valid(fieldErrors) {
		s.renderDocumentForm(w, r, "page.document.update", "Editar Documento", draft, fieldErrors, documentID, existing.FileUrls, http.StatusBadRequest)
		return
	}

	uploaded, err := s.storage.UploadAll(ctx, storage.PrefixDocuments, uploads)
	if err != nil {
		s.logger.WithError(err).Error("failed to upload document files")
		s.redirectWithError(w, r, "/documents", "Erro ao carregar os ficheiros do documento.")
		return
	}

	// Files absent from existingFiles were removed on the form.
	keep := make(map[string]struct{}, len(draft.ExistingFiles))
	for _, u := range draft.ExistingFiles {
		keep[u] = struct{}{}
	}
	var deleteURLs []string
	for _, file := range existing.FileUrls {
		if _, ok := keep[file.URL]; !ok {
			deleteURLs = append(deleteURLs, file.URL)
		}
	}

	document := documentFromDraft(draft)
	document.FileUrls = storage.MergeFiles(existing.FileUrls, deleteURLs, uploaded)
	document.CreatedAt = existing.CreatedAt
	document.UpdatedBy = &session.Email

	if err := s.documentRepo.UpdateDocument(ctx, documentID, document); err != nil {
		s.logger.WithError(err).Error("failed to update document")
		s.redirectWithError(w, r, "/documents", "Erro ao actualizar documento.")
		return
	}

	s.deleteBlobs(deleteURLs)

	s.logger.WithField("document_id", documentID).Info("document updated")
	s.redirectWithNotice(w, r, "/documents", "Documento actualizado com sucesso.")
}

func (s *Service) handlePostFolderCreate(w http.ResponseWriter, r *http.Request) {
	label := strings.TrimSpace(r.FormValue("label"))
	if label == "" {
		s.redirectWithError(w, r, "/documents", "O nome da pasta é obrigatório.")
		return
	}

	folder, err := s.folderRepo.CreateFolder(r.Context(), label)
	if err != nil {
		if errors.Is(err, types.ErrFolderExists) {
			s.redirectWithError(w, r, "/documents", "Já existe uma pasta com esse nome.")
			return
		}
		s.logger.WithError(err).Error("failed to create folder")
		s.redirectWithError(w, r, "/documents", "Erro ao criar pasta.")
		return
	}

	s.logger.WithField("folder_id", folder.ID).Info("folder created")
	s.redirectWithNotice(w, r, "/documents", "Pasta criada com sucesso.")
}

func (s *Service) renderDocumentForm(w http.ResponseWriter, r *http.Request, templateName, title string, draft types.DocumentDraft, fieldErrors map[string]string, documentID string, existing []types.FileRef, status int) {
	ctx := r.Context()

	suppliers, err := s.supplierRepo.Suppliers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch suppliers")
		s.internalServerError(w)
		return
	}

	folders, err := s.folderRepo.Folders(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch folders")
		s.internalServerError(w)
		return
	}

	data := &types.DocumentFormPageData{
		BasePageData: types.BasePageData{Title: title},
		Draft:        draft,
		FieldErrors:  fieldErrors,
		DocumentID:   documentID,
		Suppliers:    suppliers,
		Folders:      folders,
		Existing:     existing,
	}
	if len(fieldErrors) > 0 {
		data.Error = "Verifique os campos assinalados."
	}

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := s.renderTemplate(w, r, templateName, data); err != nil {
		s.logger.WithError(err).Error("failed to render document form")
		s.internalServerError(w)
	}
}

func (s *Service) decodeDocumentForm(r *http.Request) (types.DocumentDraft, []storage.Upload, func(), error) {
	var draft types.DocumentDraft

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

func documentFromDraft(draft types.DocumentDraft) *types.Document {
	return &types.Document{
		Reference:    draft.Reference,
		Title:        draft.Title,
		Description:  draft.Description,
		StartDate:    draft.StartDate,
		SupplierID:   utils.NullableString(draft.SupplierID),
		SupplierName: utils.NullableString(draft.SupplierName),
		FolderID:     utils.NullableString(draft.FolderID),
		FolderName:   utils.NullableString(draft.FolderName),
		Office:       utils.NullableString(draft.Office),
	}
}
