package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"fornecedores/internal/storage"
	"fornecedores/internal/store"
	"fornecedores/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	cognitoClient *cognitoidentityprovider.Client
	storage       storage.Provider
	cookie        *securecookie.SecureCookie

	supplierRepo  *store.SupplierRepository
	contractRepo  *store.ContractRepository
	documentRepo  *store.DocumentRepository
	folderRepo    *store.FolderRepository
	candidateRepo *store.CandidateRepository
	userRepo      *store.UserRepository

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	blobStorage storage.Provider,
	supplierRepo *store.SupplierRepository,
	contractRepo *store.ContractRepository,
	documentRepo *store.DocumentRepository,
	folderRepo *store.FolderRepository,
	candidateRepo *store.CandidateRepository,
	userRepo *store.UserRepository,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:        logger,
		config:        config,
		cognitoClient: cognitoClient,
		storage:       blobStorage,
		cookie:        securecookie.New(hashKey, blockKey),

		supplierRepo:  supplierRepo,
		contractRepo:  contractRepo,
		documentRepo:  documentRepo,
		folderRepo:    folderRepo,
		candidateRepo: candidateRepo,
		userRepo:      userRepo,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout, http.MethodGet)

	// Public candidatura form
	r.HandleFunc("/candidaturas", s.handleGetCandidatura, http.MethodGet)
	r.HandleFunc("/candidaturas", s.handlePostCandidatura, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/", s.handleDashboard, http.MethodGet)

		r.HandleFunc("/suppliers", s.handleSuppliers, http.MethodGet)
		r.HandleFunc("/suppliers/create", s.handleGetSupplierCreate, http.MethodGet)
		r.HandleFunc("/suppliers/create", s.handlePostSupplierCreate, http.MethodPost)
		r.HandleFunc("/supplier/:supplierID/view", s.handleSupplierView, http.MethodGet)
		r.HandleFunc("/supplier/:supplierID/view/contracts", s.handleSupplierContracts, http.MethodGet)
		r.HandleFunc("/supplier/:supplierID/view/documents", s.handleSupplierDocuments, http.MethodGet)
		r.HandleFunc("/supplier/:supplierID/update", s.handleGetSupplierUpdate, http.MethodGet)
		r.HandleFunc("/supplier/:supplierID/update", s.handlePostSupplierUpdate, http.MethodPost)

		r.HandleFunc("/contracts", s.handleContracts, http.MethodGet)
		r.HandleFunc("/contracts/create", s.handleGetContractCreate, http.MethodGet)
		r.HandleFunc("/contracts/create", s.handlePostContractCreate, http.MethodPost)
		r.HandleFunc("/contract/:contractID/update", s.handleGetContractUpdate, http.MethodGet)
		r.HandleFunc("/contract/:contractID/update", s.handlePostContractUpdate, http.MethodPost)
		r.HandleFunc("/contract/:contractID/delete", s.handlePostContractDelete, http.MethodPost)

		r.HandleFunc("/documents", s.handleDocuments, http.MethodGet)
		r.HandleFunc("/documents/create", s.handleGetDocumentCreate, http.MethodGet)
		r.HandleFunc("/documents/create", s.handlePostDocumentCreate, http.MethodPost)
		r.HandleFunc("/document/:documentID/update", s.handleGetDocumentUpdate, http.MethodGet)
		r.HandleFunc("/document/:documentID/update", s.handlePostDocumentUpdate, http.MethodPost)
		r.HandleFunc("/folders/create", s.handlePostFolderCreate, http.MethodPost)

		r.HandleFunc("/candidates", s.handleCandidates, http.MethodGet)
		r.HandleFunc("/candidate/:candidateID/approve", s.handlePostCandidateApprove, http.MethodPost)
		r.HandleFunc("/candidate/:candidateID/reject", s.handlePostCandidateReject, http.MethodPost)
		r.HandleFunc("/candidate/:candidateID/review", s.handlePostCandidateReview, http.MethodPost)

		r.Group(func(r *flow.Mux) {
			r.Use(s.RequireRole(types.RoleSuperAdmin))

			r.HandleFunc("/users", s.handleUsers, http.MethodGet)
			r.HandleFunc("/users/create", s.handleGetUserCreate, http.MethodGet)
			r.HandleFunc("/users/create", s.handlePostUserCreate, http.MethodPost)
			r.HandleFunc("/user/:userID/delete", s.handlePostUserDelete, http.MethodPost)
		})
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"currency": formatCurrency,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) sessionFromContext(ctx context.Context) (types.Session, error) {
	session, ok := ctx.Value(contextKeySession).(types.Session)
	if !ok || session.Email == "" {
		return types.Session{}, fmt.Errorf("session not found in context")
	}
	return session, nil
}
