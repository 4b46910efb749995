package server

import (
	"errors"
	"net/http"

	"fornecedores/internal/validate"
	"fornecedores/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

func (s *Service) handleUsers(w http.ResponseWriter, r *http.Request) {
	pageError := r.URL.Query().Get("error")

	users, err := s.userRepo.Users(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch users")
		pageError = msgLoadFailed
	}

	data := &types.UserListPageData{
		BasePageData: types.BasePageData{
			Title:  "Utilizadores",
			Notice: r.URL.Query().Get("notice"),
			Error:  pageError,
		},
		Users: users,
	}

	if err := s.renderTemplate(w, r, "page.users", data); err != nil {
		s.logger.WithError(err).Error("failed to render users page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleGetUserCreate(w http.ResponseWriter, r *http.Request) {
	data := &types.UserFormPageData{
		BasePageData: types.BasePageData{Title: "Criar Utilizador"},
		FieldErrors:  map[string]string{},
		Roles:        []string{string(types.RoleUser), string(types.RoleAdmin), string(types.RoleSuperAdmin)},
	}

	if err := s.renderTemplate(w, r, "page.users.create", data); err != nil {
		s.logger.WithError(err).Error("failed to render user create page")
		s.internalServerError(w)
		return
	}
}

// handlePostUserCreate provisions an account in two steps: the identity
// provider holds the credentials, the profile row holds name and role.
// The password is never persisted locally.
func (s *Service) handlePostUserCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var draft types.UserDraft
	if err := r.ParseForm(); err != nil {
		s.internalServerError(w)
		return
	}
	if err := decoder.Decode(&draft, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode user form")
		s.internalServerError(w)
		return
	}

	if fieldErrors := validate.User(draft); !validate.Valid(fieldErrors) {
		s.renderUserForm(w, r, draft, fieldErrors, "Verifique os campos assinalados.")
		return
	}

	input := &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(s.config.CognitoClientID),
		Username: aws.String(draft.Email),
		Password: aws.String(draft.Password),
		UserAttributes: []cognitotypes.AttributeType{
			{Name: aws.String("email"), Value: aws.String(draft.Email)},
			{Name: aws.String("name"), Value: aws.String(draft.Name)},
		},
	}

	if _, err := s.cognitoClient.SignUp(ctx, input); err != nil {
		s.logger.WithError(err).Error("failed to signup user")
		msg, fieldErrors := s.mapSignUpError(err)
		s.renderUserForm(w, r, draft, fieldErrors, msg)
		return
	}

	user := &types.User{
		Name:  draft.Name,
		Email: draft.Email,
		Role:  types.Role(draft.Role),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		s.logger.WithError(err).Error("failed to create user profile")
		s.redirectWithError(w, r, "/users", "Conta criada no provedor mas o perfil falhou. Contacte o suporte.")
		return
	}

	s.logger.WithField("user_id", user.ID).Info("user created")
	s.redirectWithNotice(w, r, "/users", "Utilizador criado com sucesso.")
}

func (s *Service) handlePostUserDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userID")

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	users, err := s.userRepo.Users(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch users")
		s.internalServerError(w)
		return
	}

	var target *types.User
	for _, u := range users {
		if u.ID == userID {
			target = u
			break
		}
	}
	if target == nil {
		s.notFound(w, r)
		return
	}

	// No self-deletion; the portal must keep at least this admin.
	if target.Email == session.Email {
		s.redirectWithError(w, r, "/users", "Não pode eliminar a sua própria conta.")
		return
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.logger.WithError(err).Error("failed to delete user")
		s.redirectWithError(w, r, "/users", "Erro ao eliminar utilizador.")
		return
	}

	s.logger.WithField("user_id", userID).Info("user deleted")
	s.redirectWithNotice(w, r, "/users", "Utilizador eliminado com sucesso.")
}

func (s *Service) renderUserForm(w http.ResponseWriter, r *http.Request, draft types.UserDraft, fieldErrors map[string]string, msg string) {
	data := &types.UserFormPageData{
		BasePageData: types.BasePageData{
			Title: "Criar Utilizador",
			Error: msg,
		},
		Draft:       draft,
		FieldErrors: fieldErrors,
		Roles:       []string{string(types.RoleUser), string(types.RoleAdmin), string(types.RoleSuperAdmin)},
	}

	w.WriteHeader(http.StatusBadRequest)
	if err := s.renderTemplate(w, r, "page.users.create", data); err != nil {
		s.logger.WithError(err).Error("failed to render user create page")
		s.internalServerError(w)
	}
}

func (s *Service) mapSignUpError(err error) (string, map[string]string) {
	fieldErrors := map[string]string{}

	var invalidPw *cognitotypes.InvalidPasswordException
	if errors.As(err, &invalidPw) {
		fieldErrors["password"] = "A palavra-passe não cumpre os requisitos do provedor."
		return "Verifique os campos assinalados.", fieldErrors
	}

	var userExists *cognitotypes.UsernameExistsException
	if errors.As(err, &userExists) {
		fieldErrors["email"] = "Já existe uma conta com este email."
		return "Verifique os campos assinalados.", fieldErrors
	}

	var invalidParam *cognitotypes.InvalidParameterException
	if errors.As(err, &invalidParam) {
		return "Alguns dados são inválidos. Reveja e tente novamente.", fieldErrors
	}

	s.logger.WithError(err).Error("unhandled signup error")

	return "Não foi possível criar a conta. Tente novamente.", fieldErrors
}
