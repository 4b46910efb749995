package server

import (
	"errors"
	"net/http"
	"time"

	"fornecedores/internal/validate"
	"fornecedores/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

func (s *Service) handleGetLogin(w http.ResponseWriter, r *http.Request) {

	_, err := r.Cookie(cookieAccessTokenName)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := &types.LoginPageData{
		BasePageData: types.BasePageData{
			Title: "Entrar",
			Error: r.URL.Query().Get("error"),
		},
		FieldErrors: map[string]string{},
	}

	if err := s.renderTemplate(w, r, "page.login", data); err != nil {
		s.logger.WithError(err).Error("failed to render login page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if fieldErrors := validate.Login(email, password); len(fieldErrors) > 0 {
		data := &types.LoginPageData{
			BasePageData: types.BasePageData{Title: "Entrar"},
			Email:        email,
			FieldErrors:  fieldErrors,
		}
		w.WriteHeader(http.StatusBadRequest)
		if err := s.renderTemplate(w, r, "page.login", data); err != nil {
			s.logger.WithError(err).Error("failed to render login page")
			s.internalServerError(w)
		}
		return
	}

	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: cognitotypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.config.CognitoClientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	}

	resp, err := s.cognitoClient.InitiateAuth(r.Context(), input)
	if err != nil {
		s.logger.WithError(err).Warn("login rejected by identity provider")
		s.renderLoginError(w, r, email, translateAuthError(err))
		return
	}

	if resp.AuthenticationResult == nil || resp.AuthenticationResult.AccessToken == nil {
		s.renderLoginError(w, r, email, "Erro ao fazer login. Tente novamente.")
		return
	}

	accessToken := aws.ToString(resp.AuthenticationResult.AccessToken)
	expiresIn := int(resp.AuthenticationResult.ExpiresIn)

	encryptedToken, err := s.cookie.Encode(cookieAccessTokenName, accessToken)
	if err != nil {
		s.logger.WithError(err).Error("failed to encrypt access token")
		s.renderLoginError(w, r, email, "Erro ao fazer login. Tente novamente.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieAccessTokenName,
		Value:    encryptedToken,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   expiresIn,
		Path:     "/",
	})

	// Honor an unauthed-redirect cookie if one was set
	redirectCookie, err := r.Cookie(cookieRedirectName)
	if err == nil {
		path := redirectCookie.Value
		s.clearRedirectCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieAccessTokenName,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Service) renderLoginError(w http.ResponseWriter, r *http.Request, email, msg string) {
	data := &types.LoginPageData{
		BasePageData: types.BasePageData{
			Title: "Entrar",
			Error: msg,
		},
		Email:       email,
		FieldErrors: map[string]string{},
	}

	w.WriteHeader(http.StatusUnauthorized)
	if err := s.renderTemplate(w, r, "page.login", data); err != nil {
		s.logger.WithError(err).Error("failed to render login page")
		s.internalServerError(w)
	}
}

// translateAuthError maps identity-provider failures to the Portuguese
// messages shown on the login form.
func translateAuthError(err error) string {
	var notAuthorized *cognitotypes.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return "Email ou palavra-passe incorrectos."
	}

	var notFound *cognitotypes.UserNotFoundException
	if errors.As(err, &notFound) {
		return "Email ou palavra-passe incorrectos."
	}

	var notConfirmed *cognitotypes.UserNotConfirmedException
	if errors.As(err, &notConfirmed) {
		return "Conta ainda não confirmada. Contacte o administrador."
	}

	var tooMany *cognitotypes.TooManyRequestsException
	if errors.As(err, &tooMany) {
		return "Demasiadas tentativas. Aguarde alguns minutos."
	}

	var disabled *cognitotypes.PasswordResetRequiredException
	if errors.As(err, &disabled) {
		return "É necessário redefinir a palavra-passe. Contacte o administrador."
	}

	return "Erro ao fazer login. Tente novamente."
}

func (s *Service) setRedirectCookie(w http.ResponseWriter, path string, age time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieRedirectName,
		Value:    path,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(age.Seconds()),
	})
}

func (s *Service) clearRedirectCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieRedirectName,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
