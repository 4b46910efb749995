package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fornecedores/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeySession contextKey = "session"

const (
	cookieAccessTokenName = "fornecedores_access_token"
	cookieRedirectName    = "fornecedores_redirect"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth validates the encrypted access-token cookie, verifies the
// JWT against the issuer's JWKS and resolves the profile row behind the
// email claim. The resulting session lands in the request context.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieAccessTokenName)
		if err != nil {
			s.logger.WithError(err).Debug("no access token cookie found")

			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)

			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		var accessToken string
		err = s.cookie.Decode(cookieAccessTokenName, cookie.Value, &accessToken)
		if err != nil {
			s.logger.WithError(err).Error("failed to decrypt access token")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		set, err := s.jwksCache.Lookup(r.Context(), s.jwksURL)
		if err != nil {
			s.logger.WithError(err).Error("failed to fetch JWKS")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		token, err := jwt.Parse(
			[]byte(accessToken),
			jwt.WithKeySet(set),
			jwt.WithValidate(true),
		)
		if err != nil {
			s.logger.WithError(err).Error("failed to parse JWT")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Cognito access tokens carry the login name in "username";
		// accounts are provisioned with the email as username.
		var email string
		if err := token.Get("email", &email); err != nil || email == "" {
			if err := token.Get("username", &email); err != nil || email == "" {
				s.logger.Error("no email or username claim in JWT")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
		}

		// Role lives on the profile row, not in the token.
		user, err := s.userRepo.UserByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, types.ErrUserNotFound) {
				s.logger.WithField("email", email).Warn("authenticated user has no profile")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			s.logger.WithError(err).Error("failed to resolve user profile")
			s.internalServerError(w)
			return
		}

		if !user.IsActive {
			s.logger.WithField("email", email).Warn("inactive user attempted access")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeySession, types.Session{
			Email: user.Email,
			Role:  user.Role,
		})

		s.logger.WithFields(logrus.Fields{
			"email": user.Email,
			"role":  user.Role,
		}).Debug("authenticated user")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group behind a single role. It always runs
// inside RequireAuth.
func (s *Service) RequireRole(role types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := s.sessionFromContext(r.Context())
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if session.Role != role {
				s.logger.WithFields(logrus.Fields{
					"email": session.Email,
					"role":  session.Role,
					"path":  r.URL.Path,
				}).Warn("role gate rejected request")
				s.notFound(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
