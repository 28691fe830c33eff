package auth

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

type contextKey string

const loginKey contextKey = "admin_login"

type AuthenticateMiddleware struct {
	Secret []byte
}

func (m *AuthenticateMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, err := VerifyAdmin(r, m.Secret)
		if err != nil {
			logger.Debugf("Rejected admin request to %s: %s", r.URL.Path, err.Error())
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), loginKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetAuthenticatedAdmin(r *http.Request) (string, bool) {
	login, ok := r.Context().Value(loginKey).(string)
	return login, ok
}
