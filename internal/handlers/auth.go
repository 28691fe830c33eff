package handlers

import (
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/auth"
)

func (h *HandlerSet) parseAuthData(req *http.Request) (login string, password string, err error) {

	var data struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := decodeBody(req, &data); err != nil {
		return "", "", err
	}

	if data.Login == "" || data.Password == "" {
		return "", "", ErrAuthDataEmpty
	}

	return data.Login, data.Password, nil
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	login, password, err := h.parseAuthData(req)
	if err != nil {
		if errors.Is(err, ErrAuthDataEmpty) {
			http.Error(w, "Login and password cannot be empty",
				http.StatusBadRequest)
			return
		}
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
		return
	}

	if login != h.adminLogin || !auth.CheckPasswordHash(password, h.adminPasswordHash) {
		logger.Warningf("Failed admin login attempt for %q", login)
		http.Error(w, "Wrong login or password", http.StatusUnauthorized)
		return
	}

	err = auth.SetAuthCookie(login, w, h.secret, h.cookieExpiresSeconds)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain")

	_, err = w.Write([]byte("success"))
	if err != nil {
		logger.Error(err)
	}
}
