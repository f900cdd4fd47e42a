package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shadowscrew/capeshop/internal/services/auth"
	"github.com/shadowscrew/capeshop/internal/web/middleware"
	"github.com/shadowscrew/capeshop/internal/web/templates"
)

// AuthHandler serves the login and registration pages
type AuthHandler struct {
	logger      *slog.Logger
	authService *auth.Service
}

func NewAuthHandler(logger *slog.Logger, authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if middleware.GetUser(ctx) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Connexion",
			Flash: middleware.GetFlash(ctx),
		},
	}
	if err := templates.Login(w, data); err != nil {
		h.logger.Error("failed to render login page", "error", err)
	}
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if middleware.GetUser(ctx) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.RegisterData{
		PageData: templates.PageData{
			Title: "Inscription",
			Flash: middleware.GetFlash(ctx),
		},
	}
	if err := templates.Register(w, data); err != nil {
		h.logger.Error("failed to render register page", "error", err)
	}
}

// Login authenticates a user and starts a session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.FormValue("username")
	password := r.FormValue("password")

	session, err := h.authService.Login(ctx, username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Error("login failed", "error", err, "username", username)
		}
		data := templates.LoginData{
			PageData: templates.PageData{Title: "Connexion"},
			Username: username,
			Error:    "Pseudo ou mot de passe incorrect.",
		}
		if err := templates.Login(w, data); err != nil {
			h.logger.Error("failed to render login page", "error", err)
		}
		return
	}

	h.setSessionCookie(w, session)
	middleware.SetFlash(w, "success",
		fmt.Sprintf("Connecté en tant que %s.", session.User.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register creates a new account and logs the user in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.FormValue("username")
	password := r.FormValue("password")

	session, err := h.authService.Register(ctx, username, password)
	if err != nil {
		message := "Une erreur est survenue."
		switch {
		case errors.Is(err, auth.ErrUsernameExists):
			message = "Ce pseudo existe déjà. Choisis-en un autre."
		case errors.Is(err, auth.ErrInvalidCredentials):
			message = "Pseudo et mot de passe requis."
		default:
			h.logger.Error("registration failed", "error", err, "username", username)
		}
		data := templates.RegisterData{
			PageData: templates.PageData{Title: "Inscription"},
			Username: username,
			Error:    message,
		}
		if err := templates.Register(w, data); err != nil {
			h.logger.Error("failed to render register page", "error", err)
		}
		return
	}

	h.setSessionCookie(w, session)
	middleware.SetFlash(w, "success",
		fmt.Sprintf("Compte créé pour %s.", session.User.Username))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		h.authService.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "Déconnecté.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
