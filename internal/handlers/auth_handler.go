package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/session"
	"github.com/patomosley/barbar-shop/internal/view"
)

type AuthHandler struct {
	api      *backend.Client
	sessions *session.Store
	flashes  *notify.Store
	secret   string
	logger   zerolog.Logger
}

func NewAuthHandler(api *backend.Client, sessions *session.Store, flashes *notify.Store, secret string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, flashes: flashes, secret: secret, logger: logger}
}

// Root decide a tela inicial: sessão de admin válida e ainda aceita pelo
// backend vai direto ao painel, o resto cai no login sem mensagem de erro.
func (h *AuthHandler) Root(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := c.Cookie(session.CookieName)
	if err == nil && token != "" {
		if sid, err := session.ParseToken(h.secret, token); err == nil {
			if sess, err := h.sessions.Get(ctx, sid); err == nil && sess != nil && sess.IsAdmin() {
				if _, err := h.api.WithCookie(sess.BackendCookie).Me(ctx); err == nil {
					redirect(c, "/admin/dashboard")
					return
				}
			}
		}
	}
	redirect(c, "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	flashes, _ := h.flashes.PopAll(c.Request.Context(), anonScope(c))
	c.HTML(http.StatusOK, "login", view.LoginPageData{Flashes: flashes})
}

// Login autentica no backend. Usuários sem papel de admin são rejeitados e
// nenhuma sessão local é criada para eles.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, cookie, err := h.api.Login(ctx, username, password)
	if err != nil {
		h.flashes.Error(ctx, anonScope(c), errMessage(err))
		redirect(c, "/login")
		return
	}

	if user.Role != models.RoleAdmin {
		h.flashes.Error(ctx, anonScope(c), "Acesso negado. Apenas administradores podem acessar.")
		redirect(c, "/login")
		return
	}

	sess := session.New(user, cookie)
	if err := h.sessions.Save(ctx, sess); err != nil {
		h.logger.Error().Err(err).Msg("failed to save session")
		h.flashes.Error(ctx, anonScope(c), backend.GenericErrorMessage)
		redirect(c, "/login")
		return
	}

	token, err := session.SignToken(h.secret, sess.ID, session.DefaultTTL)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign session token")
		h.flashes.Error(ctx, anonScope(c), backend.GenericErrorMessage)
		redirect(c, "/login")
		return
	}

	c.SetCookie(session.CookieName, token, int(session.DefaultTTL.Seconds()), "/", "", false, true)
	h.flashes.Success(ctx, sess.ID, "Login realizado com sucesso!")
	h.logger.Info().Str("username", user.Username).Msg("admin login")
	redirect(c, "/admin/dashboard")
}

// Logout encerra a sessão do backend e a local. Falha no backend não impede
// o encerramento local.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)
	if sess != nil {
		if err := h.api.WithCookie(sess.BackendCookie).Logout(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("backend logout failed")
		}
		if err := h.sessions.Delete(ctx, sess.ID); err != nil {
			h.logger.Warn().Err(err).Msg("failed to delete session")
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	redirect(c, "/login")
}
