package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/middleware"
	"github.com/patomosley/barbar-shop/internal/session"
)

// flashCookieName identifica o escopo de notificações das páginas públicas
// (login e área do cliente), onde ainda não existe sessão.
const flashCookieName = "salon_flash"

func sessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(middleware.ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// anonScope devolve o escopo de flash de um visitante, criando o cookie
// anônimo na primeira visita.
func anonScope(c *gin.Context) string {
	if v, err := c.Cookie(flashCookieName); err == nil && v != "" {
		return v
	}
	scope := uuid.NewString()
	c.SetCookie(flashCookieName, scope, int((24 * time.Hour).Seconds()), "/", "", false, true)
	return scope
}

// errMessage extrai a mensagem do backend quando houver; erros de transporte
// e afins viram o texto genérico.
func errMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return backend.GenericErrorMessage
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
