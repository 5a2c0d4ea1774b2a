package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patomosley/barbar-shop/internal/session"
)

// ContextSession é a chave do *session.Session no contexto do gin.
const ContextSession = "session"

// Auth valida o cookie do console, carrega a sessão do Redis e exige papel de
// administrador. Qualquer falha volta para o login sem mensagem.
func Auth(secret string, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sid, err := session.ParseToken(secret, token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil || sess == nil || !sess.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}
