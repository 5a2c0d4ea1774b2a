package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/patomosley/barbar-shop/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userEnvelope struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

// Login autentica no backend e captura o cookie de sessão devolvido.
// O cookie é o que as demais chamadas autenticadas enviam de volta.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	var env userEnvelope
	resp, err := c.roundTrip(ctx, "login", http.MethodPost, "/api/login", nil,
		loginRequest{Username: username, Password: password}, &env)
	if err != nil {
		return nil, "", err
	}

	var pairs []string
	for _, ck := range resp.Cookies() {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	return &env.User, strings.Join(pairs, "; "), nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "logout", "/api/logout", nil, nil)
}

// Me devolve o usuário da sessão corrente do backend.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.get(ctx, "me", "/api/me", nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}
