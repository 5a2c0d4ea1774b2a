package backend

import (
	"context"
	"fmt"

	"github.com/patomosley/barbar-shop/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var env struct {
		Users []models.User `json:"users"`
	}
	if err := c.get(ctx, "users_list", "/api/users", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, "user_delete", fmt.Sprintf("/api/users/%d", id))
}
