package backend

import (
	"context"
	"fmt"

	"github.com/patomosley/barbar-shop/internal/models"
)

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var env struct {
		Services []models.Service `json:"services"`
	}
	if err := c.get(ctx, "services_list", "/api/services", nil, &env); err != nil {
		return nil, err
	}
	return env.Services, nil
}

type CreateServiceInput struct {
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

func (c *Client) CreateService(ctx context.Context, in CreateServiceInput) error {
	return c.post(ctx, "service_create", "/api/services", in, nil)
}

func (c *Client) DeleteService(ctx context.Context, id int) error {
	return c.delete(ctx, "service_delete", fmt.Sprintf("/api/services/%d", id))
}
