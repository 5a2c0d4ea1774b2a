package backend

import (
	"context"

	"github.com/patomosley/barbar-shop/internal/models"
)

func (c *Client) GetWorkSchedule(ctx context.Context) ([]models.WorkScheduleEntry, error) {
	var env struct {
		WorkSchedule []models.WorkScheduleEntry `json:"work_schedule"`
	}
	if err := c.get(ctx, "schedule_get", "/api/work_schedule", nil, &env); err != nil {
		return nil, err
	}
	return env.WorkSchedule, nil
}

// SaveWorkSchedule substitui a semana inteira de uma vez: o backend apaga o
// que existe e recria a partir do lote.
func (c *Client) SaveWorkSchedule(ctx context.Context, entries []models.WorkScheduleEntry) error {
	batch := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		batch = append(batch, map[string]any{
			"day_of_week": e.DayOfWeek,
			"start_time":  e.StartTime,
			"end_time":    e.EndTime,
			"is_extended": e.IsExtended,
		})
	}
	return c.post(ctx, "schedule_save", "/api/work_schedule", batch, nil)
}
