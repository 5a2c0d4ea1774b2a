package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/notify"
)

type ScheduleHandler struct {
	api     *backend.Client
	flashes *notify.Store
	logger  zerolog.Logger
}

func NewScheduleHandler(api *backend.Client, flashes *notify.Store, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{api: api, flashes: flashes, logger: logger}
}

// Save envia a semana inteira num lote. Dias com horário em branco ficam de
// fora do lote e somem do expediente.
func (h *ScheduleHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	entries := make([]models.WorkScheduleEntry, 0, 7)
	for day := 0; day < 7; day++ {
		start := c.PostForm(fmt.Sprintf("start_%d", day))
		end := c.PostForm(fmt.Sprintf("end_%d", day))
		if start == "" || end == "" {
			continue
		}
		entries = append(entries, models.WorkScheduleEntry{
			DayOfWeek:  day,
			StartTime:  start,
			EndTime:    end,
			IsExtended: c.PostForm(fmt.Sprintf("extended_%d", day)) != "",
		})
	}

	if err := h.api.WithCookie(sess.BackendCookie).SaveWorkSchedule(ctx, entries); err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao salvar horários: "+errMessage(err))
		redirect(c, "/admin/schedule")
		return
	}

	h.flashes.Success(ctx, sess.ID, "Horários salvos com sucesso!")
	redirect(c, "/admin/schedule")
}
