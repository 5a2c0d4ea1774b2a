package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/view"
)

type AppointmentHandler struct {
	api     *backend.Client
	flashes *notify.Store
	logger  zerolog.Logger
}

func NewAppointmentHandler(api *backend.Client, flashes *notify.Store, logger zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{api: api, flashes: flashes, logger: logger}
}

// UpdateStatus muda o status de um agendamento e volta para a seção de
// origem, que recarrega a lista na renderização seguinte.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	from, ok := view.ParseSection(c.PostForm("from"))
	if !ok {
		from = view.SectionAppointments
	}
	target := "/admin/" + string(from)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao atualizar status: agendamento inválido")
		redirect(c, target)
		return
	}

	status := c.PostForm("status")
	if !models.ValidStatus(status) {
		h.flashes.Error(ctx, sess.ID, "Erro ao atualizar status: status inválido")
		redirect(c, target)
		return
	}

	if err := h.api.WithCookie(sess.BackendCookie).UpdateAppointmentStatus(ctx, id, status); err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao atualizar status: "+errMessage(err))
		redirect(c, target)
		return
	}

	h.flashes.Success(ctx, sess.ID, "Status atualizado com sucesso!")
	redirect(c, target)
}
