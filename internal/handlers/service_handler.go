package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/notify"
)

type ServiceHandler struct {
	api     *backend.Client
	flashes *notify.Store
	logger  zerolog.Logger
}

func NewServiceHandler(api *backend.Client, flashes *notify.Store, logger zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{api: api, flashes: flashes, logger: logger}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	name := strings.TrimSpace(c.PostForm("name"))
	duration, derr := strconv.Atoi(c.PostForm("duration"))
	price, perr := strconv.ParseFloat(c.PostForm("price"), 64)
	if name == "" || derr != nil || duration <= 0 || perr != nil || price < 0 {
		h.flashes.Error(ctx, sess.ID, "Erro ao criar serviço: dados inválidos")
		redirect(c, "/admin/services")
		return
	}

	in := backend.CreateServiceInput{Name: name, Duration: duration, Price: price}
	if err := h.api.WithCookie(sess.BackendCookie).CreateService(ctx, in); err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao criar serviço: "+errMessage(err))
		redirect(c, "/admin/services")
		return
	}

	h.flashes.Success(ctx, sess.ID, "Serviço criado com sucesso!")
	redirect(c, "/admin/services")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao excluir serviço: serviço inválido")
		redirect(c, "/admin/services")
		return
	}

	if err := h.api.WithCookie(sess.BackendCookie).DeleteService(ctx, id); err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao excluir serviço: "+errMessage(err))
		redirect(c, "/admin/services")
		return
	}

	h.flashes.Success(ctx, sess.ID, "Serviço excluído com sucesso!")
	redirect(c, "/admin/services")
}

// EditStub existe porque a edição ainda não foi implementada no backend.
func (h *ServiceHandler) EditStub(c *gin.Context) {
	sess := sessionFrom(c)
	h.flashes.Info(c.Request.Context(), sess.ID, "Funcionalidade em desenvolvimento")
	redirect(c, "/admin/services")
}
