package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/notify"
)

type ClientHandler struct {
	api     *backend.Client
	flashes *notify.Store
	logger  zerolog.Logger
}

func NewClientHandler(api *backend.Client, flashes *notify.Store, logger zerolog.Logger) *ClientHandler {
	return &ClientHandler{api: api, flashes: flashes, logger: logger}
}

func (h *ClientHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao excluir cliente: cliente inválido")
		redirect(c, "/admin/clients")
		return
	}

	if err := h.api.WithCookie(sess.BackendCookie).DeleteUser(ctx, id); err != nil {
		h.flashes.Error(ctx, sess.ID, "Erro ao excluir cliente: "+errMessage(err))
		redirect(c, "/admin/clients")
		return
	}

	h.flashes.Success(ctx, sess.ID, "Cliente excluído com sucesso!")
	redirect(c, "/admin/clients")
}

// EditStub existe porque a edição ainda não foi implementada no backend.
func (h *ClientHandler) EditStub(c *gin.Context) {
	sess := sessionFrom(c)
	h.flashes.Info(c.Request.Context(), sess.ID, "Funcionalidade em desenvolvimento")
	redirect(c, "/admin/clients")
}
