package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/timezone"
	"github.com/patomosley/barbar-shop/internal/view"
)

// BookingHandler atende a área do cliente, que agenda sem login.
type BookingHandler struct {
	api     *backend.Client
	flashes *notify.Store
	logger  zerolog.Logger
}

func NewBookingHandler(api *backend.Client, flashes *notify.Store, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{api: api, flashes: flashes, logger: logger}
}

// Page monta a tela de agendamento. Os horários livres só são consultados
// quando serviço e data já foram escolhidos; antes disso a lista fica vazia
// sem erro nenhum.
func (h *BookingHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	scope := anonScope(c)

	data := view.BookingPageData{MinDate: timezone.Today()}

	services, err := h.api.ListServices(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to load services for booking")
		h.flashes.Error(ctx, scope, "Erro ao carregar serviços: "+errMessage(err))
	} else {
		data.Services = services
	}

	data.SelectedDate = c.Query("date")
	if id, err := strconv.Atoi(c.Query("service_id")); err == nil {
		data.SelectedServiceID = id
	}

	if data.SelectedServiceID > 0 && data.SelectedDate != "" {
		times, err := h.api.AvailableTimes(ctx, data.SelectedDate, data.SelectedServiceID)
		if err != nil {
			h.flashes.Error(ctx, scope, "Erro ao carregar horários: "+errMessage(err))
		} else {
			data.Times = times
		}
	}

	data.Flashes, _ = h.flashes.PopAll(ctx, scope)
	c.HTML(http.StatusOK, "booking", data)
}

func (h *BookingHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	scope := anonScope(c)

	serviceID, _ := strconv.Atoi(c.PostForm("service_id"))
	in := backend.CreateAppointmentInput{
		ClientName:  strings.TrimSpace(c.PostForm("client_name")),
		ClientPhone: strings.TrimSpace(c.PostForm("client_phone")),
		ClientEmail: strings.TrimSpace(c.PostForm("client_email")),
		ServiceID:   serviceID,
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
	}

	// em caso de erro a seleção volta na URL para não perder o formulário
	back := "/booking"
	if in.ServiceID > 0 && in.Date != "" {
		q := url.Values{}
		q.Set("service_id", strconv.Itoa(in.ServiceID))
		q.Set("date", in.Date)
		back += "?" + q.Encode()
	}

	if in.ClientName == "" || in.ClientPhone == "" || in.ServiceID <= 0 || in.Date == "" || in.Time == "" {
		h.flashes.Error(ctx, scope, "Preencha todos os campos obrigatórios.")
		redirect(c, back)
		return
	}

	if err := h.api.CreateAppointment(ctx, in); err != nil {
		h.flashes.Error(ctx, scope, "Erro ao criar agendamento: "+errMessage(err))
		redirect(c, back)
		return
	}

	h.flashes.Success(ctx, scope, "Agendamento criado com sucesso!")
	redirect(c, "/booking")
}
