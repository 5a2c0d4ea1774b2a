package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/session"
	"github.com/patomosley/barbar-shop/internal/timezone"
	"github.com/patomosley/barbar-shop/internal/view"
)

type AdminHandler struct {
	api      *backend.Client
	sessions *session.Store
	flashes  *notify.Store
	logger   zerolog.Logger
}

func NewAdminHandler(api *backend.Client, sessions *session.Store, flashes *notify.Store, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{api: api, sessions: sessions, flashes: flashes, logger: logger}
}

// Section renderiza uma seção do painel. Entrar numa seção dispara o load
// dos dados dela; se o load falha, a página sai com o último estado bom e
// uma notificação de erro.
func (h *AdminHandler) Section(c *gin.Context) {
	ctx := c.Request.Context()
	sess := sessionFrom(c)

	sec, ok := view.ParseSection(c.Param("section"))
	if !ok {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	api := h.api.WithCookie(sess.BackendCookie)
	st := &sess.State

	reportType := c.DefaultQuery("type", models.ReportDaily)
	reportDate := c.DefaultQuery("date", timezone.Today())

	var err error
	switch sec {
	case view.SectionDashboard:
		err = view.LoadDashboard(ctx, api, st)
	case view.SectionAppointments:
		err = view.LoadAppointments(ctx, api, st)
	case view.SectionClients:
		err = view.LoadClients(ctx, api, st)
	case view.SectionServices:
		err = view.LoadServices(ctx, api, st)
	case view.SectionSchedule:
		err = view.LoadSchedule(ctx, api, st)
	case view.SectionFinance:
		err = view.LoadFinance(ctx, api, st, reportType, reportDate)
	}
	if err != nil {
		h.logger.Warn().Err(err).Str("section", string(sec)).Msg("section load failed")
		h.flashes.Error(ctx, sess.ID, fmt.Sprintf("Erro ao carregar %s: %s", sec.Title(), errMessage(err)))
	}

	if err := h.sessions.Save(ctx, sess); err != nil {
		h.logger.Warn().Err(err).Msg("failed to persist session state")
	}

	flashes, _ := h.flashes.PopAll(ctx, sess.ID)
	c.HTML(http.StatusOK, "admin", view.AdminPageData{
		Title:   sec.Title(),
		Welcome: fmt.Sprintf("Bem-vindo, %s!", sess.User.DisplayName()),
		Nav:     view.BuildNav(sec),
		Flashes: flashes,
		Content: sectionContent(sec, st, reportType, reportDate),
	})
}

func sectionContent(sec view.Section, st *session.AppState, reportType, reportDate string) template.HTML {
	switch sec {
	case view.SectionDashboard:
		return view.RenderDashboard(st)
	case view.SectionAppointments:
		return view.RenderAppointments(st)
	case view.SectionClients:
		return view.RenderClients(st)
	case view.SectionServices:
		return view.RenderServices(st)
	case view.SectionSchedule:
		return view.RenderSchedule(st)
	case view.SectionFinance:
		return view.RenderFinance(st, reportType, reportDate)
	}
	return ""
}
