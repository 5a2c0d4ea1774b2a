package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/session"
)

func TestRenderAppointmentsEmpty(t *testing.T) {
	html := string(RenderAppointments(&session.AppState{}))
	assert.Contains(t, html, "Nenhum agendamento encontrado.")
}

func TestRenderAppointmentsRows(t *testing.T) {
	st := &session.AppState{Appointments: []models.Appointment{
		{ID: 1, ClientName: "João", ServiceName: "Corte", ServicePrice: 50, Date: "2024-03-15", Time: "09:00", Status: models.StatusPending},
		{ID: 2, ClientName: "Maria", ServiceName: "Barba", ServicePrice: 1500.5, Date: "2024-03-16", Time: "10:30", Status: models.StatusConfirmed},
	}}

	html := string(RenderAppointments(st))
	assert.Contains(t, html, "João")
	assert.Contains(t, html, "Maria")
	assert.Contains(t, html, "15/03/2024")
	assert.Contains(t, html, "R$ 1.500,50")
	assert.Contains(t, html, "Pendente")
	assert.Contains(t, html, "Confirmado")
	assert.Contains(t, html, `action="/admin/appointments/1/status"`)
	assert.Equal(t, 2, strings.Count(html, "<tr>")-1) // menos o cabeçalho
}

func TestRenderClientsEmpty(t *testing.T) {
	html := string(RenderClients(&session.AppState{}))
	assert.Contains(t, html, "Nenhum cliente encontrado.")
}

func TestRenderClientsFallbackDash(t *testing.T) {
	st := &session.AppState{Clients: []models.User{
		{ID: 7, Username: "zé", Role: models.RoleClient},
	}}

	html := string(RenderClients(st))
	assert.Contains(t, html, "zé")
	assert.Contains(t, html, "<td>-</td>")
	assert.Contains(t, html, `action="/admin/clients/7/delete"`)
}

func TestFilterClients(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "admin", Role: models.RoleAdmin},
		{ID: 2, Username: "joao", Role: models.RoleClient},
		{ID: 3, Username: "maria", Role: models.RoleClient},
	}

	clients := FilterClients(users)
	require.Len(t, clients, 2)
	assert.Equal(t, "joao", clients[0].Username)
	assert.Equal(t, "maria", clients[1].Username)
}

func TestRenderServicesIncludesForm(t *testing.T) {
	st := &session.AppState{Services: []models.Service{
		{ID: 3, Name: "Corte", Duration: 30, Price: 50},
	}}

	html := string(RenderServices(st))
	assert.Contains(t, html, `action="/admin/services"`)
	assert.Contains(t, html, "Corte")
	assert.Contains(t, html, "30 min")
	assert.Contains(t, html, "R$ 50,00")
	assert.Contains(t, html, `action="/admin/services/3/delete"`)
}

func TestScheduleRowsDefaults(t *testing.T) {
	rows := ScheduleRows(nil)
	require.Len(t, rows, 7)
	assert.Equal(t, "Segunda", rows[0].Day)
	assert.Equal(t, "Domingo", rows[6].Day)
	for _, row := range rows {
		assert.Equal(t, models.DefaultStartTime, row.Start)
		assert.Equal(t, models.DefaultEndTime, row.End)
		assert.False(t, row.Extended)
	}
}

func TestScheduleRowsUsesEntries(t *testing.T) {
	entries := []models.WorkScheduleEntry{
		{DayOfWeek: 2, StartTime: "10:00", EndTime: "20:00", IsExtended: true},
	}

	rows := ScheduleRows(entries)
	assert.Equal(t, "10:00", rows[2].Start)
	assert.Equal(t, "20:00", rows[2].End)
	assert.True(t, rows[2].Extended)
	assert.Equal(t, models.DefaultStartTime, rows[0].Start)
}

func TestRenderScheduleInputNames(t *testing.T) {
	html := string(RenderSchedule(&session.AppState{}))
	for i := 0; i < 7; i++ {
		assert.Contains(t, html, `name="start_`+string(rune('0'+i))+`"`)
	}
	assert.Contains(t, html, `action="/admin/schedule"`)
}

func TestRenderDashboardConfirmOnlyPending(t *testing.T) {
	st := &session.AppState{Dashboard: &session.DashboardState{
		Summary: models.FinanceSummary{
			Today: models.PeriodTotals{Revenue: 150, Appointments: 3, Pending: 1},
			Month: models.PeriodTotals{Revenue: 1500.5},
		},
		Today: []models.Appointment{
			{ID: 1, ClientName: "João", Status: models.StatusPending},
			{ID: 2, ClientName: "Maria", Status: models.StatusConfirmed},
		},
	}}

	html := string(RenderDashboard(st))
	assert.Contains(t, html, "R$ 150,00")
	assert.Contains(t, html, "R$ 1.500,50")
	assert.Contains(t, html, `action="/admin/appointments/1/status"`)
	assert.NotContains(t, html, `action="/admin/appointments/2/status"`)
	assert.Equal(t, 1, strings.Count(html, "Confirmar</button>"))
}

func TestRenderDashboardEmptyState(t *testing.T) {
	html := string(RenderDashboard(&session.AppState{}))
	assert.Contains(t, html, "Nenhum agendamento para hoje.")
	assert.Contains(t, html, "R$ 0,00")
}

func TestRenderFinanceControlsOnly(t *testing.T) {
	html := string(RenderFinance(&session.AppState{}, models.ReportDaily, "2024-03-15"))
	assert.Contains(t, html, `value="daily" selected`)
	assert.Contains(t, html, `value="2024-03-15"`)
	assert.NotContains(t, html, "Relatório Diário")
}

func TestRenderFinanceReportTitles(t *testing.T) {
	tests := []struct {
		name       string
		state      session.FinanceState
		wantTitle  string
		wantPeriod string
	}{
		{
			name: "daily",
			state: session.FinanceState{
				Type:   models.ReportDaily,
				Date:   "2024-03-15",
				Report: models.FinanceReport{Date: "2024-03-15", TotalRevenue: 200, TotalAppointments: 4},
			},
			wantTitle:  "Relatório Diário",
			wantPeriod: "15/03/2024",
		},
		{
			name: "monthly",
			state: session.FinanceState{
				Type:   models.ReportMonthly,
				Date:   "2024-03-15",
				Report: models.FinanceReport{Year: 2024, Month: 3, TotalRevenue: 200, TotalAppointments: 4},
			},
			wantTitle:  "Relatório Mensal",
			wantPeriod: "3/2024",
		},
		{
			name: "annual",
			state: session.FinanceState{
				Type:   models.ReportAnnual,
				Date:   "2024-03-15",
				Report: models.FinanceReport{Year: 2024, TotalRevenue: 200, TotalAppointments: 4},
			},
			wantTitle:  "Relatório Anual",
			wantPeriod: "2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &session.AppState{Finance: &tt.state}
			html := string(RenderFinance(st, models.ReportDaily, ""))
			assert.Contains(t, html, tt.wantTitle+" - "+tt.wantPeriod)
			assert.Contains(t, html, "R$ 200,00")
		})
	}
}

func TestRenderFinanceBreakdowns(t *testing.T) {
	st := &session.AppState{Finance: &session.FinanceState{
		Type: models.ReportMonthly,
		Date: "2024-03-15",
		Report: models.FinanceReport{
			Year: 2024, Month: 3,
			TotalRevenue:      350,
			TotalAppointments: 7,
			ServicesCount:     map[string]int{"Corte": 5, "Barba": 2},
			DailyRevenue:      map[string]float64{"2024-03-01": 100},
		},
	}}

	html := string(RenderFinance(st, models.ReportDaily, ""))
	assert.Contains(t, html, "Serviços Mais Procurados")
	assert.Contains(t, html, "<strong>Corte:</strong> 5 agendamentos")
	assert.Contains(t, html, "Receita por Dia")
	assert.Contains(t, html, "<strong>01/03/2024:</strong> R$ 100,00")
}
