package view

import (
	"context"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/session"
)

// LoadDashboard busca o resumo financeiro e os agendamentos do dia e troca o
// estado do dashboard por inteiro. Em caso de erro nada é substituído.
func LoadDashboard(ctx context.Context, api *backend.Client, st *session.AppState) error {
	summary, err := api.FinanceSummary(ctx)
	if err != nil {
		return err
	}
	today, err := api.TodayAppointments(ctx)
	if err != nil {
		return err
	}

	st.Dashboard = &session.DashboardState{
		Summary: *summary,
		Today:   today,
	}
	return nil
}

var dashboardTmpl = parse("dashboard", `<div class="stats-grid">
  <div class="stat-card"><h4 id="todayAppointments">{{.Summary.Today.Appointments}}</h4><p>Agendamentos Hoje</p></div>
  <div class="stat-card"><h4 id="todayRevenue">{{currency .Summary.Today.Revenue}}</h4><p>Receita Hoje</p></div>
  <div class="stat-card"><h4 id="pendingAppointments">{{.Summary.Today.Pending}}</h4><p>Pendentes Hoje</p></div>
  <div class="stat-card"><h4 id="monthRevenue">{{currency .Summary.Month.Revenue}}</h4><p>Receita do Mês</p></div>
</div>
<h3>Agendamentos de Hoje</h3>
<div id="todayAppointmentsList">
{{if not .Today}}<p>Nenhum agendamento para hoje.</p>{{else}}
{{range .Today}}<div class="appointment-item">
  <div class="appointment-info">
    <h4>{{.ClientName}}</h4>
    <p>{{.ServiceName}} - {{ftime .Time}}</p>
    <p>Tel: {{.ClientPhone}}</p>
  </div>
  <div class="appointment-actions">
    <span class="appointment-status status-{{.Status}}">{{statusText .Status}}</span>
    {{if eq .Status "pending"}}<form method="POST" action="/admin/appointments/{{.ID}}/status">
      <input type="hidden" name="from" value="dashboard">
      <input type="hidden" name="status" value="confirmed">
      <button type="submit" class="btn btn-success btn-sm">Confirmar</button>
    </form>{{end}}
  </div>
</div>
{{end}}{{end}}</div>`)

// RenderDashboard é uma função pura do estado para o fragmento da seção.
func RenderDashboard(st *session.AppState) template.HTML {
	data := st.Dashboard
	if data == nil {
		data = &session.DashboardState{}
	}
	return render(dashboardTmpl, data)
}
