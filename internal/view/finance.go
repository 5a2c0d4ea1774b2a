package view

import (
	"context"
	"fmt"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/format"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/session"
)

// LoadFinance gera o relatório pedido e o substitui no estado junto com a
// seleção que o produziu.
func LoadFinance(ctx context.Context, api *backend.Client, st *session.AppState, reportType, date string) error {
	report, err := api.FinanceReport(ctx, reportType, date)
	if err != nil {
		return err
	}
	st.Finance = &session.FinanceState{
		Type:   reportType,
		Date:   date,
		Report: *report,
	}
	return nil
}

type financeView struct {
	Type   string
	Date   string
	Title  string
	Period string
	Report *models.FinanceReport
}

func reportTitle(reportType string) string {
	switch reportType {
	case models.ReportDaily:
		return "Relatório Diário"
	case models.ReportMonthly:
		return "Relatório Mensal"
	case models.ReportAnnual:
		return "Relatório Anual"
	}
	return ""
}

func reportPeriod(fin *session.FinanceState) string {
	switch fin.Type {
	case models.ReportDaily:
		return format.Date(fin.Report.Date)
	case models.ReportMonthly:
		return fmt.Sprintf("%d/%d", fin.Report.Month, fin.Report.Year)
	case models.ReportAnnual:
		return fmt.Sprintf("%d", fin.Report.Year)
	}
	return ""
}

var financeTmpl = parse("finance", `<form method="GET" action="/admin/finance" class="finance-controls">
  <select name="type" id="financeType" class="form-control">
    <option value="daily"{{if eq .Type "daily"}} selected{{end}}>Diário</option>
    <option value="monthly"{{if eq .Type "monthly"}} selected{{end}}>Mensal</option>
    <option value="annual"{{if eq .Type "annual"}} selected{{end}}>Anual</option>
  </select>
  <input type="date" name="date" id="financeDate" value="{{.Date}}" class="form-control">
  <button type="submit" class="btn btn-primary" id="generateReportBtn">Gerar Relatório</button>
</form>
<div id="financeReport">
{{if .Report}}<h4>{{.Title}} - {{.Period}}</h4>
<div class="finance-summary">
  <div class="finance-item"><h4>{{currency .Report.TotalRevenue}}</h4><p>Receita Total</p></div>
  <div class="finance-item"><h4>{{.Report.TotalAppointments}}</h4><p>Total de Agendamentos</p></div>
</div>
{{if .Report.ServicesCount}}<h5>Serviços Mais Procurados</h5>
<div class="services-stats">
{{range $service, $count := .Report.ServicesCount}}<div class="service-stat"><strong>{{$service}}:</strong> {{$count}} agendamentos</div>
{{end}}</div>{{end}}
{{if .Report.DailyRevenue}}<h5>Receita por Dia</h5>
<div class="revenue-stats">
{{range $day, $revenue := .Report.DailyRevenue}}<div class="revenue-stat"><strong>{{fdate $day}}:</strong> {{currency $revenue}}</div>
{{end}}</div>{{end}}
{{if .Report.MonthlyRevenue}}<h5>Receita por Mês</h5>
<div class="revenue-stats">
{{range $month, $revenue := .Report.MonthlyRevenue}}<div class="revenue-stat"><strong>{{$month}}:</strong> {{currency $revenue}}</div>
{{end}}</div>{{end}}
{{end}}</div>`)

// RenderFinance mostra o último relatório carregado; quando nenhum existe,
// só os controles com a seleção pedida.
func RenderFinance(st *session.AppState, fallbackType, fallbackDate string) template.HTML {
	data := financeView{Type: fallbackType, Date: fallbackDate}
	if fin := st.Finance; fin != nil {
		data.Type = fin.Type
		data.Date = fin.Date
		data.Title = reportTitle(fin.Type)
		data.Period = reportPeriod(fin)
		data.Report = &fin.Report
	}
	return render(financeTmpl, data)
}
