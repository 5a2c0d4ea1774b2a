package view

import (
	"context"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/session"
)

func LoadAppointments(ctx context.Context, api *backend.Client, st *session.AppState) error {
	list, err := api.ListAppointments(ctx)
	if err != nil {
		return err
	}
	st.Appointments = list
	return nil
}

var appointmentsTmpl = parse("appointments", `{{if not .}}<p>Nenhum agendamento encontrado.</p>{{else}}<table class="table">
<thead><tr><th>Cliente</th><th>Serviço</th><th>Data</th><th>Horário</th><th>Status</th><th>Ações</th></tr></thead>
<tbody>
{{range .}}<tr>
  <td><strong>{{.ClientName}}</strong><br><small>{{.ClientPhone}}</small></td>
  <td>{{.ServiceName}}<br><small>{{currency .ServicePrice}}</small></td>
  <td>{{fdate .Date}}</td>
  <td>{{ftime .Time}}</td>
  <td><span class="appointment-status status-{{.Status}}">{{statusText .Status}}</span></td>
  <td><form method="POST" action="/admin/appointments/{{.ID}}/status">
    <input type="hidden" name="from" value="appointments">
    <select name="status" class="form-control" onchange="this.form.submit()">
      {{$current := .Status}}{{range statuses}}<option value="{{.}}"{{if eq . $current}} selected{{end}}>{{statusText .}}</option>{{end}}
    </select>
  </form></td>
</tr>
{{end}}</tbody>
</table>{{end}}`)

func RenderAppointments(st *session.AppState) template.HTML {
	return render(appointmentsTmpl, st.Appointments)
}
