package view

import (
	"context"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/session"
)

// FilterClients devolve só os usuários com papel de cliente, na ordem do
// servidor.
func FilterClients(users []models.User) []models.User {
	clients := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleClient {
			clients = append(clients, u)
		}
	}
	return clients
}

func LoadClients(ctx context.Context, api *backend.Client, st *session.AppState) error {
	users, err := api.ListUsers(ctx)
	if err != nil {
		return err
	}
	st.Clients = FilterClients(users)
	return nil
}

var clientsTmpl = parse("clients", `{{if not .}}<p>Nenhum cliente encontrado.</p>{{else}}<table class="table">
<thead><tr><th>Nome</th><th>Telefone</th><th>Email</th><th>Username</th><th>Ações</th></tr></thead>
<tbody>
{{range .}}<tr>
  <td>{{if .Name}}{{.Name}}{{else}}-{{end}}</td>
  <td>{{if .Phone}}{{.Phone}}{{else}}-{{end}}</td>
  <td>{{if .Email}}{{.Email}}{{else}}-{{end}}</td>
  <td>{{.Username}}</td>
  <td>
    <form method="POST" action="/admin/clients/{{.ID}}/edit" class="inline"><button type="submit" class="btn btn-primary btn-sm">Editar</button></form>
    <form method="POST" action="/admin/clients/{{.ID}}/delete" class="inline" onsubmit="return confirm('Tem certeza que deseja excluir este cliente?')"><button type="submit" class="btn btn-danger btn-sm">Excluir</button></form>
  </td>
</tr>
{{end}}</tbody>
</table>{{end}}`)

func RenderClients(st *session.AppState) template.HTML {
	return render(clientsTmpl, st.Clients)
}
