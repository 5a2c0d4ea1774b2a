package view

import (
	"context"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/session"
)

func LoadServices(ctx context.Context, api *backend.Client, st *session.AppState) error {
	services, err := api.ListServices(ctx)
	if err != nil {
		return err
	}
	st.Services = services
	return nil
}

var servicesTmpl = parse("services", `<form method="POST" action="/admin/services" class="service-form">
  <input type="text" name="name" placeholder="Nome do serviço" class="form-control" required>
  <input type="number" name="duration" placeholder="Duração (min)" class="form-control" min="1" required>
  <input type="number" name="price" placeholder="Preço" class="form-control" min="0" step="0.01" required>
  <button type="submit" class="btn btn-primary">Adicionar</button>
</form>
{{if not .}}<p>Nenhum serviço encontrado.</p>{{else}}<table class="table">
<thead><tr><th>Nome</th><th>Duração</th><th>Preço</th><th>Ações</th></tr></thead>
<tbody>
{{range .}}<tr>
  <td>{{.Name}}</td>
  <td>{{.Duration}} min</td>
  <td>{{currency .Price}}</td>
  <td>
    <form method="POST" action="/admin/services/{{.ID}}/edit" class="inline"><button type="submit" class="btn btn-primary btn-sm">Editar</button></form>
    <form method="POST" action="/admin/services/{{.ID}}/delete" class="inline" onsubmit="return confirm('Tem certeza que deseja excluir este serviço?')"><button type="submit" class="btn btn-danger btn-sm">Excluir</button></form>
  </td>
</tr>
{{end}}</tbody>
</table>{{end}}`)

func RenderServices(st *session.AppState) template.HTML {
	return render(servicesTmpl, st.Services)
}
