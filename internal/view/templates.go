package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/format"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/notify"
)

var funcMap = template.FuncMap{
	"currency":   format.Currency,
	"fdate":      format.Date,
	"ftime":      format.Time,
	"statusText": format.StatusText,
	"statuses":   func() []string { return models.Statuses },
	"serviceLabel": func(s models.Service) string {
		return fmt.Sprintf("%s - %s (%dmin)", s.Name, format.Currency(s.Price), s.Duration)
	},
}

// render executa um fragmento sobre dados tipados. Os templates são
// constantes validadas no init, então a execução só falha por dados
// irrepresentáveis; nesse caso degradamos para uma mensagem fixa.
func render(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return template.HTML("<p>Erro ao renderizar a visão.</p>")
	}
	return template.HTML(buf.String())
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcMap).Parse(text))
}

// ----------------------------------------------------------------------
// Páginas completas (telas): login, booking e admin.
// ----------------------------------------------------------------------

// NavItem alimenta o menu lateral do admin.
type NavItem struct {
	ID     Section
	Title  string
	Active bool
}

type AdminPageData struct {
	Title   string
	Welcome string
	Nav     []NavItem
	Flashes []notify.Flash
	Content template.HTML
}

func BuildNav(active Section) []NavItem {
	items := make([]NavItem, 0, len(Sections))
	for _, s := range Sections {
		items = append(items, NavItem{ID: s, Title: s.Title(), Active: s == active})
	}
	return items
}

type LoginPageData struct {
	Flashes []notify.Flash
}

type BookingPageData struct {
	Services          []models.Service
	SelectedServiceID int
	SelectedDate      string
	Times             []string
	MinDate           string
	Flashes           []notify.Flash
}

const toastsPartial = `{{define "toasts"}}{{if .}}<div id="toasts">
{{range .}}<div class="toast {{.Type}} active">{{.Message}}</div>
{{end}}</div>
<script>setTimeout(function(){var t=document.getElementById('toasts');if(t){t.remove();}},3000);</script>
{{end}}{{end}}`

const loginPage = `{{define "login"}}<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Salão - Login</title><link rel="stylesheet" href="/static/styles.css"></head>
<body>
{{template "toasts" .Flashes}}
<div class="screen active" id="loginScreen">
  <h1>Painel Administrativo</h1>
  <form method="POST" action="/login" class="login-form">
    <input type="text" name="username" placeholder="Usuário" class="form-control" required>
    <input type="password" name="password" placeholder="Senha" class="form-control" required>
    <button type="submit" class="btn btn-primary">Entrar</button>
  </form>
  <a href="/booking" class="btn btn-link">Área do cliente</a>
</div>
</body>
</html>{{end}}`

const bookingPage = `{{define "booking"}}<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Agendar Horário</title><link rel="stylesheet" href="/static/styles.css"></head>
<body>
{{template "toasts" .Flashes}}
<div class="screen active" id="clientScreen">
  <h1>Agendar Horário</h1>
  <form method="GET" action="/booking" id="slotForm">
    <select name="service_id" class="form-control" onchange="this.form.submit()">
      <option value="">Selecione um serviço</option>
      {{range .Services}}<option value="{{.ID}}"{{if eq .ID $.SelectedServiceID}} selected{{end}}>{{serviceLabel .}}</option>
      {{end}}
    </select>
    <input type="date" name="date" value="{{.SelectedDate}}" min="{{.MinDate}}" class="form-control" onchange="this.form.submit()">
  </form>
  <form method="POST" action="/booking" id="appointmentForm">
    <input type="hidden" name="service_id" value="{{.SelectedServiceID}}">
    <input type="hidden" name="date" value="{{.SelectedDate}}">
    <select name="time" class="form-control" required>
      <option value="">Selecione um horário</option>
      {{range .Times}}<option value="{{.}}">{{ftime .}}</option>
      {{end}}
    </select>
    <input type="text" name="client_name" placeholder="Nome" class="form-control" required>
    <input type="text" name="client_phone" placeholder="Telefone" class="form-control" required>
    <input type="email" name="client_email" placeholder="Email (opcional)" class="form-control">
    <button type="submit" class="btn btn-primary">Agendar</button>
  </form>
  <a href="/login" class="btn btn-link">Voltar ao login</a>
</div>
</body>
</html>{{end}}`

const adminPage = `{{define "admin"}}<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Salão - {{.Title}}</title><link rel="stylesheet" href="/static/styles.css"></head>
<body>
{{template "toasts" .Flashes}}
<div class="screen active" id="adminScreen">
  <aside class="sidebar">
    <div id="userWelcome">{{.Welcome}}</div>
    <nav>
      {{range .Nav}}<a href="/admin/{{.ID}}" class="nav-item{{if .Active}} active{{end}}" data-section="{{.ID}}">{{.Title}}</a>
      {{end}}
    </nav>
    <form method="POST" action="/logout"><button type="submit" class="btn btn-secondary" id="logoutBtn">Sair</button></form>
  </aside>
  <main class="content">
    <h2 id="sectionTitle">{{.Title}}</h2>
    <section class="content-section active">{{.Content}}</section>
  </main>
</div>
</body>
</html>{{end}}`

// Templates monta o conjunto de páginas registrado no engine HTTP.
func Templates() *template.Template {
	t := template.New("pages").Funcs(funcMap)
	for _, src := range []string{toastsPartial, loginPage, bookingPage, adminPage} {
		t = template.Must(t.Parse(src))
	}
	return t
}
