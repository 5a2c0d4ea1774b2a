package view

// Section é uma das seções fixas do painel administrativo. A navegação não
// tem histórico: ativar uma seção desativa as demais e dispara o load dela.
type Section string

const (
	SectionDashboard    Section = "dashboard"
	SectionAppointments Section = "appointments"
	SectionClients      Section = "clients"
	SectionServices     Section = "services"
	SectionSchedule     Section = "schedule"
	SectionFinance      Section = "finance"
)

// Sections na ordem em que aparecem no menu lateral.
var Sections = []Section{
	SectionDashboard,
	SectionAppointments,
	SectionClients,
	SectionServices,
	SectionSchedule,
	SectionFinance,
}

var sectionTitles = map[Section]string{
	SectionDashboard:    "Dashboard",
	SectionAppointments: "Agendamentos",
	SectionClients:      "Clientes",
	SectionServices:     "Serviços",
	SectionSchedule:     "Horários de Funcionamento",
	SectionFinance:      "Relatórios Financeiros",
}

func ParseSection(s string) (Section, bool) {
	sec := Section(s)
	_, ok := sectionTitles[sec]
	return sec, ok
}

func (s Section) Title() string {
	return sectionTitles[s]
}
