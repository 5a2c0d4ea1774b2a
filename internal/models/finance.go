package models

// Tipos de relatório aceitos por /api/finance/{tipo}.
const (
	ReportDaily   = "daily"
	ReportMonthly = "monthly"
	ReportAnnual  = "annual"
)

func ValidReportType(t string) bool {
	switch t {
	case ReportDaily, ReportMonthly, ReportAnnual:
		return true
	}
	return false
}

type PeriodTotals struct {
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
	Pending      int     `json:"pending,omitempty"`
}

// FinanceSummary alimenta os cartões do dashboard.
type FinanceSummary struct {
	Today PeriodTotals `json:"today"`
	Month PeriodTotals `json:"month"`
	Year  PeriodTotals `json:"year"`
}

// FinanceReport cobre os três tipos de relatório; os campos de período e as
// séries variam conforme o tipo (daily: Date; monthly: Year/Month +
// DailyRevenue; annual: Year + MonthlyRevenue).
type FinanceReport struct {
	Date              string             `json:"date,omitempty"`
	Year              int                `json:"year,omitempty"`
	Month             int                `json:"month,omitempty"`
	TotalRevenue      float64            `json:"total_revenue"`
	TotalAppointments int                `json:"total_appointments"`
	ServicesCount     map[string]int     `json:"services_count"`
	DailyRevenue      map[string]float64 `json:"daily_revenue,omitempty"`
	MonthlyRevenue    map[string]float64 `json:"monthly_revenue,omitempty"`
}
