package backend

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/patomosley/barbar-shop/internal/models"
)

func (c *Client) FinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	var summary models.FinanceSummary
	if err := c.get(ctx, "finance_summary", "/api/finance/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FinanceReport consulta o relatório do tipo pedido. Os parâmetros enviados
// dependem do tipo, todos derivados de uma única data YYYY-MM-DD:
//
//	daily   -> date=YYYY-MM-DD
//	monthly -> year=YYYY&month=MM
//	annual  -> year=YYYY
func (c *Client) FinanceReport(ctx context.Context, reportType, date string) (*models.FinanceReport, error) {
	if !models.ValidReportType(reportType) {
		return nil, fmt.Errorf("tipo de relatório inválido: %q", reportType)
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("data inválida: %q", date)
	}

	query := url.Values{}
	switch reportType {
	case models.ReportDaily:
		query.Set("date", date)
	case models.ReportMonthly:
		query.Set("year", fmt.Sprintf("%d", parsed.Year()))
		query.Set("month", fmt.Sprintf("%02d", int(parsed.Month())))
	case models.ReportAnnual:
		query.Set("year", fmt.Sprintf("%d", parsed.Year()))
	}

	var report models.FinanceReport
	if err := c.get(ctx, "finance_report", "/api/finance/"+reportType, query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
