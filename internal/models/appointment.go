package models

// Appointment é a visão denormalizada que o backend devolve nas listagens:
// os campos do cliente e do serviço já vêm resolvidos.
type Appointment struct {
	ID              int     `json:"id"`
	ClientID        int     `json:"client_id"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ServiceID       int     `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`
	Date            string  `json:"date"` // YYYY-MM-DD
	Time            string  `json:"time"` // HH:MM
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses na ordem exibida nos seletores.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
