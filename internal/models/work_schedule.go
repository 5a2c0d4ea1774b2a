package models

// WorkScheduleEntry representa o expediente de um dia da semana.
// day_of_week segue a convenção do backend: 0=Segunda ... 6=Domingo.
type WorkScheduleEntry struct {
	ID         int    `json:"id,omitempty"`
	DayOfWeek  int    `json:"day_of_week"`
	DayName    string `json:"day_name,omitempty"`
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
	IsExtended bool   `json:"is_extended"`
}

var DayNames = [7]string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

const (
	DefaultStartTime = "08:00"
	DefaultEndTime   = "18:00"
)
