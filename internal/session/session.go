package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/patomosley/barbar-shop/internal/models"
)

// AppState guarda a última cópia carregada de cada lista, substituída por
// inteiro a cada load bem-sucedido. Um load que falha não toca a fatia, então
// a visão continua mostrando o último estado bom.
type AppState struct {
	Services     []models.Service           `json:"services,omitempty"`
	Appointments []models.Appointment       `json:"appointments,omitempty"`
	Clients      []models.User              `json:"clients,omitempty"`
	WorkSchedule []models.WorkScheduleEntry `json:"work_schedule,omitempty"`
	Dashboard    *DashboardState            `json:"dashboard,omitempty"`
	Finance      *FinanceState              `json:"finance,omitempty"`
}

type DashboardState struct {
	Summary models.FinanceSummary `json:"summary"`
	Today   []models.Appointment  `json:"today"`
}

type FinanceState struct {
	Type   string               `json:"type"`
	Date   string               `json:"date"`
	Report models.FinanceReport `json:"report"`
}

// Session é o registro persistido no Redis. BackendCookie é a credencial de
// sessão do backend capturada no login; toda chamada autenticada a reenvia.
type Session struct {
	ID            string       `json:"id"`
	User          *models.User `json:"user"`
	BackendCookie string       `json:"backend_cookie"`
	State         AppState     `json:"state"`
	CreatedAt     time.Time    `json:"created_at"`
}

func New(user *models.User, backendCookie string) *Session {
	return &Session{
		ID:            uuid.NewString(),
		User:          user,
		BackendCookie: backendCookie,
		CreatedAt:     time.Now(),
	}
}

func (s *Session) IsAdmin() bool {
	return s.User != nil && s.User.Role == models.RoleAdmin
}
