package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/patomosley/barbar-shop/internal/models"
)

type appointmentsEnvelope struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var env appointmentsEnvelope
	if err := c.get(ctx, "appointments_list", "/api/appointments", nil, &env); err != nil {
		return nil, err
	}
	return env.Appointments, nil
}

// TodayAppointments lista os agendamentos do dia, já ordenados por horário
// pelo backend.
func (c *Client) TodayAppointments(ctx context.Context) ([]models.Appointment, error) {
	var env appointmentsEnvelope
	if err := c.get(ctx, "appointments_today", "/api/appointments/today", nil, &env); err != nil {
		return nil, err
	}
	return env.Appointments, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int, status string) error {
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/api/appointments/%d/status", id)
	return c.put(ctx, "appointment_status", path, body, nil)
}

// AvailableTimes consulta os horários livres para uma data e um serviço.
func (c *Client) AvailableTimes(ctx context.Context, date string, serviceID int) ([]string, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("service_id", strconv.Itoa(serviceID))

	var env struct {
		AvailableTimes []string `json:"available_times"`
	}
	if err := c.get(ctx, "available_times", "/api/appointments/available-times", query, &env); err != nil {
		return nil, err
	}
	return env.AvailableTimes, nil
}

type CreateAppointmentInput struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email,omitempty"`
	ServiceID   int    `json:"service_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (c *Client) CreateAppointment(ctx context.Context, in CreateAppointmentInput) error {
	return c.post(ctx, "appointment_create", "/api/appointments", in, nil)
}
