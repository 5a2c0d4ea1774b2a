package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patomosley/barbar-shop/internal/models"
)

func TestLoginCapturesBackendCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["username"])
		assert.Equal(t, "secret", body["password"])

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Login realizado com sucesso",
			"user":    models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	user, cookie, err := New(srv.URL).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "session=abc123", cookie)
}

func TestWithCookieSendsSession(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Cookie")
		json.NewEncoder(w).Encode(map[string]any{"services": []models.Service{}})
	}))
	defer srv.Close()

	_, err := New(srv.URL).WithCookie("session=abc123").ListServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "session=abc123", got)
}

func TestErrorEnvelopeSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	}))
	defer srv.Close()

	_, _, err := New(srv.URL).Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Credenciais inválidas", apiErr.Message)
}

func TestErrorWithoutEnvelopeFallsBackToGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListServices(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, GenericErrorMessage, apiErr.Message)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	var method, path, status string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		status = body["status"]
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateAppointmentStatus(context.Background(), 42, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/appointments/42/status", path)
	assert.Equal(t, "confirmed", status)
}

func TestAvailableTimesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/available-times", r.URL.Path)
		assert.Equal(t, "2024-03-15", r.URL.Query().Get("date"))
		assert.Equal(t, "3", r.URL.Query().Get("service_id"))
		json.NewEncoder(w).Encode(map[string][]string{"available_times": {"09:00", "09:30"}})
	}))
	defer srv.Close()

	times, err := New(srv.URL).AvailableTimes(context.Background(), "2024-03-15", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, times)
}

func TestFinanceReportParams(t *testing.T) {
	tests := []struct {
		name       string
		reportType string
		date       string
		wantPath   string
		wantQuery  map[string]string
	}{
		{
			name:       "daily sends the date",
			reportType: models.ReportDaily,
			date:       "2024-03-15",
			wantPath:   "/api/finance/daily",
			wantQuery:  map[string]string{"date": "2024-03-15"},
		},
		{
			name:       "monthly sends padded month and year",
			reportType: models.ReportMonthly,
			date:       "2024-03-15",
			wantPath:   "/api/finance/monthly",
			wantQuery:  map[string]string{"year": "2024", "month": "03"},
		},
		{
			name:       "annual sends only the year",
			reportType: models.ReportAnnual,
			date:       "2024-03-15",
			wantPath:   "/api/finance/annual",
			wantQuery:  map[string]string{"year": "2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				for k, v := range tt.wantQuery {
					assert.Equal(t, v, r.URL.Query().Get(k))
				}
				json.NewEncoder(w).Encode(models.FinanceReport{TotalRevenue: 100})
			}))
			defer srv.Close()

			report, err := New(srv.URL).FinanceReport(context.Background(), tt.reportType, tt.date)
			require.NoError(t, err)
			assert.Equal(t, 100.0, report.TotalRevenue)
		})
	}
}

func TestFinanceReportRejectsBadInput(t *testing.T) {
	c := New("http://localhost:0")

	_, err := c.FinanceReport(context.Background(), "weekly", "2024-03-15")
	assert.Error(t, err)

	_, err = c.FinanceReport(context.Background(), models.ReportDaily, "15/03/2024")
	assert.Error(t, err)
}

func TestSaveWorkScheduleBatch(t *testing.T) {
	var batch []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/work_schedule", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	entries := []models.WorkScheduleEntry{
		{DayOfWeek: 0, StartTime: "08:00", EndTime: "18:00"},
		{DayOfWeek: 5, StartTime: "09:00", EndTime: "14:00", IsExtended: true},
	}
	require.NoError(t, New(srv.URL).SaveWorkSchedule(context.Background(), entries))

	require.Len(t, batch, 2)
	assert.Equal(t, float64(0), batch[0]["day_of_week"])
	assert.Equal(t, "08:00", batch[0]["start_time"])
	assert.Equal(t, false, batch[0]["is_extended"])
	assert.Equal(t, float64(5), batch[1]["day_of_week"])
	assert.Equal(t, true, batch[1]["is_extended"])
}
