package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patomosley/barbar-shop/internal/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"integer", 50, "R$ 50,00"},
		{"decimals", 35.9, "R$ 35,90"},
		{"thousands", 1500.5, "R$ 1.500,50"},
		{"millions", 1234567.89, "R$ 1.234.567,89"},
		{"rounding", 10.005, "R$ 10,01"},
		{"negative", -35.9, "-R$ 35,90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "15/03/2024", Date("2024-03-15"))
	assert.Equal(t, "01/01/2025", Date("2025-01-01"))
}

func TestDatePassthroughOnBadInput(t *testing.T) {
	assert.Equal(t, "15/03/2024", Date("15/03/2024"))
	assert.Equal(t, "amanhã", Date("amanhã"))
	assert.Equal(t, "", Date(""))
}

func TestTime(t *testing.T) {
	assert.Equal(t, "09:30", Time("09:30"))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Pendente", StatusText(models.StatusPending))
	assert.Equal(t, "Confirmado", StatusText(models.StatusConfirmed))
	assert.Equal(t, "Concluído", StatusText(models.StatusCompleted))
	assert.Equal(t, "Cancelado", StatusText(models.StatusCancelled))
	assert.Equal(t, "unknown", StatusText("unknown"))
}
