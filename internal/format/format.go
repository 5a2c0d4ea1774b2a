package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/patomosley/barbar-shop/internal/models"
)

// Currency formata um valor em reais no padrão pt-BR:
// 1500.5 -> "R$ 1.500,50".
func Currency(value float64) string {
	neg := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))

	intPart := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("R$ %s,%02d", b.String(), frac)
	if neg && cents > 0 {
		out = "-" + out
	}
	return out
}

// Date converte uma data do backend (YYYY-MM-DD) para DD/MM/YYYY.
// Entrada fora do formato é devolvida como veio.
func Date(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("02/01/2006")
}

// Time é identidade: o backend já entrega HH:MM.
func Time(timeStr string) string {
	return timeStr
}

var statusLabels = map[string]string{
	models.StatusPending:   "Pendente",
	models.StatusConfirmed: "Confirmado",
	models.StatusCompleted: "Concluído",
	models.StatusCancelled: "Cancelado",
}

// StatusText traduz o status do agendamento para exibição.
func StatusText(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
