package view

import (
	"context"
	"html/template"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/models"
	"github.com/patomosley/barbar-shop/internal/session"
)

func LoadSchedule(ctx context.Context, api *backend.Client, st *session.AppState) error {
	entries, err := api.GetWorkSchedule(ctx)
	if err != nil {
		return err
	}
	st.WorkSchedule = entries
	return nil
}

// ScheduleRow é a linha editável de um dia da semana. Dias sem entrada no
// servidor aparecem com o expediente padrão e o flag desmarcado.
type ScheduleRow struct {
	Index    int
	Day      string
	Start    string
	End      string
	Extended bool
}

func ScheduleRows(entries []models.WorkScheduleEntry) []ScheduleRow {
	rows := make([]ScheduleRow, 0, 7)
	for i := 0; i < 7; i++ {
		row := ScheduleRow{
			Index: i,
			Day:   models.DayNames[i],
			Start: models.DefaultStartTime,
			End:   models.DefaultEndTime,
		}
		for _, e := range entries {
			if e.DayOfWeek == i {
				row.Start = e.StartTime
				row.End = e.EndTime
				row.Extended = e.IsExtended
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

var scheduleTmpl = parse("schedule", `<form method="POST" action="/admin/schedule" id="scheduleForm">
{{range .}}<div class="schedule-day">
  <label>{{.Day}}:</label>
  <input type="time" name="start_{{.Index}}" value="{{.Start}}" class="form-control">
  <span>até</span>
  <input type="time" name="end_{{.Index}}" value="{{.End}}" class="form-control">
  <label><input type="checkbox" name="extended_{{.Index}}"{{if .Extended}} checked{{end}}> Horário estendido</label>
</div>
{{end}}<button type="submit" class="btn btn-primary" id="saveScheduleBtn">Salvar Horários</button>
</form>`)

func RenderSchedule(st *session.AppState) template.HTML {
	return render(scheduleTmpl, ScheduleRows(st.WorkSchedule))
}
