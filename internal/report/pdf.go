package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"task-tracker.com/td/internal/dates"
	model "task-tracker.com/td/internal/models"
)

var columns = []struct {
	title string
	width float64
}{
	{"ID", 14},
	{"Status", 28},
	{"Prio", 14},
	{"Due", 26},
	{"Task", 108},
}

// WritePDF renders tasks as a one-table PDF report. Dates are shown in loc.
func WritePDF(w io.Writer, title string, tasks []model.Task, loc *time.Location) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	for _, col := range columns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, task := range tasks {
		due := ""
		if task.DueAt != nil {
			due = dates.Format(*task.DueAt, loc)
		}
		cells := []string{
			strconv.FormatInt(task.ID, 10),
			task.Status.String(),
			model.PriorityGlyph(task.Priority),
			due,
			tr(task.Description),
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("%d task(s)", len(tasks)))

	return pdf.Output(w)
}
