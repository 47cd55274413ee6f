package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"task-tracker.com/td/internal/dates"
	model "task-tracker.com/td/internal/models"
)

func printTaskHeader(w io.Writer) {
	fmt.Fprintf(w, "%-4s %-11s %-6s %s\n", "ID", "STATUS", "PRIO", "TASK")
}

func printTask(w io.Writer, task model.Task, loc *time.Location) {
	fmt.Fprintf(w, "%-4d %-11s [%s]  \"%s\"",
		task.ID, task.Status, center(model.PriorityGlyph(task.Priority), 3), task.Description)
	if task.DueAt != nil {
		fmt.Fprintf(w, "  (due %s)", dates.Format(*task.DueAt, loc))
	}
	fmt.Fprintln(w)
}

func printTasks(w io.Writer, tasks []model.Task, loc *time.Location) {
	printTaskHeader(w)
	for _, task := range tasks {
		printTask(w, task, loc)
	}
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}
