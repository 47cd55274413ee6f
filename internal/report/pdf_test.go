package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/td/internal/constants"
	model "task-tracker.com/td/internal/models"
)

func TestWritePDF(t *testing.T) {
	due := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC).Unix()
	tasks := []model.Task{
		{ID: 1, Description: "Write report", Status: constants.StatusInProgress, Priority: 4, DueAt: &due},
		{ID: 2, Description: "Café run", Status: constants.StatusPending, Priority: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Tasks", tasks, time.UTC))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDF_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "Tasks", nil, time.UTC))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
