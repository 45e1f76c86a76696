package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xvierd/dusk/internal/domain"
)

func TestConsole_Event(t *testing.T) {
	tests := []struct {
		name  string
		event domain.Event
		want  string
	}{
		{
			name:  "task started",
			event: domain.Event{Type: domain.EventTaskStarted, At: domain.MustTimeOfDay(20, 1), Summary: "Task started: read"},
			want:  "[20:01] Task started: read\n",
		},
		{
			name:  "progress is indented",
			event: domain.Event{Type: domain.EventFocusProgress, At: domain.MustTimeOfDay(9, 5), Summary: "Pomodoro status: 4 minutes of 25 elapsed"},
			want:  "[09:05]   Pomodoro status: 4 minutes of 25 elapsed\n",
		},
		{
			name:  "bedtime",
			event: domain.Event{Type: domain.EventBedtime, At: domain.MustTimeOfDay(23, 0), Summary: "Go to sleep"},
			want:  "[23:00] Go to sleep\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, false).Event(tt.event)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsole_Info(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("Bedtime timer started! I'll remind you at 23:00.")
	assert.Equal(t, "Bedtime timer started! I'll remind you at 23:00.\n", buf.String())
}

func TestConsole_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Event(domain.Event{Type: domain.EventTaskEnded, At: domain.MustTimeOfDay(20, 11), Summary: "Task read over"})
	assert.Contains(t, buf.String(), "Task read over")
}
