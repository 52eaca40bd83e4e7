package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_EmptyBeforeFirstResize(t *testing.T) {
	m := NewModel()
	assert.Nil(t, m.Init())
	assert.Empty(t, m.View())
}

func TestModel_RendersFullFrame(t *testing.T) {
	m := NewModel()
	newModel, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)

	out := newModel.View()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	for i, line := range lines {
		assert.Equal(t, 100, lipgloss.Width(line), "line %d", i)
	}
	for _, title := range []string{"Backend (b)", "Benches (n)", "Action (a)", "Results (r)", "Progress (p)"} {
		assert.Contains(t, out, title)
	}
}

func TestModel_RedrawFollowsResize(t *testing.T) {
	m := NewModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	first := m.View()

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	second := m.View()
	assert.NotEqual(t, first, second)
	assert.Len(t, strings.Split(second, "\n"), 20)
	assert.Equal(t, Render(60, 20), second)
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewModel(WithLogger(log.New(&buf)))
			_, cmd := m.Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Contains(t, buf.String(), "quit requested")
		})
	}
}

func TestModel_IgnoresOtherKeys(t *testing.T) {
	m := NewModel()
	for _, k := range []string{"b", "n", "a", "r", "p", "esc"} {
		_, cmd := m.Update(keyMsg(k))
		assert.Nil(t, cmd, k)
	}
}

func TestModel_LogsResize(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	m := NewModel(WithLogger(logger))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, buf.String(), "frame resized")
	assert.Contains(t, buf.String(), "width=80")
}

func TestModel_RedrawSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m := NewModel(WithTracer(provider.Tracer("test")))
	m.View()
	assert.Empty(t, recorder.Ended(), "no span before the frame size is known")

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.View()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "dashboard.redraw", spans[0].Name())

	attrs := map[string]int64{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(100), attrs["benchdash.frame.width"])
	assert.Equal(t, int64(40), attrs["benchdash.frame.height"])
}
