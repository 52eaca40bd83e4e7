// Package dashboard hosts the benchmark dashboard layout in a Bubble Tea
// program. Every redraw rebuilds the panel regions from the current terminal
// size and draws them onto a fresh canvas.
package dashboard

import (
	"context"
	"image"
	"io"

	"benchdash/internal/region"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	keys   keyMap
	logger *log.Logger
	tracer oteltrace.Tracer

	// UI dimensions
	width  int
	height int
}

// Compile-time interface compliance check
var _ tea.Model = (*Model)(nil)

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for resize and quit events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithTracer sets the tracer used for redraw spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(m *Model) { m.tracer = t }
}

// NewModel creates a dashboard model. Without options it logs nowhere and
// records no spans.
func NewModel(opts ...Option) *Model {
	m := &Model{
		keys:   defaultKeyMap(),
		logger: log.New(io.Discard),
		tracer: noop.NewTracerProvider().Tracer("benchdash/dashboard"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logger.Debug("frame resized", "width", msg.Width, "height", msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("quit requested", "key", msg.String())
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model. Layout and drawing run against a single
// snapshot of the frame size.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		return ""
	}

	_, span := m.tracer.Start(context.Background(), "dashboard.redraw",
		oteltrace.WithAttributes(
			attribute.Int("benchdash.frame.width", width),
			attribute.Int("benchdash.frame.height", height),
		))
	defer span.End()

	return Render(width, height)
}

// Render draws the dashboard for a width x height frame.
func Render(width, height int) string {
	regions := region.Build(image.Rect(0, 0, width, height))
	canvas := region.NewCanvas(width, height)
	regions.Draw(canvas)
	return canvas.String()
}
