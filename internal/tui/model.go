// Package tui hosts the engine in a terminal. Mouse input drives the active
// program and each frame is rasterized to half-block characters.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/raster"
)

// MinFrameInterval caps the redraw rate; rotation stays time based.
const MinFrameInterval = 33 * time.Millisecond

const statusRows = 1

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0e0e0")).
			Background(lipgloss.Color("#303050")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6060"))
)

type tickMsg struct {
	at time.Time
}

// Model is the Bubble Tea model wrapping an engine.
type Model struct {
	eng      *engine.Engine
	interval time.Duration

	cols, rows int
	lastTick   time.Time

	notice string
	err    error
}

// NewModel wraps eng. Frames are redrawn every interval, or every
// MinFrameInterval if that is longer.
func NewModel(eng *engine.Engine, interval time.Duration) *Model {
	return &Model{
		eng:      eng,
		interval: max(interval, MinFrameInterval),
	}
}

func (m *Model) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tickCmd(m.interval)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		if !m.lastTick.IsZero() {
			m.eng.Advance(msg.at.Sub(m.lastTick))
		}
		m.lastTick = msg.at
		return m, tickCmd(m.interval)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	m.cols = max(cols, 0)
	m.rows = max(rows-statusRows, 0)
	m.eng.SetBounds(geom.Rect{
		Width:  float64(m.cols),
		Height: float64(m.rows * pixelsPerRow),
	})
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev, cursor, ok := MouseEvent(msg)
	if !ok {
		return
	}
	consumed := m.eng.HandleEvent(ev, cursor)
	if note := m.eng.TakeMessage(); note != nil {
		m.notice = fmt.Sprintf("cursor %.0f,%.0f", note.Position.X, note.Position.Y)
	}
	if consumed {
		slog.Debug("event consumed", "kind", ev.Kind, "button", ev.Button, "at", cursor.Position)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case " ":
		m.eng.TogglePlay()
	default:
		names := demo.Names()
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(names) {
			m.load(names[key[0]-'1'])
		}
	}
	return nil
}

func (m *Model) load(name string) {
	if err := m.eng.LoadProgram(name); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.notice = ""
}

func (m *Model) View() string {
	if m.cols == 0 || m.rows == 0 {
		return "starting..."
	}

	var sb strings.Builder
	img, err := raster.Image(m.cols, m.rows*pixelsPerRow, m.eng.Commands())
	if err != nil {
		sb.WriteString(errorStyle.Render(err.Error()))
	} else {
		sb.WriteString(halfblocks(img))
	}
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m *Model) statusLine() string {
	st := m.eng.State()
	playback := "paused"
	if st.Playing {
		playback = "playing"
	}

	var programs []string
	for i, name := range demo.Names() {
		programs = append(programs, fmt.Sprintf("%d:%s", i+1, name))
	}

	parts := []string{
		fmt.Sprintf("%s %6.2f° %s", st.Program, st.Angle, playback),
		strings.Join(programs, " "),
		"space:play/pause q:quit",
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	return statusStyle.Width(m.cols).MaxHeight(statusRows).Render(strings.Join(parts, " | "))
}
