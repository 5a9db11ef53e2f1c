package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/render"
)

const (
	DefaultProgram      = demo.NameLine
	DefaultRotationStep = 0.25 // degrees per tick
	DefaultTickInterval = 10 * time.Millisecond
	DefaultWidth        = 800
	DefaultHeight       = 600
)

// Engine owns the active program, the frame it is drawn into and the
// rotation angle. It processes events from a host and returns draw
// commands. Engine is not safe for concurrent use; hosts serialize calls.
type Engine struct {
	program demo.Program
	name    string

	bounds geom.Rect

	// Playback state
	angle    float64
	playing  bool
	step     float64
	interval time.Duration

	// Last message a program handed back, if any
	message *input.Message
}

// NewEngine creates an engine running the default program in a frame of
// the default size, rotating.
func NewEngine() *Engine {
	e := &Engine{
		bounds:   geom.Rect{Width: DefaultWidth, Height: DefaultHeight},
		playing:  true,
		step:     DefaultRotationStep,
		interval: DefaultTickInterval,
	}
	if err := e.LoadProgram(DefaultProgram); err != nil {
		panic(err)
	}
	return e
}

// --- Commands (host → engine) ---

// LoadProgram replaces the active program with a fresh instance. The angle
// and playback state carry over.
func (e *Engine) LoadProgram(name string) error {
	p, err := demo.New(name)
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	e.program = p
	e.name = name
	e.message = nil
	return nil
}

// SetBounds places the frame in window coordinates.
func (e *Engine) SetBounds(bounds geom.Rect) {
	e.bounds = bounds
}

// Resize keeps the frame origin and changes its size.
func (e *Engine) Resize(width, height float64) {
	if !finite(width) || !finite(height) {
		return
	}
	e.bounds.Width = max(width, 0)
	e.bounds.Height = max(height, 0)
}

// SetRotation sets how far the angle moves per tick interval.
func (e *Engine) SetRotation(step float64, interval time.Duration) {
	e.step = step
	if interval > 0 {
		e.interval = interval
	}
}

// SetAngle jumps to a rotation angle in degrees. NaN and infinities are
// ignored.
func (e *Engine) SetAngle(degrees float64) {
	if !finite(degrees) {
		return
	}
	e.angle = geom.NormalizeDegrees(degrees)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Play starts rotation.
func (e *Engine) Play() {
	e.playing = true
}

// Pause stops rotation.
func (e *Engine) Pause() {
	e.playing = false
}

// TogglePlay toggles play/pause state.
func (e *Engine) TogglePlay() {
	e.playing = !e.playing
}

// Advance moves the angle by the step for each interval in elapsed.
// Partial intervals advance proportionally.
func (e *Engine) Advance(elapsed time.Duration) {
	if !e.playing || elapsed <= 0 {
		return
	}
	ticks := float64(elapsed) / float64(e.interval)
	e.angle = geom.NormalizeDegrees(e.angle + e.step*ticks)
}

// Tick advances by one interval and returns draw commands.
func (e *Engine) Tick() string {
	e.Advance(e.interval)
	return e.Render()
}

// HandleEvent hands ev to the active program with the current angle.
// It reports whether the program consumed it.
func (e *Engine) HandleEvent(ev input.Event, cursor input.Cursor) bool {
	consumed, msg := e.program.OnEvent(ev, e.bounds, cursor, e.angle)
	if msg != nil {
		e.message = msg
	}
	return consumed
}

// PointerEvent is the JSON form of an event plus the cursor position in
// window coordinates.
type PointerEvent struct {
	input.Event
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Outside marks an event delivered without a cursor position.
	Outside bool `json:"outside,omitempty"`
}

// Cursor returns the cursor carried by the event.
func (p PointerEvent) Cursor() input.Cursor {
	if p.Outside {
		return input.Cursor{}
	}
	return input.At(geom.Pt(p.X, p.Y))
}

// HandleEventJSON decodes a PointerEvent and handles it.
func (e *Engine) HandleEventJSON(data string) (bool, error) {
	var pe PointerEvent
	if err := json.Unmarshal([]byte(data), &pe); err != nil {
		return false, fmt.Errorf("decode pointer event: %w", err)
	}
	if pe.Kind == "" {
		return false, fmt.Errorf("decode pointer event: missing kind")
	}
	return e.HandleEvent(pe.Event, pe.Cursor()), nil
}

// TakeMessage returns the last program message and clears it.
func (e *Engine) TakeMessage() *input.Message {
	msg := e.message
	e.message = nil
	return msg
}

// --- Queries (host ← engine) ---

// Commands returns the active program's draw commands for the current
// frame and angle.
func (e *Engine) Commands() []render.DrawCommand {
	return e.program.Render(e.bounds.Size(), e.angle)
}

// RenderJSON returns the current draw commands as JSON. It fails when a
// command holds a value JSON cannot carry, such as NaN.
func (e *Engine) RenderJSON() (string, error) {
	out, err := render.DrawCommandsToJSON(e.Commands())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", e.name, err)
	}
	return out, nil
}

// Render is RenderJSON for hosts without an error channel. Failures are
// logged and rendered as an empty list.
func (e *Engine) Render() string {
	out, err := e.RenderJSON()
	if err != nil {
		slog.Error("render frame", "error", err, "angle", e.angle, "bounds", e.bounds)
		return "[]"
	}
	return out
}

// PlaybackState is the rotation and program state reported to hosts.
type PlaybackState struct {
	Program string  `json:"program"`
	Angle   float64 `json:"angle"`
	Playing bool    `json:"playing"`
	Step    float64 `json:"step"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// State returns the current playback state.
func (e *Engine) State() PlaybackState {
	return PlaybackState{
		Program: e.name,
		Angle:   e.angle,
		Playing: e.playing,
		Step:    e.step,
		Width:   e.bounds.Width,
		Height:  e.bounds.Height,
	}
}

// GetPlaybackState returns the current playback state as JSON.
func (e *Engine) GetPlaybackState() string {
	data, _ := json.Marshal(e.State())
	return string(data)
}

// Program returns the active program.
func (e *Engine) Program() demo.Program {
	return e.program
}

// ProgramName returns the name the active program was loaded by.
func (e *Engine) ProgramName() string {
	return e.name
}

// Bounds returns the frame in window coordinates.
func (e *Engine) Bounds() geom.Rect {
	return e.bounds
}

// Angle returns the rotation angle in degrees.
func (e *Engine) Angle() float64 {
	return e.angle
}

// IsPlaying returns whether rotation is active.
func (e *Engine) IsPlaying() bool {
	return e.playing
}

// TickInterval returns the interval one rotation step covers.
func (e *Engine) TickInterval() time.Duration {
	return e.interval
}
