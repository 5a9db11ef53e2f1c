package live

import (
	"encoding/json"

	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/render"
)

// Message is the envelope for everything on the wire.
type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypeEvent   = "event"   // payload: engine.PointerEvent
	TypeControl = "control" // payload: ControlPayload

	// Server → client
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeNotice  = "message" // payload: input.Message
	TypeError   = "error"
)

// Control actions.
const (
	ActionPlay   = "play"
	ActionPause  = "pause"
	ActionToggle = "toggle"
	ActionLoad   = "load"
	ActionResize = "resize"
)

type ControlPayload struct {
	Action  string  `json:"action"`
	Program string  `json:"program,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

type WelcomePayload struct {
	SessionID string               `json:"sessionId"`
	ClientID  string               `json:"clientId"`
	Programs  []string             `json:"programs"`
	State     engine.PlaybackState `json:"state"`
}

type FramePayload struct {
	State    engine.PlaybackState `json:"state"`
	Commands []render.DrawCommand `json:"commands"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: typ, Payload: data}, nil
}

func errorMessage(text string) *Message {
	msg, _ := newMessage(TypeError, ErrorPayload{Message: text})
	return msg
}
