// Package live runs an engine behind a websocket: pointer events and
// playback controls come in, draw command frames go out.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/metrics"
	"github.com/inamate/sketchpad/internal/render"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

// Session is one connection and the engine it drives. Only the run loop
// touches the engine.
type Session struct {
	ID       string
	ClientID string

	conn    *websocket.Conn
	eng     *engine.Engine
	inbound chan *Message
	send    chan []byte

	seq   atomic.Int64
	dirty bool // a frame is owed to the client
}

func NewSession(conn *websocket.Conn, eng *engine.Engine, sessionID, clientID string) *Session {
	return &Session{
		ID:       sessionID,
		ClientID: clientID,
		conn:     conn,
		eng:      eng,
		inbound:  make(chan *Message, 64),
		send:     make(chan []byte, 256),
		dirty:    true,
	}
}

// Serve runs the session until the connection closes or ctx is done.
func (s *Session) Serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.WritePump(ctx)
	go s.Run(ctx)
	s.ReadPump(ctx)
}

// ReadPump decodes client messages and queues them for the run loop.
func (s *Session) ReadPump(ctx context.Context) {
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	s.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", s.ID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", s.ID)
			s.Send(errorMessage("invalid message"))
			continue
		}

		select {
		case s.inbound <- &msg:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message := <-s.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", s.ID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// Run owns the engine: it applies queued messages, advances rotation on a
// ticker and sends a frame whenever the picture may have changed.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(s.eng.TickInterval())
	defer ticker.Stop()

	s.Send(s.welcome())
	s.flush()

	last := time.Now()
	for {
		select {
		case msg := <-s.inbound:
			for _, out := range s.handle(msg) {
				s.Send(out)
			}

		case now := <-ticker.C:
			if s.eng.IsPlaying() {
				s.eng.Advance(now.Sub(last))
				s.dirty = true
			}
			last = now
			s.flush()

		case <-ctx.Done():
			return
		}
	}
}

// handle applies one client message to the engine and returns the replies.
func (s *Session) handle(msg *Message) []*Message {
	metrics.MessagesReceived.WithLabelValues(msg.Type).Inc()

	switch msg.Type {
	case TypeEvent:
		var pe engine.PointerEvent
		if err := json.Unmarshal(msg.Payload, &pe); err != nil {
			return []*Message{errorMessage(fmt.Sprintf("invalid event: %v", err))}
		}
		s.eng.HandleEvent(pe.Event, pe.Cursor())
		s.dirty = true

		if note := s.eng.TakeMessage(); note != nil {
			out, err := newMessage(TypeNotice, note)
			if err != nil {
				return nil
			}
			return []*Message{out}
		}
		return nil

	case TypeControl:
		var ctrl ControlPayload
		if err := json.Unmarshal(msg.Payload, &ctrl); err != nil {
			return []*Message{errorMessage(fmt.Sprintf("invalid control: %v", err))}
		}
		if err := s.control(ctrl); err != nil {
			return []*Message{errorMessage(err.Error())}
		}
		s.dirty = true
		return nil

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", s.ID)
		return []*Message{errorMessage(fmt.Sprintf("unknown message type %q", msg.Type))}
	}
}

func (s *Session) control(ctrl ControlPayload) error {
	switch ctrl.Action {
	case ActionPlay:
		s.eng.Play()
	case ActionPause:
		s.eng.Pause()
	case ActionToggle:
		s.eng.TogglePlay()
	case ActionLoad:
		if err := s.eng.LoadProgram(ctrl.Program); err != nil {
			return err
		}
		slog.Info("program loaded", "program", ctrl.Program, "session", s.ID)
	case ActionResize:
		if ctrl.Width <= 0 || ctrl.Height <= 0 {
			return fmt.Errorf("resize: invalid size %gx%g", ctrl.Width, ctrl.Height)
		}
		s.eng.Resize(ctrl.Width, ctrl.Height)
	default:
		return fmt.Errorf("unknown control action %q", ctrl.Action)
	}
	return nil
}

func (s *Session) welcome() *Message {
	msg, _ := newMessage(TypeWelcome, WelcomePayload{
		SessionID: s.ID,
		ClientID:  s.ClientID,
		Programs:  demo.Names(),
		State:     s.eng.State(),
	})
	return msg
}

func (s *Session) frame() *Message {
	cmds := s.eng.Commands()
	if cmds == nil {
		cmds = []render.DrawCommand{}
	}
	msg, err := newMessage(TypeFrame, FramePayload{State: s.eng.State(), Commands: cmds})
	if err != nil {
		slog.Error("marshal frame", "error", err, "session", s.ID)
		return nil
	}
	return msg
}

// flush sends a frame if one is owed.
func (s *Session) flush() {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.Send(s.frame())
	metrics.FramesSent.Inc()
}

// Send stamps and queues msg, dropping it if the client is not keeping up.
func (s *Session) Send(msg *Message) {
	if msg == nil {
		return
	}
	msg.Seq = s.seq.Add(1)
	msg.SessionID = s.ID

	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case s.send <- data:
	default:
		slog.Warn("session send buffer full, dropping message", "session", s.ID, "type", msg.Type)
	}
}
