package live

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/metrics"
	"github.com/inamate/sketchpad/internal/typeid"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(nil, engine.NewEngine(), "sess_test", "client-1")
}

func payload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestHandleControl(t *testing.T) {
	s := newTestSession(t)

	out := s.handle(&Message{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionPause})})
	assert.Empty(t, out)
	assert.False(t, s.eng.IsPlaying())

	s.handle(&Message{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionToggle})})
	assert.True(t, s.eng.IsPlaying())

	s.handle(&Message{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionLoad, Program: demo.NameRotor})})
	assert.Equal(t, demo.NameRotor, s.eng.ProgramName())

	s.handle(&Message{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionResize, Width: 320, Height: 240})})
	assert.Equal(t, 320.0, s.eng.Bounds().Width)
	assert.Equal(t, 240.0, s.eng.Bounds().Height)
	assert.True(t, s.dirty)
}

func TestHandleErrors(t *testing.T) {
	s := newTestSession(t)

	tests := []*Message{
		{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionLoad, Program: "nope"})},
		{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionResize})},
		{Type: TypeControl, Payload: payload(t, ControlPayload{Action: "rewind"})},
		{Type: TypeControl, Payload: json.RawMessage(`[]`)},
		{Type: TypeEvent, Payload: json.RawMessage(`"press"`)},
		{Type: "doc.sync"},
	}
	for _, msg := range tests {
		out := s.handle(msg)
		require.Len(t, out, 1, msg.Type)
		assert.Equal(t, TypeError, out[0].Type)
	}
	assert.Equal(t, demo.NameLine, s.eng.ProgramName())
}

func TestHandleEventForwardsProgramMessage(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.eng.LoadProgram(demo.NameCanvas))

	ev := engine.PointerEvent{Event: input.Move(), X: 40, Y: 50}
	out := s.handle(&Message{Type: TypeEvent, Payload: payload(t, ev)})
	require.Len(t, out, 1)
	assert.Equal(t, TypeNotice, out[0].Type)

	var note input.Message
	require.NoError(t, json.Unmarshal(out[0].Payload, &note))
	assert.Equal(t, input.MessageCursorMoved, note.Kind)
	assert.Equal(t, 40.0, note.Position.X)
}

func TestSendStampsSequence(t *testing.T) {
	s := newTestSession(t)
	s.Send(errorMessage("a"))
	s.Send(errorMessage("b"))
	s.Send(nil)

	require.Len(t, s.send, 2)
	var first, second Message
	require.NoError(t, json.Unmarshal(<-s.send, &first))
	require.NoError(t, json.Unmarshal(<-s.send, &second))
	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, int64(2), second.Seq)
	assert.Equal(t, "sess_test", second.SessionID)
}

func TestFlushOnlyWhenDirty(t *testing.T) {
	s := newTestSession(t)
	before := testutil.ToFloat64(metrics.FramesSent)
	s.flush()
	require.Len(t, s.send, 1)
	s.flush()
	assert.Len(t, s.send, 1)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FramesSent))

	var msg Message
	require.NoError(t, json.Unmarshal(<-s.send, &msg))
	assert.Equal(t, TypeFrame, msg.Type)

	var frame FramePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &frame))
	assert.Equal(t, demo.NameLine, frame.State.Program)
	assert.NotEmpty(t, frame.Commands)
}

func readMessage(t *testing.T, ctx context.Context, conn *websocket.Conn) Message {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHandlerRoundTrip(t *testing.T) {
	srv := httptest.NewServer(Handler(func() (*engine.Engine, error) {
		return engine.NewEngine(), nil
	}, nil))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(1 << 20)

	welcome := readMessage(t, ctx, conn)
	require.Equal(t, TypeWelcome, welcome.Type)
	var wp WelcomePayload
	require.NoError(t, json.Unmarshal(welcome.Payload, &wp))
	assert.True(t, typeid.Is(wp.SessionID, typeid.PrefixSession))
	assert.Equal(t, demo.Names(), wp.Programs)

	ctrl, err := json.Marshal(Message{Type: TypeControl, Payload: payload(t, ControlPayload{Action: ActionPause})})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, ctrl))

	for {
		msg := readMessage(t, ctx, conn)
		if msg.Type != TypeFrame {
			continue
		}
		var frame FramePayload
		require.NoError(t, json.Unmarshal(msg.Payload, &frame))
		if !frame.State.Playing {
			assert.NotEmpty(t, frame.Commands)
			return
		}
	}
}
