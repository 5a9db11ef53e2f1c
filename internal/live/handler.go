package live

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/metrics"
	"github.com/inamate/sketchpad/internal/typeid"
)

// EngineFactory builds the engine a new session drives.
type EngineFactory func() (*engine.Engine, error)

// Handler upgrades requests to websockets and serves one session, with its
// own engine, per connection.
func Handler(newEngine EngineFactory, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eng, err := newEngine()
		if err != nil {
			slog.Error("create engine", "error", err)
			http.Error(w, "engine unavailable", http.StatusInternalServerError)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			slog.Error("websocket accept", "error", err)
			return
		}

		s := NewSession(conn, eng, typeid.NewSessionID(), uuid.New().String())
		slog.Info("session started", "session", s.ID, "client", s.ClientID, "program", eng.ProgramName())
		metrics.SessionsActive.Inc()
		defer metrics.SessionsActive.Dec()
		s.Serve(r.Context())
		slog.Info("session ended", "session", s.ID)
	}
}
