// Package preview serves single rendered frames over HTTP: JSON draw
// commands, PNG images and the polygon SVG.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/metrics"
	"github.com/inamate/sketchpad/internal/polygon"
	"github.com/inamate/sketchpad/internal/raster"
)

// MaxDimension bounds the width and height a request may ask for.
const MaxDimension = 4096

// Defaults apply when a request leaves a parameter out.
type Defaults struct {
	Program string
	Width   float64
	Height  float64
}

// Handler renders frames from fresh programs. Requests pick the program,
// frame size and angle with the program, width, height and angle query
// parameters.
type Handler struct {
	defaults Defaults
}

func NewHandler(d Defaults) *Handler {
	return &Handler{defaults: d}
}

type frameRequest struct {
	program       string
	width, height float64
	angle         float64
}

func (h *Handler) parse(q url.Values) (frameRequest, error) {
	req := frameRequest{
		program: h.defaults.Program,
		width:   h.defaults.Width,
		height:  h.defaults.Height,
	}
	if p := q.Get("program"); p != "" {
		req.program = p
	}

	var err error
	if req.width, err = floatParam(q, "width", req.width); err != nil {
		return req, err
	}
	if req.height, err = floatParam(q, "height", req.height); err != nil {
		return req, err
	}
	if req.angle, err = floatParam(q, "angle", 0); err != nil {
		return req, err
	}
	if req.width < 1 || req.height < 1 || req.width > MaxDimension || req.height > MaxDimension {
		return req, fmt.Errorf("frame size %gx%g out of range", req.width, req.height)
	}
	return req, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func (h *Handler) engine(req frameRequest) (*engine.Engine, error) {
	eng := engine.NewEngine()
	if err := eng.LoadProgram(req.program); err != nil {
		return nil, err
	}
	eng.SetBounds(geom.Rect{Width: req.width, Height: req.height})
	eng.SetAngle(req.angle)
	return eng, nil
}

func (h *Handler) frame(w http.ResponseWriter, r *http.Request) (*engine.Engine, frameRequest, bool) {
	req, err := h.parse(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, req, false
	}
	eng, err := h.engine(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, demo.ErrUnknownProgram) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return nil, req, false
	}
	return eng, req, true
}

// Render handles GET /render with the draw commands as JSON.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eng, _, ok := h.frame(w, r)
	if !ok {
		return
	}
	body, err := eng.RenderJSON()
	if err != nil {
		slog.Error("render json", "error", err)
		http.Error(w, "failed to render frame", http.StatusInternalServerError)
		return
	}
	metrics.RenderDuration.WithLabelValues("json").Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// RenderPNG handles GET /render.png.
func (h *Handler) RenderPNG(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eng, req, ok := h.frame(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, int(req.width), int(req.height), eng.Commands()); err != nil {
		slog.Error("encode png", "error", err, "program", req.program)
		http.Error(w, "failed to render frame", http.StatusInternalServerError)
		return
	}
	metrics.RenderDuration.WithLabelValues("png").Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// PolygonSVG handles GET /polygon.svg with edges, hue, saturation,
// brightness and angle query parameters.
func (h *Handler) PolygonSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	style := polygon.DefaultStyle()

	if s := q.Get("edges"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid edges %q", s), http.StatusBadRequest)
			return
		}
		style.Edges = polygon.ClampEdges(n)
	}

	var err error
	fields := []struct {
		name string
		dst  *float64
	}{
		{"hue", &style.Hue},
		{"saturation", &style.Saturation},
		{"brightness", &style.Brightness},
	}
	for _, f := range fields {
		if *f.dst, err = floatParam(q, f.name, *f.dst); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	angle, err := floatParam(q, "angle", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(polygon.SVG(style, angle)))
}
