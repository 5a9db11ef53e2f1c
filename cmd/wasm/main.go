//go:build js && wasm

// Command wasm exposes the engine to a browser page as the global
// sketchpadEngine object. The page owns the canvas, the animation frame
// loop and the pointer listeners; it forwards events as JSON and paints
// the draw commands it gets back.
package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/inamate/sketchpad/internal/demo"
	"github.com/inamate/sketchpad/internal/engine"
)

type jsFunc func(eng *engine.Engine, args []js.Value) any

var api = map[string]jsFunc{
	// commands
	"loadProgram": loadProgram,
	"resize":      resize,
	"setAngle":    setAngle,
	"play":        func(eng *engine.Engine, _ []js.Value) any { eng.Play(); return nil },
	"pause":       func(eng *engine.Engine, _ []js.Value) any { eng.Pause(); return nil },
	"togglePlay":  func(eng *engine.Engine, _ []js.Value) any { eng.TogglePlay(); return nil },
	"advance":     advance,
	"handleEvent": handleEvent,
	"tick":        func(eng *engine.Engine, _ []js.Value) any { return eng.Tick() },

	// queries
	"render":           func(eng *engine.Engine, _ []js.Value) any { return eng.Render() },
	"takeMessage":      takeMessage,
	"getPrograms":      getPrograms,
	"getPlaybackState": func(eng *engine.Engine, _ []js.Value) any { return eng.GetPlaybackState() },
	"getAngle":         func(eng *engine.Engine, _ []js.Value) any { return eng.Angle() },
	"isPlaying":        func(eng *engine.Engine, _ []js.Value) any { return eng.IsPlaying() },
}

func main() {
	eng := engine.NewEngine()

	obj := js.Global().Get("Object").New()
	for name, fn := range api {
		obj.Set(name, js.FuncOf(func(_ js.Value, args []js.Value) any {
			return js.ValueOf(fn(eng, args))
		}))
	}
	js.Global().Set("sketchpadEngine", obj)
	js.Global().Set("sketchpadWasmReady", true)

	select {}
}

func failure(msg string) map[string]any { return map[string]any{"error": msg} }

func loadProgram(eng *engine.Engine, args []js.Value) any {
	if len(args) < 1 {
		return failure("missing program name")
	}
	if err := eng.LoadProgram(args[0].String()); err != nil {
		return failure(err.Error())
	}
	return map[string]any{"ok": true}
}

func resize(eng *engine.Engine, args []js.Value) any {
	if len(args) >= 2 {
		eng.Resize(args[0].Float(), args[1].Float())
	}
	return nil
}

func setAngle(eng *engine.Engine, args []js.Value) any {
	if len(args) >= 1 {
		eng.SetAngle(args[0].Float())
	}
	return nil
}

// advance takes elapsed milliseconds, the unit of requestAnimationFrame
// timestamps.
func advance(eng *engine.Engine, args []js.Value) any {
	if len(args) >= 1 {
		eng.Advance(time.Duration(args[0].Float() * float64(time.Millisecond)))
	}
	return nil
}

func handleEvent(eng *engine.Engine, args []js.Value) any {
	if len(args) < 1 {
		return failure("missing event JSON")
	}
	consumed, err := eng.HandleEventJSON(args[0].String())
	if err != nil {
		return failure(err.Error())
	}
	return map[string]any{"consumed": consumed}
}

func takeMessage(eng *engine.Engine, _ []js.Value) any {
	msg := eng.TakeMessage()
	if msg == nil {
		return nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return failure(err.Error())
	}
	return string(data)
}

func getPrograms(_ *engine.Engine, _ []js.Value) any {
	names := demo.Names()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
