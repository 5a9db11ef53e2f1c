// Package typeid mints the prefixed ids that tag shapes in draw commands
// and name websocket sessions, e.g. shape_01h455vb4pex5vsknk084sn02q.
package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixShape   = "shape"
	PrefixSession = "sess"
)

func NewShapeID() string   { return typeid.MustGenerate(PrefixShape).String() }
func NewSessionID() string { return typeid.MustGenerate(PrefixSession).String() }

// Prefix parses id and returns its type prefix.
func Prefix(id string) (string, error) {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("parse id %q: %w", id, err)
	}
	return parsed.Prefix(), nil
}

// Is reports whether id is well formed and carries prefix.
func Is(id, prefix string) bool {
	p, err := Prefix(id)
	return err == nil && p == prefix
}
