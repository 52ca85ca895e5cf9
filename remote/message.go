package remote

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/blocksgame/input"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message is one touch observation in normalized pad coordinates
type Message struct {
	Kind string  `json:"kind"` // "down", "move" or "up"
	ID   uint32  `json:"id"`   // Touch identity local to the connection
	X    float64 `json:"x"`    // 0..1 across the pad
	Y    float64 `json:"y"`    // 0..1 down the pad
}

// Ack answers every accepted message
type Ack struct {
	Seq   uint64 `json:"seq"`
	Click bool   `json:"click"`
}

func decodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode message: %w", err)
	}
	return m, nil
}

func parseKind(kind string) (input.SampleKind, bool) {
	switch kind {
	case "down":
		return input.SampleDown, true
	case "move":
		return input.SampleMove, true
	case "up":
		return input.SampleUp, true
	}
	return 0, false
}

// sample scales m onto the logical canvas under the connection's pointer range
func (m Message) sample(base input.PointerID, width, height float64) (input.Sample, error) {
	kind, ok := parseKind(m.Kind)
	if !ok {
		return input.Sample{}, fmt.Errorf("unknown kind %q", m.Kind)
	}
	if m.ID >= stride {
		return input.Sample{}, fmt.Errorf("touch id %d out of range", m.ID)
	}
	if m.X < 0 || m.X > 1 || m.Y < 0 || m.Y > 1 {
		return input.Sample{}, fmt.Errorf("position (%v,%v) outside pad", m.X, m.Y)
	}
	return input.Sample{
		Kind:    kind,
		Pointer: base + input.PointerID(m.ID),
		X:       m.X * width,
		Y:       m.Y * height,
	}, nil
}
