package remote

import (
	"testing"

	"github.com/lixenwraith/blocksgame/input"
)

func TestMessageSampleScaling(t *testing.T) {
	m, err := decodeMessage([]byte(`{"kind":"down","id":3,"x":0.25,"y":0.5}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	s, err := m.sample(32, 480, 800)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if s.Kind != input.SampleDown || s.Pointer != 35 {
		t.Errorf("Expected Down on pointer 35, got %v on %d", s.Kind, s.Pointer)
	}
	if s.X != 120 || s.Y != 400 {
		t.Errorf("Expected (120,400), got (%v,%v)", s.X, s.Y)
	}
}

func TestMessageRejects(t *testing.T) {
	cases := map[string]string{
		"kind":     `{"kind":"hover","id":0,"x":0.1,"y":0.1}`,
		"id range": `{"kind":"down","id":16,"x":0.1,"y":0.1}`,
		"x range":  `{"kind":"down","id":0,"x":1.5,"y":0.1}`,
		"y range":  `{"kind":"move","id":0,"x":0.1,"y":-0.1}`,
	}
	for name, raw := range cases {
		m, err := decodeMessage([]byte(raw))
		if err != nil {
			t.Fatalf("%s: decode failed: %v", name, err)
		}
		if _, err := m.sample(16, 480, 800); err == nil {
			t.Errorf("%s: expected rejection", name)
		}
	}

	if _, err := decodeMessage([]byte(`{"kind":`)); err == nil {
		t.Error("Expected decode error for truncated message")
	}
}
