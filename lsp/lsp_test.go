package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/textscan"
)

func TestToProtocol(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  textscan.Position
		want protocol.Position
	}{
		{"start of text", "ab\ncd", textscan.At(1, 1), protocol.Position{Line: 0, Character: 0}},
		{"end of first line", "ab\ncd", textscan.At(1, 3), protocol.Position{Line: 0, Character: 2}},
		{"second line", "ab\ncd", textscan.At(2, 2), protocol.Position{Line: 1, Character: 1}},
		{"unset position", "ab\ncd", textscan.Position{}, protocol.Position{}},
		{"column clamps at line end", "ab\ncd", textscan.At(1, 99), protocol.Position{Line: 0, Character: 2}},
		{"astral rune", "a\U00010400b", textscan.At(1, 2), protocol.Position{Line: 0, Character: 1}},
		{"after astral rune", "a\U00010400b", textscan.At(1, 3), protocol.Position{Line: 0, Character: 3}},
		{"crlf line break", "ab\r\ncd", textscan.At(2, 2), protocol.Position{Line: 1, Character: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToProtocol(tt.src, tt.pos); got != tt.want {
				t.Errorf("ToProtocol(%q, %v) = %v, want %v", tt.src, tt.pos, got, tt.want)
			}
		})
	}
}

func TestFromProtocol(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  protocol.Position
		want textscan.Position
	}{
		{"start of text", "ab\ncd", protocol.Position{Line: 0, Character: 0}, textscan.At(1, 1)},
		{"second line", "ab\ncd", protocol.Position{Line: 1, Character: 1}, textscan.At(2, 2)},
		{"character clamps at line end", "ab\ncd", protocol.Position{Line: 0, Character: 99}, textscan.At(1, 3)},
		{"astral rune", "a\U00010400b", protocol.Position{Line: 0, Character: 3}, textscan.At(1, 3)},
		{"mid surrogate pair snaps forward", "a\U00010400b", protocol.Position{Line: 0, Character: 2}, textscan.At(1, 3)},
		{"crlf line break", "ab\r\ncd", protocol.Position{Line: 1, Character: 2}, textscan.At(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromProtocol(tt.src, tt.pos); got != tt.want {
				t.Errorf("FromProtocol(%q, %v) = %v, want %v", tt.src, tt.pos, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	src := "first\nsecond \U00010400 line\nthird"

	c := textscan.New(src)
	for {
		p := c.Position()
		if got := FromProtocol(src, ToProtocol(src, p)); got != p {
			t.Errorf("round trip of %v = %v", p, got)
		}
		if _, ok := c.Next(); !ok {
			break
		}
	}
}
