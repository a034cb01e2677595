package textscan

import "testing"

func TestPositionZeroValue(t *testing.T) {
	var p Position
	if p.IsValid() {
		t.Error("zero value should be invalid")
	}
	if p.Line != 0 || p.Column != 0 {
		t.Errorf("zero value = %d:%d, want 0:0", p.Line, p.Column)
	}
}

func TestPositionAt(t *testing.T) {
	p := At(3, 14)
	if p.Line != 3 {
		t.Errorf("Line = %d, want %d", p.Line, 3)
	}
	if p.Column != 14 {
		t.Errorf("Column = %d, want %d", p.Column, 14)
	}
	if !p.IsValid() {
		t.Error("At(3, 14) should be valid")
	}
}

func TestPositionAdvanceChar(t *testing.T) {
	p := At(2, 5)
	p.AdvanceChar()
	if p != At(2, 6) {
		t.Errorf("after AdvanceChar = %v, want %v", p, At(2, 6))
	}
}

func TestPositionAdvanceLine(t *testing.T) {
	p := At(2, 5)
	p.AdvanceLine()
	if p != At(3, 1) {
		t.Errorf("after AdvanceLine = %v, want %v", p, At(3, 1))
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{}, "-"},
		{At(1, 1), "1:1"},
		{At(12, 34), "12:34"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
