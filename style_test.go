package forms

import "testing"

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in      string
		want    TextAlignment
		wantErr bool
	}{
		{"top|left", AlignTopLeft, false},
		{"bottom|right", AlignBottomRight, false},
		{"vcenter|hcenter", AlignCenter, false},
		{"center", AlignCenter, false},
		{"LEFT", AlignLeft, false},
		{" top | right ", AlignTopRight, false},
		{"middle", 0, true},
		{"top|", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlignment(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleOverlayFallback(t *testing.T) {
	normal := &Overlay{fontSize: 14}
	active := &Overlay{fontSize: 18}

	s := &Style{id: "button"}
	s.overlays[StateNormal] = normal
	s.overlays[StateActive] = active

	if got := s.Overlay(StateNormal); got != normal {
		t.Error("normal overlay not returned")
	}
	if got := s.Overlay(StateActive); got != active {
		t.Error("active overlay not returned")
	}
	// No focus overlay declared: fall back to normal.
	if got := s.Overlay(StateFocus); got != normal {
		t.Error("focus should fall back to normal overlay")
	}
	// Out-of-range states also fall back to normal.
	if got := s.Overlay(ControlState(99)); got != normal {
		t.Error("unknown state should fall back to normal overlay")
	}
}

func TestControlStateString(t *testing.T) {
	if StateNormal.String() != "normal" || StateFocus.String() != "focus" || StateActive.String() != "active" {
		t.Error("unexpected state names")
	}
}
