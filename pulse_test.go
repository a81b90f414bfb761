package rf433

import "testing"

func TestPulseSaturated(t *testing.T) {
	tests := []struct {
		name string
		p    Pulse
		want bool
	}{
		{"zero value", Pulse{}, false},
		{"normal pulse", Pulse{Low: 40, High: 60}, false},
		{"low maxed but not saturated", Pulse{Low: 254, High: 0}, false},
		{"saturated sentinel", Pulse{Low: 255, High: 0}, true},
		{"saturated with high set", Pulse{Low: 255, High: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Saturated(); got != tt.want {
				t.Errorf("Saturated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAbsSub(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{10, 3, 7},
		{3, 10, 7},
		{5, 5, 0},
		{0, 255, 255},
		{255, 0, 255},
	}
	for _, tt := range tests {
		if got := AbsSub(tt.a, tt.b); got != tt.want {
			t.Errorf("AbsSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestOvfSub(t *testing.T) {
	tests := []struct {
		v1, v2, want uint8
	}{
		{0, 10, 10},
		{250, 5, 11},   // wraps: 256-250+5 = 11
		{5, 5, 0},
		{10, 0, 246},   // 256-10+0
	}
	for _, tt := range tests {
		if got := OvfSub(tt.v1, tt.v2); got != tt.want {
			t.Errorf("OvfSub(%d, %d) = %d, want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func TestPulseSum(t *testing.T) {
	p := Pulse{Low: 200, High: 200}
	if got := p.Sum(); got != 400 {
		t.Errorf("Sum() = %d, want 400 (must not truncate to uint8)", got)
	}
}
