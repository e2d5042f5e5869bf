package theme

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"terminal", "terminal"},
		{"tokyo-night", "tokyo-night"},
		{"flexoki-dark", "flexoki-dark"},
		{"", "flexoki-dark"},
		{"solarized", "flexoki-dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByName(tt.name).Name; got != tt.want {
				t.Errorf("ByName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestTerminalUsesANSIColors(t *testing.T) {
	// The status line contract is SGR 31/32/33, i.e. ANSI colors 1/2/3.
	if Terminal.Red != "1" || Terminal.Green != "2" || Terminal.Yellow != "3" || Terminal.Branch != "3" {
		t.Errorf("Terminal palette = %+v, want red=1 green=2 yellow=3 branch=3", Terminal)
	}
}
