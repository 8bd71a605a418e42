package featuredoc

import "testing"

func TestScannerOpen(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		open  []bool
	}{
		{"closed array", []string{`a = [1, 2]`}, []bool{false}},
		{"open array", []string{`a = [`, `1,`, `]`}, []bool{true, true, false}},
		{"nested", []string{`a = [[1,`, `2], [3]]`}, []bool{true, false}},
		{"bracket in string", []string{`a = "[" `}, []bool{false}},
		{"bracket in comment", []string{`a = 1 # [`}, []bool{false}},
		{"header brackets ignored", []string{`[abcd`}, []bool{false}},
		{"multi-line basic", []string{`a = """`, `x = [`, `"""`}, []bool{true, true, false}},
		{"multi-line literal", []string{`a = '''`, `\`, `'''`}, []bool{true, true, false}},
		{"escaped quote", []string{`a = "\"["`}, []bool{false}},
		{"quotes after close", []string{`a = """x""""`}, []bool{false}},
		{"inline table", []string{`a = {`, `b = 1 }`}, []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner()
			for i, l := range tt.lines {
				s.feed(l)
				if got := s.open(); got != tt.open[i] {
					t.Errorf("after line %d open() = %v, want %v", i+1, got, tt.open[i])
				}
			}
		})
	}
}

func TestScannerComment(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{`# x`, 0},
		{`a = 1 # x`, 6},
		{`a = "#" # x`, 8},
		{`a = '#'`, -1},
		{`[features]#xyz`, 10},
	}
	for _, tt := range tests {
		if got := newScanner().feed(tt.line); got != tt.want {
			t.Errorf("feed(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
