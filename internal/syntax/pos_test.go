package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("test.mpl", 10, 5), "test.mpl:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"line 1 col 1", NewPos("main.mpl", 1, 1), "main.mpl:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos("test.mpl", 1, 1), true},
		{"valid position line 100", NewPos("", 100, 50), true},
		{"invalid - zero line", NewPos("test.mpl", 0, 1), false},
		{"invalid - zero value", Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosAccessors(t *testing.T) {
	p := NewPos("a.mpl", 3, 7)
	if p.Line() != 3 || p.Col() != 7 || p.Filename() != "a.mpl" {
		t.Errorf("got %s:%d:%d, want a.mpl:3:7", p.Filename(), p.Line(), p.Col())
	}
}

func TestPosBefore(t *testing.T) {
	tests := []struct {
		p, q Pos
		want bool
	}{
		{NewPos("", 1, 1), NewPos("", 1, 2), true},
		{NewPos("", 1, 9), NewPos("", 2, 1), true},
		{NewPos("", 2, 1), NewPos("", 1, 9), false},
		{NewPos("", 4, 4), NewPos("", 4, 4), false},
	}
	for _, tt := range tests {
		if got := tt.p.Before(tt.q); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}
