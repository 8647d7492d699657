package font

import (
	"bytes"
	"testing"
)

func TestBasic6x8Coverage(t *testing.T) {
	if Basic6x8.Width != 6 {
		t.Errorf("Width = %d, want 6", Basic6x8.Width)
	}
	if Basic6x8.Height != 8 {
		t.Errorf("Height = %d, want 8", Basic6x8.Height)
	}

	// Full printable ASCII range, 5 drawn columns per glyph.
	for r := rune(0x20); r <= 0x7E; r++ {
		g, ok := Basic6x8.glyphs[r]
		if !ok {
			t.Errorf("missing glyph for %q", r)
			continue
		}
		if len(g) != 5 {
			t.Errorf("glyph %q has %d columns, want 5", r, len(g))
		}
	}
}

func TestColumns(t *testing.T) {
	got := Basic6x8.Columns('A')
	want := []byte{0x7E, 0x11, 0x11, 0x11, 0x7E}
	if !bytes.Equal(got, want) {
		t.Errorf("Columns('A') = %#v, want %#v", got, want)
	}

	// Space is drawn fully blank.
	for i, c := range Basic6x8.Columns(' ') {
		if c != 0 {
			t.Errorf("Columns(' ')[%d] = %#x, want 0", i, c)
		}
	}
}

func TestColumnsReplacement(t *testing.T) {
	got := Basic6x8.Columns('é')
	want := Basic6x8.Columns('?')
	if !bytes.Equal(got, want) {
		t.Errorf("Columns('é') = %#v, want the replacement glyph %#v", got, want)
	}
}

func TestRenderWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"A", 6},
		{"ABC", 18},
		{"é", 6}, // replacement glyph still occupies one cell
	}

	for _, tt := range tests {
		if got := len(Basic6x8.Render(tt.text)); got != tt.want {
			t.Errorf("len(Render(%q)) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestRenderSpacing(t *testing.T) {
	cols := Basic6x8.Render("HI")

	// Every cell ends with a blank spacing column.
	if cols[5] != 0 || cols[11] != 0 {
		t.Error("spacing columns must be blank")
	}
	if !bytes.Equal(cols[0:5], Basic6x8.Columns('H')) {
		t.Error("first cell does not match the H glyph")
	}
	if !bytes.Equal(cols[6:11], Basic6x8.Columns('I')) {
		t.Error("second cell does not match the I glyph")
	}
}
