package font

import "testing"

func TestBasicMetrics(t *testing.T) {
	f := Basic()
	if f.Width() != 7 || f.Height() != 13 {
		t.Errorf("Basic() cell = %dx%d, expected 7x13", f.Width(), f.Height())
	}
	if Basic() != f {
		t.Error("Basic() should be rasterised once")
	}
}

func TestGlyphRange(t *testing.T) {
	f := Basic()

	for _, c := range []byte{0, 10, 31, 127, 200} {
		if _, ok := f.Glyph(c); ok {
			t.Errorf("Glyph(%d) should be outside the font", c)
		}
	}

	space, ok := f.Glyph(' ')
	if !ok {
		t.Fatal("space should be in the font")
	}
	for y, row := range space {
		if row != 0 {
			t.Errorf("space row %d = %08b, expected blank", y, row)
		}
	}
}

func TestGlyphsHaveInk(t *testing.T) {
	f := Basic()
	for _, c := range []byte("AZaz09!~") {
		rows, ok := f.Glyph(c)
		if !ok {
			t.Fatalf("Glyph(%q) missing", c)
		}
		if len(rows) != f.Height() {
			t.Errorf("Glyph(%q) has %d rows, expected %d", c, len(rows), f.Height())
		}
		ink := 0
		for _, row := range rows {
			for x := 0; x < 8; x++ {
				if row&(1<<(7-x)) != 0 {
					ink++
					if x >= f.Width() {
						t.Errorf("Glyph(%q) has ink outside its cell at column %d", c, x)
					}
				}
			}
		}
		if ink == 0 {
			t.Errorf("Glyph(%q) is blank", c)
		}
	}

	a, _ := f.Glyph('A')
	b, _ := f.Glyph('B')
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Error("'A' and 'B' should differ")
	}
}
