package glyph

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'0', Digit},
		{'9', Digit},
		{'A', Upper},
		{'Z', Upper},
		{'a', Lower},
		{'z', Lower},
		{'-', Hyphen},
		{' ', Other},
		{'!', Other},
		{':', Other},
		{'é', Other},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestSlot(t *testing.T) {
	tests := []struct {
		r      rune
		want   int
		wantOK bool
	}{
		{'0', 1, true},
		{'9', 10, true},
		{'A', 11, true},
		{'Z', 36, true},
		{'a', 37, true},
		{'z', 62, true},
		{'-', 0, false},
		{'?', 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := Slot(tt.r)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Slot(%q) = (%d, %v), want (%d, %v)", tt.r, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTableLayout(t *testing.T) {
	if Len() != 63 {
		t.Fatalf("Len() = %d, want 63", Len())
	}
	if b, _ := At(0); b != (Bitmap{}) {
		t.Errorf("slot 0 = %v, want blank", b)
	}
	for i := 1; i < Len(); i++ {
		b, ok := At(i)
		if !ok {
			t.Fatalf("At(%d) not found", i)
		}
		if b == (Bitmap{}) {
			t.Errorf("slot %d is blank", i)
		}
	}
	if _, ok := At(Len()); ok {
		t.Error("At(Len()) should be out of range")
	}
	if _, ok := At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
}

func TestLookupUsesClassBase(t *testing.T) {
	upper := Lookup('A')
	lower := Lookup('a')
	if want, _ := At(UpperBase); upper != want {
		t.Errorf("Lookup('A') = %v, want slot %d", upper, UpperBase)
	}
	if want, _ := At(LowerBase); lower != want {
		t.Errorf("Lookup('a') = %v, want slot %d", lower, LowerBase)
	}
	if upper == lower {
		t.Error("'A' and 'a' share a bitmap")
	}
	for r := '0'; r <= '9'; r++ {
		d := Lookup(r)
		if d == upper || d == lower {
			t.Errorf("digit %q shares a bitmap with a letter", r)
		}
	}
}

func TestLookupHyphen(t *testing.T) {
	b := Lookup('-')
	for col := 0; col < Width; col++ {
		for row := 0; row < Height; row++ {
			if got := b.Set(col, row); got != (row == 3) {
				t.Errorf("hyphen (%d,%d) = %v", col, row, got)
			}
		}
	}
}

func TestLookupUnsupportedIsBlank(t *testing.T) {
	for _, r := range []rune{' ', '.', ':', '\n', 'ß'} {
		if b := Lookup(r); b != (Bitmap{}) {
			t.Errorf("Lookup(%q) = %v, want blank", r, b)
		}
	}
}

func TestDigitOneShape(t *testing.T) {
	// The stem of '1' occupies columns 2 and 3, rows 0 through 6.
	b := Lookup('1')
	for row := 0; row < 7; row++ {
		if !b.Set(2, row) || !b.Set(3, row) {
			t.Errorf("'1' stem missing at row %d", row)
		}
	}
	if b.Set(2, 7) {
		t.Error("'1' should leave the bottom row empty")
	}
}
