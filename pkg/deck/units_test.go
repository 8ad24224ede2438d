package deck

import "testing"

func TestUnits(t *testing.T) {
	tests := []struct {
		name string
		got  EMU
		want EMU
	}{
		{"one inch", Inches(1), 914400},
		{"half inch", Inches(0.5), 457200},
		{"one point", Points(1), 12700},
		{"border", Points(1.5), 19050},
		{"zero", Inches(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}

	if px := Inches(2).Pixels(96); px != 192 {
		t.Errorf("Pixels = %g, want 192", px)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"389CF7", RGB(0x38, 0x9C, 0xF7), false},
		{"#0f172a", RGB(0x0F, 0x17, 0x2A), false},
		{"#fff", RGB(0xFF, 0xFF, 0xFF), false},
		{"nope", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorFormats(t *testing.T) {
	c := MustColor("389cf7")
	if c.Hex() != "389CF7" {
		t.Errorf("Hex = %s", c.Hex())
	}
	if c.ARGB() != "FF389CF7" {
		t.Errorf("ARGB = %s", c.ARGB())
	}
	if c.Blend(RGB(0, 0, 0), 0) != c {
		t.Error("Blend at 0 should return the receiver")
	}
}

func TestRectInset(t *testing.T) {
	r := InchBox(1, 1, 4, 2).Inset(Inches(0.2), Inches(0.1))
	want := InchBox(1.2, 1.1, 3.6, 1.8)
	if r != want {
		t.Errorf("Inset = %+v, want %+v", r, want)
	}
	if !InchBox(0, 0, 10, 10).Contains(r) {
		t.Error("page should contain inset box")
	}
}
