package gallery

import "testing"

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{name: "lower bound", input: "100", want: 100},
		{name: "upper bound", input: "1000", want: 1000},
		{name: "mid range", input: "300", want: 300},
		{name: "surrounding whitespace", input: " 250 ", want: 250},
		{name: "too small", input: "50", wantErr: "must be between 100 and 1000"},
		{name: "too large", input: "1500", wantErr: "must be between 100 and 1000"},
		{name: "non numeric", input: "abc", wantErr: "must be a whole number"},
		{name: "fractional", input: "3.5", wantErr: "must be a whole number"},
		{name: "empty", input: "", wantErr: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimension(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseDimension(%q) = %d, want error %q", tt.input, got, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDimension(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDimension(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampBlur(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-1, 0},
		{0, 0},
		{5, 5},
		{10, 10},
		{11, 10},
	}
	for _, tt := range tests {
		if got := ClampBlur(tt.in); got != tt.want {
			t.Errorf("ClampBlur(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilterValid(t *testing.T) {
	if !(Filter{Width: 300, Height: 200}).Valid() {
		t.Error("default-ish filter should be valid")
	}
	if (Filter{Width: 50, Height: 200}).Valid() {
		t.Error("width below minimum should be invalid")
	}
	if (Filter{Width: 300, Height: 1500}).Valid() {
		t.Error("height above maximum should be invalid")
	}
	if (Filter{Width: 300, Height: 200, Blur: 11}).Valid() {
		t.Error("blur above maximum should be invalid")
	}
}

func TestItemDisplaySize(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		maxW    int
		wantW   int
		wantH   int
	}{
		{name: "fits untouched", item: Item{Width: 300, Height: 200}, maxW: 400, wantW: 300, wantH: 200},
		{name: "scaled down", item: Item{Width: 1000, Height: 500}, maxW: 100, wantW: 100, wantH: 50},
		{name: "rounds down", item: Item{Width: 999, Height: 333}, maxW: 100, wantW: 100, wantH: 33},
		{name: "never below one row", item: Item{Width: 1000, Height: 100}, maxW: 5, wantW: 5, wantH: 1},
		{name: "zero item", item: Item{}, maxW: 100, wantW: 0, wantH: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.item.DisplaySize(tt.maxW)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("DisplaySize(%d) = (%d, %d), want (%d, %d)", tt.maxW, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
