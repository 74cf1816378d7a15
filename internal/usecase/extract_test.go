package usecase

import "testing"

func TestExtractDiameter(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"diameter in parentheses", "Πίτσα Γίγας (40cm)", 40, true},
		{"diameter with space", "Πίτσα 36 cm", 36, true},
		{"uppercase unit", "Πίτσα 30CM", 30, true},
		{"first match wins", "28cm ή 36cm", 28, true},
		{"no diameter", "Πίτσα Μεγάλη", 0, false},
		{"empty text", "", 0, false},
		{"number without unit", "3 Πίτσες", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDiameter(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractDiameter(%q) = (%d, %v), want (%d, %v)",
					tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractSizeKeyword(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"family size", "οικογενειακή", "οικογενειακή", true},
		{"family stem in plural", "Πίτσες οικογενειακές", "οικογενειακή", true},
		{"gigas with accent", "Πίτσα Γίγας", "γίγας", true},
		{"gigas without accent", "ΠΙΤΣΑ ΓΙΓΑΣ", "γίγας", true},
		{"uppercase accented keeps final sigma folded", "ΠΊΤΣΑ ΓΊΓΑΣ", "γίγας", true},
		{"large", "Μεγάλη πίτσα", "μεγάλη", true},
		{"regular", "Κανονική", "κανονική", true},
		{"small", "μικρή πίτσα", "μικρή", true},
		{"gigas beats family when both present", "Γίγας ή οικογενειακή", "γίγας", true},
		{"no keyword", "Πίτσα Special", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSizeKeyword(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractSizeKeyword(%q) = (%q, %v), want (%q, %v)",
					tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{"three family pizzas", "3 Πίτσες οικογενειακές", 3},
		{"two pizzas", "2 Πίτσες Γίγας", 2},
		{"lowercase stem", "2 πίτσες της επιλογής σας", 2},
		{"no count defaults to one", "Πίτσα Μεγάλη", 1},
		{"unrelated number", "Προσφορά 1+1", 1},
		{"empty title", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractQuantity(tt.title); got != tt.want {
				t.Errorf("ExtractQuantity(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{"comma decimal with euro", "22,00€", 22.00, true},
		{"euro prefix", "€18.00", 18.00, true},
		{"plain number", "12.5", 12.5, true},
		{"integer", "9€", 9, true},
		{"empty", "", 0, false},
		{"no number", "δωρεάν", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParsePrice(%q) = (%v, %v), want (%v, %v)",
					tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
