package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Matches an integer immediately followed by "cm", e.g. "36cm" or "36 cm"
	diameterRegex = regexp.MustCompile(`(?i)(\d+)\s*cm`)

	// Matches a leading count before a pizza stem, e.g. "2 Πίτσες", "3 πίτσες"
	quantityRegex = regexp.MustCompile(`(\d+)\s*[Ππ]ίτσ`)

	// Matches a numeric price token after currency cleanup, e.g. "22.00"
	priceRegex = regexp.MustCompile(`(\d+\.?\d*)`)

	// Pizza stem in an offer title
	pizzaTitleRegex = regexp.MustCompile(`[Ππ]ίτσ`)

	// Size-indicative category name of a tier item
	pizzaTierRegex = regexp.MustCompile(`[Ππ]ίτσ|[Γγ]ίγας|[Οο]ικογενειακ`)
)

// sizeRule maps lowercase keyword stems to a normalized size name. Rules are
// evaluated in order; the first stem found in the text wins.
type sizeRule struct {
	stems      []string
	normalized string
}

// sizeRules is the base Greek size vocabulary used when resolving one offer.
var sizeRules = []sizeRule{
	{stems: []string{"γίγας", "γιγας"}, normalized: "γίγας"},
	{stems: []string{"οικογενειακ"}, normalized: "οικογενειακή"},
	{stems: []string{"μεγάλ"}, normalized: "μεγάλη"},
	{stems: []string{"κανονικ"}, normalized: "κανονική"},
	{stems: []string{"μικρ"}, normalized: "μικρή"},
}

// discoveryRules is the extended vocabulary used by the store size pre-scan.
// It recognizes everything sizeRules does plus single-person, medium and
// square/jumbo variants, including accentless spellings seen in category
// names.
var discoveryRules = []sizeRule{
	{stems: []string{"γίγας", "γιγας"}, normalized: "γίγας"},
	{stems: []string{"οικογενειακ"}, normalized: "οικογενειακή"},
	{stems: []string{"μεγάλ", "μεγαλ"}, normalized: "μεγάλη"},
	{stems: []string{"μεσαι", "μεσαί"}, normalized: "μεσαία"},
	{stems: []string{"κανονικ"}, normalized: "κανονική"},
	{stems: []string{"ατομικ"}, normalized: "μικρή"},
	{stems: []string{"τετράγων", "τετραγων", "jumbo"}, normalized: "jumbo"},
	{stems: []string{"μικρ"}, normalized: "μικρή"},
}

// defaultDiameters maps normalized Greek size names to typical diameters in
// cm. Used only as a last resort when neither the offer text nor the store's
// own catalog reveals an explicit size.
var defaultDiameters = map[string]int{
	"μικρή":        25,
	"κανονική":     30,
	"μεσαία":       32,
	"μεγάλη":       36,
	"οικογενειακή": 36,
	"γίγας":        40,
	"jumbo":        45,
}

// ExtractDiameter extracts a diameter in cm from text like "36cm" or "36 cm".
// Returns the first match; no unit conversion is performed.
func ExtractDiameter(text string) (int, bool) {
	match := diameterRegex.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	cm, err := strconv.Atoi(match[1])
	if err != nil || cm <= 0 {
		return 0, false
	}
	return cm, true
}

// ExtractSizeKeyword extracts a normalized size name from free text
// (γίγας, οικογενειακή, μεγάλη, κανονική, μικρή).
func ExtractSizeKeyword(text string) (string, bool) {
	return matchSizeRules(text, sizeRules)
}

// ExtractQuantity extracts the pizza count from a title like "2 Πίτσες".
// Defaults to 1 when no count is present.
func ExtractQuantity(title string) int {
	match := quantityRegex.FindStringSubmatch(title)
	if match == nil {
		return 1
	}
	qty, err := strconv.Atoi(match[1])
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

// ParsePrice extracts a price from a formatted string like "22,00€" or
// "€18.00". The currency symbol is stripped and the comma decimal separator
// converted to a dot before matching the leading numeric token.
func ParsePrice(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(text, "€", ""), ",", "."))
	match := priceRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return 0, false
	}
	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func matchSizeRules(text string, rules []sizeRule) (string, bool) {
	folded := foldSigma(strings.ToLower(text))
	for _, rule := range rules {
		for _, stem := range rule.stems {
			if strings.Contains(folded, foldSigma(stem)) {
				return rule.normalized, true
			}
		}
	}
	return "", false
}

// foldSigma maps the final sigma to the medial form. Uppercase Greek has no
// final sigma, so strings.ToLower("ΓΙΓΑΣ") yields "γιγασ" while the stems
// carry "ς"; folding both sides makes the comparison form-insensitive.
func foldSigma(s string) string {
	return strings.ReplaceAll(s, "ς", "σ")
}

func isPizzaTitle(title string) bool {
	return pizzaTitleRegex.MatchString(title)
}

func isPizzaTierCategory(categoryName string) bool {
	return pizzaTierRegex.MatchString(categoryName)
}
