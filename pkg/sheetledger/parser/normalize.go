package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultYear is used when a free-form date carries no 4-digit year.
const DefaultYear = "2024"

var monthNames = map[string]string{
	"enero": "01", "febrero": "02", "marzo": "03", "abril": "04",
	"mayo": "05", "junio": "06", "julio": "07", "agosto": "08",
	"septiembre": "09", "setiembre": "09", "octubre": "10",
	"noviembre": "11", "diciembre": "12",
}

// Weekdays and connectors that carry no date information.
var dateNoise = map[string]bool{
	"lunes": true, "martes": true, "miercoles": true, "jueves": true,
	"viernes": true, "sabado": true, "domingo": true,
	"de": true, "del": true,
}

var (
	isoDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	whitespace = regexp.MustCompile(`\s+`)
)

// ParseCurrency converts a currency cell such as "$1.500" or "$1.500,50" to a number.
// Dots are thousands separators; a final comma group of one or two digits is the
// decimal part. Empty or unparseable text yields 0.
func ParseCurrency(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.Trim(s, "()")
	}
	s = strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(s)
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	s = strings.ReplaceAll(s, ".", "")
	if i := strings.LastIndex(s, ","); i >= 0 {
		whole := strings.ReplaceAll(s[:i], ",", "")
		frac := s[i+1:]
		if len(frac) == 1 || len(frac) == 2 {
			s = whole + "." + frac
		} else {
			s = whole + frac
		}
	}
	if s == "" || !onlyDigitsAndPoint(s) {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if negative {
		d = d.Neg()
	}
	f, _ := d.Float64()
	return f
}

// LedgerNumber renders a plain decimal such as "1500.5" the way the ledgers
// write amounts ("1500,5"), rounded to cents so ParseCurrency reads it back.
func LedgerNumber(raw string) (string, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return strings.Replace(d.Round(2).String(), ".", ",", 1), true
}

func onlyDigitsAndPoint(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// ParseDate converts free-form date text to YYYY-MM-DD.
//
// Slash dates are read as D/M/Y. Text such as "viernes, 1 de septiembre de 2023"
// is split into words: one or two digits are the day, four digits the year and
// Spanish month names the month. Missing parts default to day 01, month 01 and
// DefaultYear. Empty text yields "".
func ParseDate(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return ""
	}
	if strings.Contains(s, "/") {
		return slashDate(s)
	}
	if isoDate.MatchString(s) {
		return s[:10]
	}

	s = strings.ReplaceAll(foldAccents(s), ",", " ")
	day, month, year := "01", "01", DefaultYear
	for _, tok := range strings.Fields(s) {
		switch {
		case dateNoise[tok]:
		case isDigits(tok) && len(tok) <= 2:
			day = pad2(tok)
		case isDigits(tok) && len(tok) == 4:
			year = tok
		default:
			if m, ok := monthNames[tok]; ok {
				month = m
			}
		}
	}
	return year + "-" + month + "-" + day
}

// slashDate handles D/M/Y and D/M. Parts that are not numbers keep their defaults.
func slashDate(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		if fields := strings.Fields(p); len(fields) > 0 {
			parts[i] = fields[0]
		} else {
			parts[i] = ""
		}
	}

	day, month, year := "01", "01", DefaultYear
	if len(parts) >= 1 && isDigits(parts[0]) && len(parts[0]) <= 2 {
		day = pad2(parts[0])
	}
	if len(parts) >= 2 && isDigits(parts[1]) && len(parts[1]) <= 2 {
		month = pad2(parts[1])
	}
	if len(parts) >= 3 && isDigits(parts[2]) {
		year = expandYear(parts[2])
	}
	return year + "-" + month + "-" + day
}

// ParseSheetDate reads the ledger date from a sheet title ending in D/M/YY,
// e.g. "CUADRE 14/05/24" yields "2024-05-14". Excel forbids "/" in sheet
// names, so "-" and "." are accepted as separators too.
func ParseSheetDate(title string) (string, error) {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetDate, title)
	}
	parts := strings.FieldsFunc(fields[len(fields)-1], func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrSheetDate, title)
	}
	d, m, y := parts[0], parts[1], parts[2]
	if !isDigits(d) || !isDigits(m) || !isDigits(y) || len(d) > 2 || len(m) > 2 {
		return "", fmt.Errorf("%w: %q", ErrSheetDate, title)
	}
	return expandYear(y) + "-" + pad2(m) + "-" + pad2(d), nil
}

// NormalizeHeader upper-cases header text, folds accents, drops punctuation
// and collapses runs of whitespace.
func NormalizeHeader(text string) string {
	s := strings.ToUpper(foldAccents(text))
	s = strings.NewReplacer(".", "", ":", "", ";", "").Replace(s)
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// foldKey is the form key cells are compared in: trimmed, upper-case, accent-free.
func foldKey(text string) string {
	return strings.ToUpper(foldAccents(strings.TrimSpace(text)))
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func expandYear(y string) string {
	switch len(y) {
	case 1:
		return "200" + y
	case 2:
		return "20" + y
	}
	return y
}
