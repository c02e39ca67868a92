package flow

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// District names typed by hand instead of picked from the catalog.
	DistrictMinLen = 2
	DistrictMaxLen = 60

	NoteMinLen = 1
	NoteMaxLen = 350
)

var (
	phoneRe         = regexp.MustCompile(`^\+?\d{7,15}$`)
	pageIndicatorRe = regexp.MustCompile(`^\d+/\d+$`)
	phoneCleaner    = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// NormalizePhone is a best-effort cleanup of a user-supplied phone
// number: punctuation is stripped, the "00" international prefix
// becomes "+", a bare 998-prefixed 12-digit number or any all-digit
// string gets a "+" prepended. It does not guarantee validity.
func NormalizePhone(raw string) string {
	s := phoneCleaner.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	if strings.HasPrefix(s, "998") && len(s) == 12 {
		s = "+" + s
	}
	if !strings.HasPrefix(s, "+") && isDigits(s) {
		s = "+" + s
	}
	return s
}

// IsValidPhone reports whether s looks like an international phone
// number after NormalizePhone.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
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

// ParsePassengerCount accepts exactly the passenger keyboard tokens
// "1".."4" and "5+" ("5+" counts as 5). Anything else, including other
// numerals, is rejected.
func ParsePassengerCount(token string) (int, bool) {
	switch strings.TrimSpace(token) {
	case "1":
		return 1, true
	case "2":
		return 2, true
	case "3":
		return 3, true
	case "4":
		return 4, true
	case "5+":
		return 5, true
	}
	return 0, false
}

// IsCargoOnly reports whether token selects the cargo-only option.
func IsCargoOnly(token string) bool {
	if strings.TrimSpace(token) == CargoLabel {
		return true
	}
	return strings.Contains(strings.ToLower(token), "почта")
}

// SanitizeFreeText trims token and checks its rune length against
// [min, max]. The cleaned string is returned only when it fits.
func SanitizeFreeText(token string, min, max int) (string, bool) {
	t := strings.TrimSpace(token)
	n := utf8.RuneCountInString(t)
	if n < min || n > max {
		return "", false
	}
	return t, true
}

// IsPageIndicator matches the inert "page/total" keyboard button.
func IsPageIndicator(token string) bool {
	return pageIndicatorRe.MatchString(strings.TrimSpace(token))
}

// IsPaginationControl reports whether token is one of the pagination
// navigation buttons, so it is never mistaken for a selection.
func IsPaginationControl(token string) bool {
	t := strings.TrimSpace(token)
	return t == NextLabel || t == PrevLabel || t == BackLabel || IsPageIndicator(t)
}
