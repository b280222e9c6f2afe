package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,19}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// OneOf reports whether s matches one of the allowed enum values exactly.
func OneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// Money validates a non-negative amount.
func Money(v float64) bool { return v >= 0 }

// Stock validates a non-negative stock count.
func Stock(n int) bool { return n >= 0 }

// Qty validates an order line quantity (at least one unit).
func Qty(n int) bool { return n >= 1 }

// Rating validates a supplier rating in [0,5].
func Rating(v float64) bool { return v >= 0 && v <= 5 }

// Brands splits a comma-separated brand list, trimming entries and
// dropping empties, so "Chanel, Dior, " becomes ["Chanel","Dior"].
func Brands(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if b := strings.TrimSpace(p); b != "" {
			out = append(out, b)
		}
	}
	return out
}
