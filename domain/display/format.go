// Package display formats numbers and currency the way the dashboard and
// PDF report present them (pt-BR conventions: dot thousands separator,
// comma decimals).
package display

import (
	"fmt"
	"math"
	"strings"
)

// Currency renders a monetary amount as "R$ 1.234,56".
func Currency(value float64) string {
	negative := value < 0
	value = math.Abs(value)
	whole := int64(value)
	cents := int64(math.Round((value - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	formatted := fmt.Sprintf("R$ %s,%02d", groupThousands(whole), cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// Number renders an integer amount with thousands grouping, "145.000".
func Number(value int) string {
	if value < 0 {
		return "-" + groupThousands(int64(-value))
	}
	return groupThousands(int64(value))
}

func groupThousands(value int64) string {
	digits := fmt.Sprintf("%d", value)
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, ".")
}
