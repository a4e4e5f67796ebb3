package utils

import (
	"fmt"
	"strconv"
)

// FormatUAH renders an integer hryvnia amount with thousand separators,
// e.g. 1350 -> "1 350 грн".
func FormatUAH(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%s грн", sign, formatThousand(amount))
}

func formatThousand(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
