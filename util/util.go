package util

import (
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// SplitByComma splits str on commas and drops empty items
func SplitByComma(str string) []string {
	str = strings.TrimSpace(str)
	strArr := strings.Split(str, ",")
	var trimStr []string
	for _, item := range strArr {
		if len(strings.TrimSpace(item)) > 0 {
			trimStr = append(trimStr, strings.TrimSpace(item))
		}
	}
	return trimStr
}

// Uint64ToString coverts uint64 to string
func Uint64ToString(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// DecimalToUint64 converts the text of an arbitrary precision decimal to uint64. A fractional
// part is truncated. The second return value is false if the value is negative, malformed or
// larger than math.MaxUint64.
func DecimalToUint64(str string) (uint64, bool) {
	str = strings.TrimPrefix(strings.TrimSpace(str), "+")
	intPart, fraction, _ := strings.Cut(str, ".")
	if !isDigits(intPart) || (fraction != "" && !isDigits(fraction)) {
		return 0, false
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		return 0, true
	}
	v, err := uint256.FromDecimal(intPart)
	if err != nil || !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}

func isDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, c := range str {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
