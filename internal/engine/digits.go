package engine

import (
	"strconv"
	"strings"
)

// Digits returns the decimal digits of n, most significant first. The sign of
// a negative n is ignored.
func Digits(n int) []int {
	text := strings.TrimPrefix(strconv.Itoa(n), "-")
	out := make([]int, len(text))
	for i, r := range text {
		out[i] = int(r - '0')
	}
	return out
}

func digitSum(n int) int {
	sum := 0
	for _, d := range Digits(n) {
		sum += d
	}
	return sum
}
