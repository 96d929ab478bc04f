package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/tatianab/number-game/internal/models"
)

var (
	// ErrDivisionByZero is returned when a divisibility condition would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownKind is returned for a condition kind outside the supported set.
	ErrUnknownKind = errors.New("unknown condition kind")
)

// Evaluate reports whether c holds for n.
func Evaluate(c models.Condition, n int) (bool, error) {
	switch c.Kind {
	case models.LargerThan:
		return n > c.Value, nil
	case models.SmallerThan:
		return n < c.Value, nil
	case models.ContainsDigit:
		return slices.Contains(Digits(n), c.Value), nil
	case models.SumOfDigits:
		return digitSum(n) == c.Value, nil
	case models.HasFactor:
		if c.Value == 0 {
			return false, fmt.Errorf("%s: factor is 0: %w", c.Kind, ErrDivisionByZero)
		}
		return n%c.Value == 0, nil
	case models.HasMultiple:
		if n == 0 {
			return false, fmt.Errorf("%s: candidate is 0: %w", c.Kind, ErrDivisionByZero)
		}
		return c.Value%n == 0, nil
	case models.IsSquare:
		return isSquare(n) == c.Flag, nil
	case models.IsCube:
		return isCube(n) == c.Flag, nil
	case models.IsPalindrome:
		return isPalindrome(n) == c.Flag, nil
	case models.DoesntContain:
		for _, d := range Digits(n) {
			if slices.Contains(c.Digits, d) {
				return false, nil
			}
		}
		return true, nil
	case models.ContainsDigitAlliteration:
		return hasRepeatedDigit(n) == c.Flag, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
}

// Holds is Evaluate with every evaluation error counted as "does not hold".
// A guess of 0 is a normal state, so HasMultiple failing on it is not fatal.
func Holds(c models.Condition, n int) bool {
	ok, err := Evaluate(c, n)
	return err == nil && ok
}

// isSquare and isCube truncate a floating point root and then check the
// neighbouring integers, which absorbs rounding in math.Sqrt/math.Cbrt.
func isSquare(n int) bool {
	if n < 0 {
		return false
	}
	root := int(math.Sqrt(float64(n)))
	for r := root - 1; r <= root+1; r++ {
		if r >= 0 && r*r == n {
			return true
		}
	}
	return false
}

func isCube(n int) bool {
	root := int(math.Cbrt(float64(n)))
	for r := root - 1; r <= root+1; r++ {
		if r*r*r == n {
			return true
		}
	}
	return false
}

func isPalindrome(n int) bool {
	digits := Digits(n)
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		if digits[i] != digits[j] {
			return false
		}
	}
	return true
}

// hasRepeatedDigit reports whether the same digit appears twice in a row in
// the decimal text of n.
func hasRepeatedDigit(n int) bool {
	text := strconv.Itoa(n)
	for i := 1; i < len(text); i++ {
		if text[i] == text[i-1] && text[i] >= '0' && text[i] <= '9' {
			return true
		}
	}
	return false
}
