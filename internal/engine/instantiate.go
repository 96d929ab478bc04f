package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tatianab/number-game/internal/models"
)

// ErrInvariantViolation marks a puzzle that cannot be built from the secret,
// such as choosing from an empty digit or divisor set. It is a programming
// or configuration defect, never a gameplay outcome.
var ErrInvariantViolation = errors.New("invariant violation")

// Instantiate turns a template into a concrete condition that holds for
// secret. src is only consulted for kinds with more than one valid payload.
func Instantiate(tmpl models.Condition, secret int, rules models.Rules, src Source) (models.Condition, error) {
	c := models.Condition{Kind: tmpl.Kind}

	switch tmpl.Kind {
	case models.LargerThan:
		if secret <= 0 {
			return models.Condition{}, fmt.Errorf("%s needs a positive secret, got %d: %w", tmpl.Kind, secret, ErrInvariantViolation)
		}
		c.Value = src.IntRange(0, secret-1)
	case models.SmallerThan:
		c.Value = secret + src.IntRange(1, rules.SmallerThanSpan)
	case models.ContainsDigit:
		d, err := Pick(src, Digits(secret))
		if err != nil {
			return models.Condition{}, fmt.Errorf("%s: %w", tmpl.Kind, err)
		}
		c.Value = d
	case models.SumOfDigits:
		c.Value = digitSum(secret)
	case models.HasFactor:
		f, err := Pick(src, divisors(secret))
		if err != nil {
			return models.Condition{}, fmt.Errorf("%s: %w", tmpl.Kind, err)
		}
		c.Value = f
	case models.HasMultiple:
		c.Value = secret * src.IntRange(1, rules.MaxMultiplier)
	case models.IsSquare:
		c.Flag = isSquare(secret)
	case models.IsCube:
		c.Flag = isCube(secret)
	case models.IsPalindrome:
		c.Flag = isPalindrome(secret)
	case models.DoesntContain:
		c.Digits = missingDigits(secret)
	case models.ContainsDigitAlliteration:
		c.Flag = hasRepeatedDigit(secret)
	default:
		return models.Condition{}, fmt.Errorf("%w: %q", ErrUnknownKind, tmpl.Kind)
	}

	if ok, err := Evaluate(c, secret); err != nil || !ok {
		return models.Condition{}, fmt.Errorf("%s does not hold for secret %d: %w", c.Kind, secret, ErrInvariantViolation)
	}
	return c, nil
}

// divisors returns every positive divisor of n in ascending order, or nil
// when n < 1.
func divisors(n int) []int {
	var small, large []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	slices.Reverse(large)
	return append(small, large...)
}

// missingDigits returns the digits 0-9 that do not occur in n, ascending.
func missingDigits(n int) []int {
	var present [10]bool
	for _, d := range Digits(n) {
		present[d] = true
	}
	out := []int{}
	for d, ok := range present {
		if !ok {
			out = append(out, d)
		}
	}
	return out
}
