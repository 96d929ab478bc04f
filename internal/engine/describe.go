package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tatianab/number-game/internal/models"
)

// Describe renders a concrete condition as a sentence for the player.
func Describe(c models.Condition) string {
	switch c.Kind {
	case models.LargerThan:
		return fmt.Sprintf("the number must be larger than %d", c.Value)
	case models.SmallerThan:
		return fmt.Sprintf("the number must be smaller than %d", c.Value)
	case models.ContainsDigit:
		return fmt.Sprintf("the number must contain the digit %d", c.Value)
	case models.SumOfDigits:
		return fmt.Sprintf("the digits of the number must sum to %d", c.Value)
	case models.HasFactor:
		return fmt.Sprintf("the number must have the factor %d", c.Value)
	case models.HasMultiple:
		return fmt.Sprintf("the number must be a factor of %d", c.Value)
	case models.IsSquare:
		return fmt.Sprintf("the number must %sbe a square", negation(c.Flag))
	case models.IsCube:
		return fmt.Sprintf("the number must %sbe a cube", negation(c.Flag))
	case models.IsPalindrome:
		return fmt.Sprintf("the number must %sbe a palindrome", negation(c.Flag))
	case models.ContainsDigitAlliteration:
		return fmt.Sprintf("the number must %scontain the same digit twice in a row", negation(c.Flag))
	case models.DoesntContain:
		switch len(c.Digits) {
		case 0:
			return "the number has no excluded digits"
		case 1:
			return fmt.Sprintf("the number must not contain the digit %d", c.Digits[0])
		}
		parts := make([]string, len(c.Digits))
		for i, d := range c.Digits {
			parts[i] = strconv.Itoa(d)
		}
		return fmt.Sprintf("the number must not contain the digits %s", strings.Join(parts, ", "))
	default:
		panic(fmt.Sprintf("engine: cannot describe condition kind %q", c.Kind))
	}
}

func negation(flag bool) string {
	if flag {
		return ""
	}
	return "not "
}
