package models

// Kind names one of the closed set of condition kinds.
type Kind string

const (
	LargerThan                Kind = "larger_than"
	SmallerThan               Kind = "smaller_than"
	ContainsDigit             Kind = "contains_digit"
	SumOfDigits               Kind = "sum_of_digits"
	HasFactor                 Kind = "has_factor"
	HasMultiple               Kind = "has_multiple"
	IsSquare                  Kind = "is_square"
	IsCube                    Kind = "is_cube"
	IsPalindrome              Kind = "is_palindrome"
	DoesntContain             Kind = "doesnt_contain"
	ContainsDigitAlliteration Kind = "contains_digit_alliteration"
)

var allKinds = []Kind{
	LargerThan,
	SmallerThan,
	ContainsDigit,
	SumOfDigits,
	HasFactor,
	HasMultiple,
	IsSquare,
	IsCube,
	IsPalindrome,
	DoesntContain,
	ContainsDigitAlliteration,
}

// AllKinds returns every supported kind in pool order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Condition is a constraint on the secret number. Which payload field is
// meaningful depends on Kind:
//   - Value: LargerThan, SmallerThan, ContainsDigit, SumOfDigits, HasFactor, HasMultiple
//   - Flag: IsSquare, IsCube, IsPalindrome, ContainsDigitAlliteration
//   - Digits: DoesntContain
type Condition struct {
	Kind   Kind  `yaml:"kind" json:"kind"`
	Value  int   `yaml:"value,omitempty" json:"value,omitempty"`
	Flag   bool  `yaml:"flag,omitempty" json:"flag,omitempty"`
	Digits []int `yaml:"digits,omitempty" json:"digits,omitempty"`
}

// Template returns a placeholder condition of the given kind. Templates are
// only meant to be instantiated against a secret, never evaluated.
func Template(k Kind) Condition {
	return Condition{Kind: k}
}

// ShownCondition is a revealed condition as presented to the player.
type ShownCondition struct {
	Condition Condition `yaml:"condition" json:"condition"`
	Text      string    `yaml:"text" json:"text"`
	Satisfied bool      `yaml:"satisfied" json:"satisfied"`
}

// Snapshot is the visible state of a session after a guess.
type Snapshot struct {
	Guess      int              `yaml:"guess" json:"guess"`
	HasGuess   bool             `yaml:"has_guess" json:"hasGuess"`
	Conditions []ShownCondition `yaml:"conditions" json:"conditions"`
	Remaining  int              `yaml:"remaining" json:"remaining"` // conditions not yet revealed
	Won        bool             `yaml:"won" json:"won"`
}
