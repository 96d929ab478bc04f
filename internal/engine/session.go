package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/tatianab/number-game/internal/models"
)

// ErrParse is returned when guess text is not a base-10 integer.
var ErrParse = errors.New("guess is not a number")

// Session is a single puzzle. It is not safe for concurrent use; callers
// must serialise OnGuess calls.
type Session struct {
	secret int
	unseen []models.Condition // revealed from the tail
	seen   []models.Condition // failing conditions first after each guess

	guess    int
	hasGuess bool

	logger zerolog.Logger
}

// ParseGuess strips whitespace from text and parses it as a signed base-10 integer.
func ParseGuess(text string) (int, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	return n, nil
}

// OnGuess handles a change of the player's input. When text does not parse,
// the error wraps ErrParse and the returned snapshot is the unchanged state
// from the previous guess; nothing is revealed or reordered.
func (s *Session) OnGuess(text string) (models.Snapshot, error) {
	n, err := ParseGuess(text)
	if err != nil {
		return s.Snapshot(), err
	}
	s.guess, s.hasGuess = n, true
	s.advance(n)
	return s.Snapshot(), nil
}

// advance reveals, reorders and logs a win for guess n.
func (s *Session) advance(n int) {
	for len(s.unseen) > 0 && allHold(s.seen, n) {
		last := len(s.unseen) - 1
		c := s.unseen[last]
		s.unseen = s.unseen[:last]
		s.seen = append(s.seen, c)
		s.logger.Debug().Str("kind", string(c.Kind)).Int("remaining", len(s.unseen)).Msg("condition revealed")
	}

	failing := make([]models.Condition, 0, len(s.seen))
	holding := make([]models.Condition, 0, len(s.seen))
	for _, c := range s.seen {
		if Holds(c, n) {
			holding = append(holding, c)
		} else {
			failing = append(failing, c)
		}
	}
	s.seen = append(failing, holding...)

	if s.won(n) {
		s.logger.Info().Int("guess", n).Int("conditions", len(s.seen)).Msg("puzzle solved")
	}
}

// Snapshot returns the visible state, evaluated against the last parsed
// guess or 0 before any guess.
func (s *Session) Snapshot() models.Snapshot {
	shown := make([]models.ShownCondition, len(s.seen))
	for i, c := range s.seen {
		shown[i] = models.ShownCondition{
			Condition: c,
			Text:      Describe(c),
			Satisfied: Holds(c, s.guess),
		}
	}
	return models.Snapshot{
		Guess:      s.guess,
		HasGuess:   s.hasGuess,
		Conditions: shown,
		Remaining:  len(s.unseen),
		Won:        s.hasGuess && s.won(s.guess),
	}
}

func (s *Session) won(n int) bool {
	return len(s.unseen) == 0 && allHold(s.seen, n)
}

func allHold(conds []models.Condition, n int) bool {
	for _, c := range conds {
		if !Holds(c, n) {
			return false
		}
	}
	return true
}
