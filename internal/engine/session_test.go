package engine

import (
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/number-game/internal/models"
)

func TestParseGuess(t *testing.T) {
	valid := map[string]int{
		"144":     144,
		" 1 4 4 ": 144,
		"-12":     -12,
		"+7":      7,
		"\t9 9\n": 99,
		"0":       0,
		"00012":   12,
	}
	for in, want := range valid {
		got, err := ParseGuess(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, want, got, "%q", in)
	}

	for _, in := range []string{"", "  ", "abc", "12a", "1.5", "0x10", "99999999999999999999"} {
		_, err := ParseGuess(in)
		assert.ErrorIs(t, err, ErrParse, "%q", in)
	}
}

func TestSecret144Scenario(t *testing.T) {
	eng := newTestEngine(t, models.DefaultRules())
	s, err := eng.sessionFor(144, minSource{})
	require.NoError(t, err)

	pool := map[models.Kind]models.Condition{}
	for _, c := range s.unseen {
		pool[c.Kind] = c
	}
	assert.True(t, pool[models.IsSquare].Flag)
	assert.Equal(t, 9, pool[models.SumOfDigits].Value)
	assert.Less(t, pool[models.LargerThan].Value, 144)

	snap, err := s.OnGuess("abc")
	assert.ErrorIs(t, err, ErrParse)
	assert.Empty(t, snap.Conditions)
	assert.False(t, snap.HasGuess)
	assert.Equal(t, len(models.AllKinds()), snap.Remaining)

	snap, err = s.OnGuess("144")
	require.NoError(t, err)
	assert.True(t, snap.Won)
	assert.Zero(t, snap.Remaining)
	assert.Len(t, snap.Conditions, len(models.AllKinds()))
	for _, sc := range snap.Conditions {
		assert.True(t, sc.Satisfied, sc.Text)
		assert.Equal(t, Describe(sc.Condition), sc.Text)
	}
}

func TestSecret100ReorderWithoutReveal(t *testing.T) {
	larger := models.Condition{Kind: models.LargerThan, Value: 50}
	sum := models.Condition{Kind: models.SumOfDigits, Value: 1}
	square := models.Condition{Kind: models.IsSquare, Flag: true}
	s := &Session{
		secret: 100,
		unseen: []models.Condition{square},
		seen:   []models.Condition{larger, sum},
		logger: zerolog.Nop(),
	}

	snap, err := s.OnGuess("60")
	require.NoError(t, err)
	assert.Equal(t, []models.Condition{sum, larger}, s.seen)
	assert.Len(t, s.unseen, 1)
	assert.False(t, snap.Won)
	require.Len(t, snap.Conditions, 2)
	assert.False(t, snap.Conditions[0].Satisfied)
	assert.True(t, snap.Conditions[1].Satisfied)
}

func TestStablePartition(t *testing.T) {
	a := models.Condition{Kind: models.LargerThan, Value: 10}    // holds for 50
	b := models.Condition{Kind: models.SmallerThan, Value: 20}   // fails
	c := models.Condition{Kind: models.ContainsDigit, Value: 5}  // holds
	d := models.Condition{Kind: models.HasFactor, Value: 7}      // fails
	e := models.Condition{Kind: models.IsSquare, Flag: false}    // holds
	f := models.Condition{Kind: models.IsPalindrome, Flag: true} // fails
	s := &Session{
		secret: 100,
		seen:   []models.Condition{a, b, c, d, e, f},
		logger: zerolog.Nop(),
	}

	_, err := s.OnGuess("50")
	require.NoError(t, err)
	assert.Equal(t, []models.Condition{b, d, f, a, c, e}, s.seen)

	// For 14 only f and c fail; both groups keep their previous order.
	_, err = s.OnGuess("14")
	require.NoError(t, err)
	assert.Equal(t, []models.Condition{f, c, b, d, a, e}, s.seen)
}

func TestRevealStopsAtFirstFailure(t *testing.T) {
	first := models.Condition{Kind: models.LargerThan, Value: 1000}
	second := models.Condition{Kind: models.SmallerThan, Value: 5000}
	third := models.Condition{Kind: models.IsSquare, Flag: true}
	s := &Session{
		secret: 1024,
		// Popped from the tail: first, second, third.
		unseen: []models.Condition{third, second, first},
		logger: zerolog.Nop(),
	}

	// 5 fails the first revealed condition so nothing else is shown.
	snap, err := s.OnGuess("5")
	require.NoError(t, err)
	assert.Equal(t, []models.Condition{first}, s.seen)
	assert.Equal(t, 2, snap.Remaining)

	// 6000 passes "larger than 1000" and reveals "smaller than 5000", which fails.
	_, err = s.OnGuess("6000")
	require.NoError(t, err)
	assert.Equal(t, []models.Condition{second, first}, s.seen)
	assert.Len(t, s.unseen, 1)

	// A failing guess never un-reveals.
	_, err = s.OnGuess("1")
	require.NoError(t, err)
	assert.Len(t, s.seen, 2)

	snap, err = s.OnGuess("1024")
	require.NoError(t, err)
	assert.True(t, snap.Won)
	assert.Len(t, s.seen, 3)
}

func TestParseFailureKeepsState(t *testing.T) {
	eng := newTestEngine(t, models.DefaultRules())
	s, err := eng.sessionFor(2024, NewRandSource(11))
	require.NoError(t, err)

	before, err := s.OnGuess("500")
	require.NoError(t, err)
	seen := append([]models.Condition(nil), s.seen...)
	unseen := len(s.unseen)

	after, err := s.OnGuess("5x0")
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, before, after)
	assert.Equal(t, seen, s.seen)
	assert.Equal(t, unseen, len(s.unseen))
	assert.Equal(t, 500, after.Guess)
}

func TestSessionInvariantsOverRandomPlay(t *testing.T) {
	eng := newTestEngine(t, models.DefaultRules())
	guesses := NewRandSource(1234)

	for seed := uint64(1); seed <= 20; seed++ {
		s, err := eng.sessionFor(NewRandSource(seed).IntRange(100, 9999), NewRandSource(seed))
		require.NoError(t, err)
		total := len(s.unseen)

		prev := []models.Condition{}
		for i := 0; i < 60; i++ {
			g := guesses.IntRange(-50, 10050)
			if i%10 == 9 {
				g = s.secret
			}
			snap, err := s.OnGuess(strconv.Itoa(g))
			require.NoError(t, err)

			assert.Equal(t, total, len(s.seen)+len(s.unseen))
			assert.GreaterOrEqual(t, len(s.seen), len(prev))
			for _, c := range prev {
				assert.Contains(t, s.seen, c)
			}
			prev = append(prev[:0:0], s.seen...)

			failingDone := false
			for _, sc := range snap.Conditions {
				if sc.Satisfied {
					failingDone = true
				} else {
					assert.False(t, failingDone, "failing condition after a holding one")
				}
			}

			want := len(s.unseen) == 0 && allHold(s.seen, g)
			assert.Equal(t, want, snap.Won)
		}
	}
}

func TestBruteForceSolverWins(t *testing.T) {
	rules := models.DefaultRules()
	eng := newTestEngine(t, rules)

	for i := 0; i < 10; i++ {
		s, err := eng.NewSession(t.Context())
		require.NoError(t, err)

		snap := s.Snapshot()
		turns := 0
		for !snap.Won {
			turns++
			require.LessOrEqual(t, turns, len(rules.Kinds)+1, "solver should win within one guess per condition")
			guess, ok := Solve(rules.SecretMin, rules.SecretMax, Revealed(snap))
			require.True(t, ok)
			snap, err = s.OnGuess(strconv.Itoa(guess))
			require.NoError(t, err)
		}
		assert.Zero(t, snap.Remaining)
	}
}

func TestSolve(t *testing.T) {
	conds := []models.Condition{
		{Kind: models.LargerThan, Value: 120},
		{Kind: models.IsSquare, Flag: true},
	}
	n, ok := Solve(100, 9999, conds)
	require.True(t, ok)
	assert.Equal(t, 121, n)

	_, ok = Solve(100, 110, conds)
	assert.False(t, ok)

	n, ok = Solve(100, 9999, nil)
	require.True(t, ok)
	assert.Equal(t, 100, n)
}
