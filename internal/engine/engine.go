package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tatianab/number-game/internal/models"
)

// Engine builds puzzle sessions from a set of rules.
type Engine struct {
	rules  models.Rules
	logger zerolog.Logger

	mu  sync.Mutex // guards src
	src Source
}

func NewEngine(rules models.Rules, src Source, logger zerolog.Logger) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return &Engine{
		rules:  rules,
		logger: logger,
		src:    src,
	}, nil
}

// Rules returns the rules the engine generates puzzles with.
func (e *Engine) Rules() models.Rules {
	return e.rules
}

// NewSession draws a secret and a shuffled condition pool from the engine's source.
func (e *Engine) NewSession(ctx context.Context) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.newSession(ctx, e.src)
}

// NewDailySession builds the puzzle shared by every player on the UTC day of t.
func (e *Engine) NewDailySession(ctx context.Context, salt string, t time.Time) (*Session, error) {
	s, err := e.newSession(ctx, NewDailySource(salt, t))
	if err != nil {
		return nil, err
	}
	s.logger = s.logger.With().Str("daily", DateKey(t)).Logger()
	return s, nil
}

func (e *Engine) newSession(ctx context.Context, src Source) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	secret := src.IntRange(e.rules.SecretMin, e.rules.SecretMax)
	return e.sessionFor(secret, src)
}

// sessionFor instantiates every configured kind against secret and shuffles
// the result into the unseen pile.
func (e *Engine) sessionFor(secret int, src Source) (*Session, error) {
	pool := make([]models.Condition, 0, len(e.rules.Kinds))
	for _, k := range e.rules.Kinds {
		c, err := Instantiate(models.Template(k), secret, e.rules, src)
		if err != nil {
			return nil, fmt.Errorf("failed to build puzzle: %w", err)
		}
		pool = append(pool, c)
	}
	Shuffle(src, pool)

	s := &Session{
		secret: secret,
		unseen: pool,
		seen:   make([]models.Condition, 0, len(pool)),
		logger: e.logger,
	}
	e.logger.Debug().Int("conditions", len(pool)).Msg("session created")
	return s, nil
}
