package engine

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Source supplies the randomness used to build a puzzle.
type Source interface {
	// IntRange returns a uniformly distributed integer in [lo, hi].
	// Precondition: lo <= hi.
	IntRange(lo, hi int) int
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("pick from empty choice set: %w", ErrInvariantViolation)
	}
	return items[src.IntRange(0, len(items)-1)], nil
}

// Shuffle permutes items in place with a Fisher-Yates shuffle.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntRange(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a PCG-backed Source. A seed of 0 draws a fresh seed
// from crypto/rand.
func NewRandSource(seed uint64) Source {
	if seed == 0 {
		seed = NewSeed()
	}
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSource) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// NewSeed returns a random non-zero seed.
func NewSeed() uint64 {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return uint64(time.Now().UnixNano())
		}
		if seed := binary.LittleEndian.Uint64(b[:]); seed != 0 {
			return seed
		}
	}
}

// hmacSource is a deterministic byte stream built from HMAC-SHA256 rounds
// over "message:round".
type hmacSource struct {
	key     []byte
	message string
	round   uint64
	pos     int
	buffer  [sha256.Size]byte
}

// NewHMACSource returns a deterministic Source: the same key and message
// always yield the same sequence.
func NewHMACSource(key, message string) Source {
	s := &hmacSource{key: []byte(key), message: message}
	s.generateRound()
	return s
}

// NewDailySource returns the Source for the daily puzzle of the UTC day containing t.
func NewDailySource(salt string, t time.Time) Source {
	return NewHMACSource(salt, DateKey(t))
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func (s *hmacSource) generateRound() {
	h := hmac.New(sha256.New, s.key)
	fmt.Fprintf(h, "%s:%d", s.message, s.round)
	copy(s.buffer[:], h.Sum(nil))
	s.pos = 0
}

func (s *hmacSource) next() byte {
	if s.pos >= len(s.buffer) {
		s.round++
		s.generateRound()
	}
	b := s.buffer[s.pos]
	s.pos++
	return b
}

func (s *hmacSource) nextUint64() uint64 {
	var b [8]byte
	for i := range b {
		b[i] = s.next()
	}
	return binary.BigEndian.Uint64(b[:])
}

func (s *hmacSource) IntRange(lo, hi int) int {
	n := uint64(hi-lo) + 1
	// Reject the tail of the uint64 range so the modulus stays uniform.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		if v := s.nextUint64(); v < limit {
			return lo + int(v%n)
		}
	}
}
