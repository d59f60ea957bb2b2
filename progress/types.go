// Package progress defines progress tuples, the bounded states of a
// motif-avoidance automaton, and the deterministic successor function
// over them.
//
// A tuple records, for every partial length k in 1..L-1, whether the
// last k emitted bases match the first k codes of the motif (forward
// strand) and/or the reverse complement of its last k codes (reverse
// strand). The repeat-tracking shape additionally remembers the last
// emitted base.
//
// Errors:
//
//	ErrMotifTooLong - motif exceeds MaxMotifLen codes.
//	ErrBadID        - Parse received a string that is not a canonical ID.
package progress

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/motifguard/iupac"
)

// Sentinel errors for tuple encoding.
var (
	// ErrMotifTooLong indicates a motif wider than the tuple bit-sets.
	ErrMotifTooLong = errors.New("progress: motif too long")

	// ErrBadID indicates a malformed canonical state ID.
	ErrBadID = errors.New("progress: malformed state ID")
)

// MaxMotifLen is the longest motif whose L-1 partial lengths fit the
// tuple bit-sets.
const MaxMotifLen = 64

// Canonical IDs of the two distinguished states.
const (
	StartID = "start"
	EndID   = "end"
)

// Flag is the per-position match status.
type Flag uint8

// Flag values. Both is ForwardOnly|ReverseOnly.
const (
	NoMatch     Flag = 0
	ForwardOnly Flag = 1
	ReverseOnly Flag = 2
	Both        Flag = ForwardOnly | ReverseOnly
)

// Forward reports whether the forward-strand bit is set.
func (f Flag) Forward() bool { return f&ForwardOnly != 0 }

// Reverse reports whether the reverse-strand bit is set.
func (f Flag) Reverse() bool { return f&ReverseOnly != 0 }

// String implements fmt.Stringer.
func (f Flag) String() string {
	switch f {
	case ForwardOnly:
		return "forward"
	case ReverseOnly:
		return "reverse"
	case Both:
		return "both"
	}
	return "none"
}

// Tuple is the match vector match[1..L-1]. Bit k-1 of fwd (rev) holds
// the forward (reverse) flag for partial length k. Tuple is comparable
// and is used directly as a deduplication key.
type Tuple struct {
	fwd, rev uint64
}

// At returns the flag for partial length k (1-based). Out-of-range k
// yields NoMatch.
func (t Tuple) At(k int) Flag {
	if k < 1 || k > MaxMotifLen-1 {
		return NoMatch
	}
	var f Flag
	if t.fwd>>(k-1)&1 != 0 {
		f |= ForwardOnly
	}
	if t.rev>>(k-1)&1 != 0 {
		f |= ReverseOnly
	}
	return f
}

// With returns a copy of t with position k set to f.
func (t Tuple) With(k int, f Flag) Tuple {
	if k < 1 || k > MaxMotifLen-1 {
		return t
	}
	bit := uint64(1) << (k - 1)
	t.fwd &^= bit
	t.rev &^= bit
	if f.Forward() {
		t.fwd |= bit
	}
	if f.Reverse() {
		t.rev |= bit
	}
	return t
}

// IsZero reports whether no position carries a match.
func (t Tuple) IsZero() bool { return t.fwd == 0 && t.rev == 0 }

// Longest returns the largest k with any flag set, or 0.
func (t Tuple) Longest() int { return bits.Len64(t.fwd | t.rev) }

// RepeatTuple is a Tuple plus the most recently emitted base.
// Prev is iupac.None only for the initial tuple.
type RepeatTuple struct {
	Prev iupac.Base
	Tuple
}

// Stepper is a tuple shape together with its successor function and
// canonical naming. Builders are generic over it so that the presence
// of the repeat field is decided once, at configuration time.
type Stepper[T comparable] interface {
	// Initial returns the tuple before any base is consumed.
	Initial() T
	// Successor consumes b. ok is false when the transition is invalid.
	Successor(t T, b iupac.Base) (next T, ok bool)
	// ID returns the canonical string identifier of t.
	ID(t T) string
	// Parse inverts ID.
	Parse(id string) (T, error)
}
