package progress

import (
	"fmt"

	"github.com/katalvlaran/motifguard/iupac"
)

// Encoder steps match-only tuples for a fixed motif and strand mode.
// It implements Stepper[Tuple] and is safe for concurrent use.
//
// Successor is computed bit-parallel: the "previous step" vector is the
// stored tuple shifted up one position with the seed flag in position 0,
// and each strand is ANDed with a per-base mask of motif positions that
// accept that base. Bit L-1 of the result is a full-length match.
type Encoder struct {
	motif       iupac.Motif
	forwardOnly bool

	// fwdMask[b] bit p: motif[p] accepts b.
	fwdMask [iupac.NumBases]uint64
	// revMask[b] bit p: motif[L-1-p] accepts complement(b).
	revMask [iupac.NumBases]uint64

	keep uint64 // bits 0..L-2, the stored positions
	full uint64 // bit L-1
}

// NewEncoder prepares the successor masks for m.
// Returns iupac.ErrEmptyMotif or ErrMotifTooLong.
func NewEncoder(m iupac.Motif, forwardOnly bool) (*Encoder, error) {
	n := len(m)
	if n == 0 {
		return nil, iupac.ErrEmptyMotif
	}
	if n > MaxMotifLen {
		return nil, fmt.Errorf("%w: %d codes (max %d)", ErrMotifTooLong, n, MaxMotifLen)
	}
	e := &Encoder{
		motif:       append(iupac.Motif(nil), m...),
		forwardOnly: forwardOnly,
		full:        uint64(1) << (n - 1),
	}
	e.keep = e.full - 1
	for _, b := range iupac.Alphabet {
		for p := 0; p < n; p++ {
			if m[p].Has(b) {
				e.fwdMask[b] |= 1 << p
			}
			if m[n-1-p].Has(iupac.Complement(b)) {
				e.revMask[b] |= 1 << p
			}
		}
	}
	return e, nil
}

// Motif returns a copy of the motif.
func (e *Encoder) Motif() iupac.Motif { return append(iupac.Motif(nil), e.motif...) }

// Len returns the motif length L.
func (e *Encoder) Len() int { return len(e.motif) }

// ForwardOnly reports whether the reverse strand is ignored.
func (e *Encoder) ForwardOnly() bool { return e.forwardOnly }

// Initial returns the empty match vector.
func (e *Encoder) Initial() Tuple { return Tuple{} }

// Seed is the flag of the implicit length-0 position: both strands
// trivially match the empty prefix, unless only the forward strand is
// checked.
func (e *Encoder) Seed() Flag {
	if e.forwardOnly {
		return ForwardOnly
	}
	return Both
}

// Successor consumes b from t. It reports ok=false if b would complete
// an occurrence on a checked strand.
func (e *Encoder) Successor(t Tuple, b iupac.Base) (Tuple, bool) {
	if b < iupac.A || b > iupac.T {
		return Tuple{}, false
	}
	seed := e.Seed()
	prevF := t.fwd << 1
	if seed.Forward() {
		prevF |= 1
	}
	prevR := t.rev << 1
	if seed.Reverse() {
		prevR |= 1
	}
	candF := prevF & e.fwdMask[b]
	candR := prevR & e.revMask[b]
	if (candF|candR)&e.full != 0 {
		return Tuple{}, false
	}
	return Tuple{fwd: candF & e.keep, rev: candR & e.keep}, true
}

// ID returns the canonical identifier, "start" for the empty vector.
func (e *Encoder) ID(t Tuple) string {
	if t.IsZero() {
		return StartID
	}
	return matchID(t)
}

// Parse decodes an ID produced by ID.
func (e *Encoder) Parse(id string) (Tuple, error) {
	if id == StartID {
		return Tuple{}, nil
	}
	if id == "" {
		return Tuple{}, ErrBadID
	}
	return parseMatch(id, e.Len())
}

// RepeatEncoder extends Encoder with the previous base, forbidding
// immediate repetition. It implements Stepper[RepeatTuple].
type RepeatEncoder struct {
	enc *Encoder
}

// NewRepeatEncoder wraps enc.
func NewRepeatEncoder(enc *Encoder) *RepeatEncoder {
	return &RepeatEncoder{enc: enc}
}

// Encoder returns the wrapped match-only encoder.
func (r *RepeatEncoder) Encoder() *Encoder { return r.enc }

// Initial returns the empty vector with no previous base.
func (r *RepeatEncoder) Initial() RepeatTuple {
	return RepeatTuple{Prev: iupac.None}
}

// Successor applies the motif check first, then the repeat check.
func (r *RepeatEncoder) Successor(t RepeatTuple, b iupac.Base) (RepeatTuple, bool) {
	next, ok := r.enc.Successor(t.Tuple, b)
	if !ok {
		return RepeatTuple{}, false
	}
	if b == t.Prev {
		return RepeatTuple{}, false
	}
	return RepeatTuple{Prev: b, Tuple: next}, true
}

// ID prefixes the match markers with the previous base letter.
func (r *RepeatEncoder) ID(t RepeatTuple) string {
	if t.Prev == iupac.None {
		return r.enc.ID(t.Tuple)
	}
	return string(t.Prev.Byte()) + matchID(t.Tuple)
}

// Parse decodes an ID produced by ID.
func (r *RepeatEncoder) Parse(id string) (RepeatTuple, error) {
	if id == "" {
		return RepeatTuple{}, ErrBadID
	}
	if b, ok := iupac.ParseBase(id[0]); ok && id[0] >= 'A' && id[0] <= 'Z' {
		if len(id) == 1 {
			return RepeatTuple{Prev: b}, nil
		}
		t, err := parseMatch(id[1:], r.enc.Len())
		if err != nil {
			return RepeatTuple{}, err
		}
		return RepeatTuple{Prev: b, Tuple: t}, nil
	}
	t, err := r.enc.Parse(id)
	if err != nil {
		return RepeatTuple{}, err
	}
	return RepeatTuple{Prev: iupac.None, Tuple: t}, nil
}

var (
	_ Stepper[Tuple]       = (*Encoder)(nil)
	_ Stepper[RepeatTuple] = (*RepeatEncoder)(nil)
)
