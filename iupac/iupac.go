// SPDX-License-Identifier: MIT
// Package: motifguard/iupac
//
// iupac.go — nucleotide alphabet, complement map and ambiguity table.
//
// Design:
//   • Base is a dense index 0..3 in the canonical order A, C, G, T.
//   • Code is a 4-bit set of bases; bit i set iff Base(i) is matched.
//   • The empty Code is a legal motif position that matches nothing
//     (spelled '-'), used for motifs that forbid no pattern at all.
//   • All tables are read-only package values shared by every build.

package iupac

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for motif parsing.
var (
	// ErrEmptyMotif indicates a zero-length motif.
	ErrEmptyMotif = errors.New("iupac: motif is empty")

	// ErrInvalidCode indicates a character outside the ambiguity table.
	ErrInvalidCode = errors.New("iupac: invalid IUPAC code")
)

// Base is one concrete nucleotide.
type Base int8

// Concrete bases in canonical enumeration order.
const (
	A Base = iota
	C
	G
	T
)

// None marks "no previous base" in repeat-tracking tuples.
const None Base = -1

// NumBases is the alphabet size.
const NumBases = 4

// NoMatch is the code character that matches no base.
const NoMatch byte = '-'

// Alphabet lists the concrete bases in canonical order. Transition
// tables are always emitted in this order.
var Alphabet = [NumBases]Base{A, C, G, T}

const baseLetters = "ACGT"

// Byte returns the upper-case letter of b, or '?' for None.
func (b Base) Byte() byte {
	if b < A || b > T {
		return '?'
	}
	return baseLetters[b]
}

// String implements fmt.Stringer.
func (b Base) String() string {
	if b == None {
		return "none"
	}
	return string(b.Byte())
}

// Complement returns the Watson–Crick partner of b (A↔T, C↔G).
// None maps to None.
func Complement(b Base) Base {
	if b == None {
		return None
	}
	return T - b
}

// ParseBase converts a letter (either case) to a Base.
func ParseBase(c byte) (Base, bool) {
	switch c {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	}
	return None, false
}

// Code is the set of bases matched by one IUPAC symbol.
type Code uint8

// 4-bit mask per code
var codeMap = map[byte]Code{
	'A': 1 << A,
	'C': 1 << C,
	'G': 1 << G,
	'T': 1 << T,
	'W': 1<<A | 1<<T,
	'S': 1<<C | 1<<G,
	'M': 1<<A | 1<<C,
	'K': 1<<G | 1<<T,
	'R': 1<<A | 1<<G,
	'Y': 1<<C | 1<<T,
	'B': 1<<C | 1<<G | 1<<T,
	'D': 1<<A | 1<<G | 1<<T,
	'H': 1<<A | 1<<C | 1<<T,
	'V': 1<<A | 1<<C | 1<<G,
	'N': 1<<A | 1<<C | 1<<G | 1<<T,

	NoMatch: 0,
}

// ParseCode returns the base set denoted by c. Lower case is folded.
func ParseCode(c byte) (Code, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	m, ok := codeMap[c]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidCode, c)
	}
	return m, nil
}

// Has reports whether b is a member of the code's expansion.
func (c Code) Has(b Base) bool {
	if b < A || b > T {
		return false
	}
	return c&(1<<b) != 0
}

// Complement returns the code matching the complements of c's bases.
func (c Code) Complement() Code {
	var out Code
	for _, b := range Alphabet {
		if c.Has(b) {
			out |= 1 << Complement(b)
		}
	}
	return out
}

// Byte returns the canonical letter for c.
func (c Code) Byte() byte {
	for _, l := range []byte("ACGTWSMKRYBDHVN") {
		if codeMap[l] == c {
			return l
		}
	}
	return NoMatch
}

// Bases returns the expansion of c in canonical order.
func (c Code) Bases() []Base {
	out := make([]Base, 0, NumBases)
	for _, b := range Alphabet {
		if c.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

// Motif is an immutable sequence of IUPAC codes.
type Motif []Code

// ParseMotif validates s and converts it to a Motif.
// Returns ErrEmptyMotif or ErrInvalidCode (with position).
func ParseMotif(s string) (Motif, error) {
	if len(s) == 0 {
		return nil, ErrEmptyMotif
	}
	out := make(Motif, len(s))
	for i := 0; i < len(s); i++ {
		c, err := ParseCode(s[i])
		if err != nil {
			return nil, fmt.Errorf("%w at position %d of %q", err, i+1, s)
		}
		out[i] = c
	}
	return out, nil
}

// MustParseMotif is ParseMotif that panics on error. For fixtures.
func MustParseMotif(s string) Motif {
	m, err := ParseMotif(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of codes.
func (m Motif) Len() int { return len(m) }

// String renders the motif with canonical letters.
func (m Motif) String() string {
	var sb strings.Builder
	sb.Grow(len(m))
	for _, c := range m {
		sb.WriteByte(c.Byte())
	}
	return sb.String()
}

// ReverseComplement returns the motif as read on the opposite strand.
func (m Motif) ReverseComplement() Motif {
	out := make(Motif, len(m))
	for i, c := range m {
		out[len(m)-1-i] = c.Complement()
	}
	return out
}

// MatchesAt reports whether seq[i:i+len(m)] is matched by m.
// Non-ACGT characters in seq never match.
func (m Motif) MatchesAt(seq string, i int) bool {
	if i < 0 || i+len(m) > len(seq) {
		return false
	}
	for k, c := range m {
		b, ok := ParseBase(seq[i+k])
		if !ok || !c.Has(b) {
			return false
		}
	}
	return true
}

// Find returns the first position where m occurs in seq, or -1.
func (m Motif) Find(seq string) int {
	for i := 0; i+len(m) <= len(seq); i++ {
		if m.MatchesAt(seq, i) {
			return i
		}
	}
	return -1
}

// IsPalindrome reports whether m equals its own reverse complement.
func (m Motif) IsPalindrome() bool {
	rc := m.ReverseComplement()
	for i := range m {
		if m[i] != rc[i] {
			return false
		}
	}
	return true
}
