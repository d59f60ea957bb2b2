package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// markers indexed by Flag; NoMatch positions are omitted.
var markers = [4]byte{0, 'f', 'r', 'b'}

// matchID concatenates "<marker><k>" for every flagged position in
// ascending k, e.g. "f1b3".
func matchID(t Tuple) string {
	var sb strings.Builder
	for k := 1; k <= t.Longest(); k++ {
		f := t.At(k)
		if f == NoMatch {
			continue
		}
		sb.WriteByte(markers[f])
		sb.WriteString(strconv.Itoa(k))
	}
	return sb.String()
}

// parseMatch is the inverse of matchID for a motif of length n.
// Positions must be strictly ascending, in 1..n-1, without leading
// zeros, so that every tuple has exactly one spelling.
func parseMatch(s string, n int) (Tuple, error) {
	var t Tuple
	last := 0
	for i := 0; i < len(s); {
		var f Flag
		switch s[i] {
		case 'f':
			f = ForwardOnly
		case 'r':
			f = ReverseOnly
		case 'b':
			f = Both
		default:
			return Tuple{}, fmt.Errorf("%w: %q: unexpected %q", ErrBadID, s, s[i])
		}
		i++
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i || s[i] == '0' {
			return Tuple{}, fmt.Errorf("%w: %q: bad position", ErrBadID, s)
		}
		k, err := strconv.Atoi(s[i:j])
		if err != nil || k <= last || k > n-1 {
			return Tuple{}, fmt.Errorf("%w: %q: position out of order or range", ErrBadID, s)
		}
		t = t.With(k, f)
		last = k
		i = j
	}
	return t, nil
}
