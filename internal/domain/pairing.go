package domain

import "errors"

// Placeholder pads an odd-sized roster so every pair has two slots. It is
// never a real student and never participates in duplicate reports.
const Placeholder = ""

// ErrEmptyRoster rejects round generation over zero names.
var ErrEmptyRoster = errors.New("empty roster: nothing to pair")

// Pair is an unordered grouping of two student names. One side holds the
// placeholder when the roster was odd-sized.
type Pair struct {
	A string
	B string
}

// Key returns an order-independent identity for the pair, so that
// ("Jane Doe","Bob Smith") and ("Bob Smith","Jane Doe") compare equal.
func (p Pair) Key() string {
	if p.B < p.A {
		return p.B + "\x00" + p.A
	}
	return p.A + "\x00" + p.B
}

// HasPlaceholder reports whether either slot is the padding sentinel.
func (p Pair) HasPlaceholder() bool {
	return p.A == Placeholder || p.B == Placeholder
}

// BuildRound partitions a roster into pairs: odd rosters are padded with
// the placeholder, the padded roster is permuted by shuffleFn, and the
// result is split into consecutive pairs (0,1), (2,3), and so on. The
// input slice is never mutated; a nil shuffleFn keeps the input order.
func BuildRound(roster []string, shuffleFn func([]string)) ([]Pair, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	padded := append([]string(nil), roster...)
	if len(padded)%2 != 0 {
		padded = append(padded, Placeholder)
	}
	if shuffleFn != nil {
		shuffleFn(padded)
	}
	pairs := make([]Pair, 0, len(padded)/2)
	for i := 0; i < len(padded); i += 2 {
		pairs = append(pairs, Pair{A: padded[i], B: padded[i+1]})
	}
	return pairs, nil
}

// CommonPairs returns the pairs present in both rounds, compared
// order-independently. Placeholder pairs are excluded: two odd rosters
// always share the sentinel, and that is not a repeated partnership.
func CommonPairs(a, b []Pair) []Pair {
	inB := make(map[string]bool, len(b))
	for _, p := range b {
		inB[p.Key()] = true
	}
	common := make([]Pair, 0)
	seen := make(map[string]bool, len(a))
	for _, p := range a {
		if p.HasPlaceholder() {
			continue
		}
		k := p.Key()
		if inB[k] && !seen[k] {
			seen[k] = true
			common = append(common, p)
		}
	}
	return common
}
