package shuffle

// Shuffler produces unbiased random permutations.
// Using an interface enables deterministic tests via a controllable
// implementation, mirroring the clock port.
type Shuffler interface {
	// Shuffle permutes names in place. A nil seed draws from a
	// nondeterministic source; the same non-nil seed always yields the
	// same permutation.
	Shuffle(names []string, seed *int64)
}
