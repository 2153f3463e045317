package shuffle

import (
	"sort"
	"testing"
)

func TestMathShuffler_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	seed := int64(42)
	a := []string{"Jane Doe", "Bob Smith", "Alice Lee", "Sam Kim", "Tom Fox"}
	b := append([]string(nil), a...)

	s := NewMathShuffler()
	s.Shuffle(a, &seed)
	NewMathShuffler().Shuffle(b, &seed)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded shuffles diverge at %d: %v vs %v", i, a, b)
		}
	}
}

func TestMathShuffler_IsPermutation(t *testing.T) {
	t.Parallel()

	in := []string{"Jane Doe", "Bob Smith", "Alice Lee", "Sam Kim"}
	got := append([]string(nil), in...)
	NewMathShuffler().Shuffle(got, nil)

	sortedIn := append([]string(nil), in...)
	sortedGot := append([]string(nil), got...)
	sort.Strings(sortedIn)
	sort.Strings(sortedGot)
	for i := range sortedIn {
		if sortedIn[i] != sortedGot[i] {
			t.Fatalf("shuffle is not a permutation: %v -> %v", in, got)
		}
	}
}
