package pairing

import "github.com/vishnuv4/students-excel/internal/domain"

type GenerateRoundInput struct {
	NamesSheet  string
	TargetSheet string

	// Seed makes the shuffle reproducible; nil draws a random permutation.
	Seed *int64
}

type GeneratedRound struct {
	// RoundID is set when the round was recorded in the history archive,
	// empty otherwise.
	RoundID domain.RoundID
	Label   string
	Pairs   []domain.Pair
}

type CheckDuplicatesInput struct {
	Sheets []string
}

// Comparison reports one round-pair comparison. An empty Common slice is
// an explicit "no common pairs" result, not an omission.
type Comparison struct {
	RoundA string
	RoundB string
	Common []domain.Pair
}
