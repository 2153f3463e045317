package domain

// RoundID is an internal identifier for an archived pairing round.
type RoundID string
