package roster

type NormalizeNamesInput struct {
	SourceSheet   string
	TargetSheet   string
	ExpectedCount int

	// DropLeadingRows and DropTrailingRows remove export artifacts from
	// either end of the raw name column before parsing. The Canvas export
	// opens with a second header-ish row and closes with a "Test Student"
	// row, so the CLI default is 1 for both.
	DropLeadingRows  int
	DropTrailingRows int
}

type NormalizeNamesResult struct {
	Sheet string
	Names []string
}
