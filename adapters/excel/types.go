package excel

// Sheet names used by the ballot workbook format.
const (
	// BallotSheet holds the election: row 1 is the candidate universe in
	// spectrum order, every following row is one ballot ranked left to
	// right.
	BallotSheet = "Ballots"

	// Result workbook sheets.
	SummarySheet  = "Summary"
	PairwiseSheet = "Pairwise"
	ScoresSheet   = "Scores"
	TacticalSheet = "Tactical"
)
