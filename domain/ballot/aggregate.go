package ballot

// VoterType is the equivalence class of voters sharing an identical ballot,
// with its multiplicity in the election.
type VoterType struct {
	Ballot Ballot
	Count  int
}

// AggregateTypes groups identical ballots into voter types. Types are
// returned in first-seen order so reports and sweeps are deterministic.
func AggregateTypes(ballots []Ballot) []VoterType {
	index := make(map[string]int, len(ballots))
	types := make([]VoterType, 0, len(ballots))

	for _, b := range ballots {
		if i, ok := index[b.Key()]; ok {
			types[i].Count++
			continue
		}
		index[b.Key()] = len(types)
		types = append(types, VoterType{Ballot: b, Count: 1})
	}
	return types
}

// CountOf returns how many ballots in the collection equal the given voter
// type.
func CountOf(ballots []Ballot, voterType Ballot) int {
	count := 0
	for _, b := range ballots {
		if b.Equal(voterType) {
			count++
		}
	}
	return count
}
