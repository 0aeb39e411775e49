// Package report renders analyses and tactical sweeps into Markdown, with
// an optional HTML rendering for sharing.
package report

import (
	"fmt"
	"strings"

	"goelect/app"
	"goelect/domain/core"
)

// Markdown renders the full analyst report. A nil sweep omits the tactical
// section.
func Markdown(analysis *app.Analysis, sweep *app.SweepResult) string {
	var b strings.Builder

	b.WriteString("# Election analysis\n\n")
	fmt.Fprintf(&b, "- Ballots: %d\n", analysis.NumBallots)
	fmt.Fprintf(&b, "- Candidates: %s\n", joinCandidates(analysis.Candidates, ", "))
	fmt.Fprintf(&b, "- Fingerprint: `%s`\n", analysis.Fingerprint)
	fmt.Fprintf(&b, "- Closeness: %s (mean margin %.2f, %.0f%% of matchups decisive)\n\n",
		analysis.Brief.Closeness, analysis.Brief.MeanMargin, analysis.Brief.DecisiveShare*100)

	b.WriteString("## Condorcet\n\n")
	if analysis.CondorcetWinner != nil {
		fmt.Fprintf(&b, "Condorcet winner: **%s** — preferred by a majority over every other candidate.\n\n", *analysis.CondorcetWinner)
	} else {
		b.WriteString("No Condorcet winner: the electorate's majority preferences cycle.\n\n")
	}

	b.WriteString("## Head-to-head\n\n")
	b.WriteString("| Preferred | Over | For | Against |\n|---|---|---:|---:|\n")
	for _, hh := range analysis.Matchups {
		fmt.Fprintf(&b, "| %s | %s | %d | %d |\n", hh.A, hh.B, hh.For, hh.Against)
	}
	b.WriteString("\n")

	b.WriteString("## Rule results\n\n")
	for _, result := range analysis.Results {
		fmt.Fprintf(&b, "### %s\n\n", result.RuleName)
		fmt.Fprintf(&b, "Winners: **%s**\n\n", joinCandidates(result.Winners, ", "))
		b.WriteString("| Candidate | Score |\n|---|---:|\n")
		for _, c := range analysis.Candidates {
			fmt.Fprintf(&b, "| %s | %s |\n", c, formatScore(result.Scores[c]))
		}
		b.WriteString("\n")
	}

	if sweep != nil {
		writeTacticalSection(&b, sweep)
	}

	return b.String()
}

func writeTacticalSection(b *strings.Builder, sweep *app.SweepResult) {
	b.WriteString("## Tactical voting\n\n")
	if len(sweep.Opportunities) == 0 {
		b.WriteString("No tactical voting opportunities found for any voter type; " +
			"the evaluated rules appear strategy-proof on this electorate.\n")
		return
	}

	fmt.Fprintf(b, "%d opportunity(ies) found.\n\n", len(sweep.Opportunities))
	b.WriteString("| Rule | Voter type | Voters | Reported ranking | New winners | Benefit |\n|---|---|---:|---|---|---|\n")
	for _, opp := range sweep.Opportunities {
		fmt.Fprintf(b, "| %s | %s | %d | %s | %s | %s |\n",
			opp.RuleName,
			joinCandidates(opp.TrueRanking, " > "),
			opp.VoterCount,
			joinCandidates(opp.Alternative, " > "),
			joinCandidates(opp.NewWinners, ", "),
			opp.Benefit)
	}
}

// formatScore renders integral scores without a decimal point and Copeland
// half-points with one.
func formatScore(s float64) string {
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}
	return fmt.Sprintf("%.1f", s)
}

func joinCandidates(candidates []core.Candidate, sep string) string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.String()
	}
	return strings.Join(names, sep)
}
