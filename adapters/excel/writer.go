package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"goelect/app"
	"goelect/domain/core"
	"goelect/domain/election"
)

// ResultWriter renders analyses and tactical sweeps into an .xlsx workbook
// for the analyst.
type ResultWriter struct {
	filePath string
}

// NewResultWriter creates a writer targeting the given path.
func NewResultWriter(filePath string) *ResultWriter {
	return &ResultWriter{filePath: filePath}
}

// WriteAnalysis writes the summary, pairwise matrix and per-rule score
// sheets. A non-nil sweep adds the tactical opportunities sheet.
func (w *ResultWriter) WriteAnalysis(analysis *app.Analysis, sweep *app.SweepResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, analysis); err != nil {
		return err
	}
	if err := w.writePairwise(f, analysis); err != nil {
		return err
	}
	if err := w.writeScores(f, analysis); err != nil {
		return err
	}
	if sweep != nil {
		if err := w.writeTactical(f, sweep); err != nil {
			return err
		}
	}

	// Drop the default sheet created by excelize.
	f.DeleteSheet(f.GetSheetName(0))

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteBallots writes an election in the ballot workbook format, so
// generated electorates can round-trip through BallotReader.
func (w *ResultWriter) WriteBallots(e *election.Election) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(BallotSheet); err != nil {
		return err
	}

	row := make([]interface{}, 0, e.NumCandidates())
	for _, c := range e.Candidates() {
		row = append(row, c.String())
	}
	if err := f.SetSheetRow(BallotSheet, "A1", &row); err != nil {
		return err
	}

	for i, b := range e.Ballots() {
		row = row[:0]
		for _, c := range b.Ranking() {
			row = append(row, c.String())
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(BallotSheet, cell, &row); err != nil {
			return err
		}
	}

	f.DeleteSheet(f.GetSheetName(0))
	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save ballot workbook: %w", err)
	}
	return nil
}

func (w *ResultWriter) writeSummary(f *excelize.File, analysis *app.Analysis) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	condorcet := "none (majority cycle)"
	if analysis.CondorcetWinner != nil {
		condorcet = analysis.CondorcetWinner.String()
	}

	rows := [][]interface{}{
		{"Analysis ID", analysis.AnalysisID.String()},
		{"Election fingerprint", analysis.Fingerprint.String()},
		{"Ballots", analysis.NumBallots},
		{"Candidates", len(analysis.Candidates)},
		{"Condorcet winner", condorcet},
		{"Closeness", analysis.Brief.Closeness},
		{"Mean margin", analysis.Brief.MeanMargin},
		{"Decisive matchup share", analysis.Brief.DecisiveShare},
	}
	return writeSheetRows(f, SummarySheet, rows)
}

func (w *ResultWriter) writePairwise(f *excelize.File, analysis *app.Analysis) error {
	if _, err := f.NewSheet(PairwiseSheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Preferred", "Over", "Voters for", "Voters against"}}
	for _, hh := range analysis.Matchups {
		rows = append(rows, []interface{}{hh.A.String(), hh.B.String(), hh.For, hh.Against})
	}
	return writeSheetRows(f, PairwiseSheet, rows)
}

func (w *ResultWriter) writeScores(f *excelize.File, analysis *app.Analysis) error {
	if _, err := f.NewSheet(ScoresSheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Rule", "Candidate", "Score", "Winner"}}
	for _, result := range analysis.Results {
		for _, c := range analysis.Candidates {
			rows = append(rows, []interface{}{result.RuleName, c.String(), result.Scores[c], result.IsWinner(c)})
		}
	}
	return writeSheetRows(f, ScoresSheet, rows)
}

func (w *ResultWriter) writeTactical(f *excelize.File, sweep *app.SweepResult) error {
	if _, err := f.NewSheet(TacticalSheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Rule", "Voter type", "Voters", "Honest winners", "Reported ranking", "New winners", "Benefit"}}
	for _, opp := range sweep.Opportunities {
		rows = append(rows, []interface{}{
			opp.RuleName,
			joinCandidates(opp.TrueRanking, " > "),
			opp.VoterCount,
			joinCandidates(opp.HonestWinners, ", "),
			joinCandidates(opp.Alternative, " > "),
			joinCandidates(opp.NewWinners, ", "),
			opp.Benefit,
		})
	}
	return writeSheetRows(f, TacticalSheet, rows)
}

func joinCandidates(candidates []core.Candidate, sep string) string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.String()
	}
	return strings.Join(names, sep)
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
