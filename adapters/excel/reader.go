// Package excel is the analyst-facing file surface: it reads ballot
// workbooks into elections and writes analysis results back out. It handles
// both .xlsx workbooks and plain .csv files.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/domain/election"
)

// BallotReader reads an election from an .xlsx or .csv ballot file.
type BallotReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewBallotReader creates a reader; the format is inferred from the file
// extension.
func NewBallotReader(filePath string) *BallotReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &BallotReader{filePath: filePath, fileType: fileType}
}

// ReadElection parses the ballot file: the first row is the authoritative
// candidate universe, every following row is one ballot ranked left to
// right.
func (r *BallotReader) ReadElection() (*election.Election, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("ballot file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

func (r *BallotReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := BallotSheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		// Fall back to the first sheet for hand-made workbooks.
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func (r *BallotReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}

func parseRows(rows [][]string) (*election.Election, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("ballot file needs a candidate row and at least one ballot row")
	}

	candidates := make([]core.Candidate, 0, len(rows[0]))
	for _, cell := range rows[0] {
		c, err := core.ParseCandidate(strings.TrimSpace(cell))
		if err != nil {
			return nil, fmt.Errorf("candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}

	ballots := make([]ballot.Ballot, 0, len(rows)-1)
	for i, row := range rows[1:] {
		ranking := make([]core.Candidate, 0, len(row))
		for _, cell := range row {
			name := strings.TrimSpace(cell)
			if name == "" {
				continue
			}
			ranking = append(ranking, core.Candidate(name))
		}
		b, err := ballot.New(ranking)
		if err != nil {
			return nil, fmt.Errorf("ballot row %d: %w", i+2, err)
		}
		ballots = append(ballots, b)
	}

	return election.New(candidates, ballots)
}
