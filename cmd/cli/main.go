package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"goelect/adapters/ballotgen"
	"goelect/adapters/excel"
	"goelect/adapters/report"
	"goelect/adapters/rules"
	"goelect/app"
	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/internal"
	"goelect/internal/config"
	"goelect/internal/testkit"
	"goelect/ports"
)

func main() {
	// Local .env keeps per-project defaults next to the ballot files.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel), "cli")

	rootCmd := &cobra.Command{
		Use:   "goelect",
		Short: "Ranked-ballot election analysis: Copeland, Borda, Schulze and tactical voting",
	}

	rootCmd.AddCommand(
		newTallyCmd(cfg, logger),
		newTacticalCmd(cfg, logger),
		newGenerateCmd(cfg, logger),
		newDemoCmd(logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTallyCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var outXLSX, outMD, outHTML string

	cmd := &cobra.Command{
		Use:   "tally [ballots-file]",
		Short: "Run all voting rules on a ballot file",
		Long: `Read a ballot file (.xlsx or .csv, first row = candidates, one ballot
per following row), compute head-to-head statistics, the Condorcet winner
and every rule's result.

Example: goelect tally ballots.xlsx --md report.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := excel.NewBallotReader(args[0]).ReadElection()
			if err != nil {
				return err
			}

			analysis, err := app.NewAnalysisService(rules.NewEngine(), logger.With("analysis")).
				Analyze(cmd.Context(), e)
			if err != nil {
				return err
			}

			printAnalysis(analysis)
			return writeOutputs(analysis, nil, outXLSX, outMD, outHTML)
		},
	}

	cmd.Flags().StringVar(&outXLSX, "out", "", "Write results workbook (.xlsx)")
	cmd.Flags().StringVar(&outMD, "md", "", "Write Markdown report")
	cmd.Flags().StringVar(&outHTML, "html", "", "Write HTML report")

	return cmd
}

func newTacticalCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var ruleNames []string
	var outXLSX, outMD, outHTML string

	cmd := &cobra.Command{
		Use:   "tactical [ballots-file]",
		Short: "Search for tactical voting opportunities per voter type",
		Long: `For every voter type and every selected rule, test heuristic
alternative rankings (burying and compromising) and report those that
improve the outcome under the type's true preferences.

Example: goelect tactical ballots.xlsx --rules borda,schulze`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := excel.NewBallotReader(args[0]).ReadElection()
			if err != nil {
				return err
			}

			engine := rules.NewEngine()
			analysis, err := app.NewAnalysisService(engine, logger.With("analysis")).
				Analyze(cmd.Context(), e)
			if err != nil {
				return err
			}

			sweep, err := app.NewTacticalService(engine, logger.With("tactical")).
				Sweep(cmd.Context(), e, ruleNames, app.HeuristicAlternatives)
			if err != nil {
				return err
			}

			printAnalysis(analysis)
			printSweep(sweep)
			return writeOutputs(analysis, sweep, outXLSX, outMD, outHTML)
		},
	}

	cmd.Flags().StringSliceVar(&ruleNames, "rules",
		[]string{rules.RuleCopeland, rules.RuleBorda, rules.RuleSchulze},
		"Rules to evaluate")
	cmd.Flags().StringVar(&outXLSX, "out", "", "Write results workbook (.xlsx)")
	cmd.Flags().StringVar(&outMD, "md", "", "Write Markdown report")
	cmd.Flags().StringVar(&outHTML, "html", "", "Write HTML report")

	return cmd
}

func newGenerateCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var voters int
	var candidateList, spectrumList []string
	var singlePeaked bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [out-file]",
		Short: "Generate a synthetic electorate and write it as a ballot workbook",
		Long: `Generate random or single-peaked ballots with an explicit seed, so
experiments stay reproducible.

Example: goelect generate ballots.xlsx --voters 100 --candidates A,B,C --single-peaked --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			candidates := make([]core.Candidate, 0, len(candidateList))
			for _, name := range candidateList {
				c, err := core.ParseCandidate(name)
				if err != nil {
					return err
				}
				candidates = append(candidates, c)
			}

			rng := ballotgen.NewDeterministicRNG()
			var generator ports.BallotGenerator
			if singlePeaked {
				var spectrum []core.Candidate
				for _, name := range spectrumList {
					spectrum = append(spectrum, core.Candidate(name))
				}
				generator = ballotgen.NewSinglePeaked(spectrum, rng.SeededStream("single_peaked", seed))
			} else {
				generator = ballotgen.NewRandom(rng.SeededStream("random", seed))
			}

			ballots, err := generator.Generate(cmd.Context(), voters, candidates)
			if err != nil {
				return err
			}
			e, err := election.New(candidates, ballots)
			if err != nil {
				return err
			}

			if err := excel.NewResultWriter(args[0]).WriteBallots(e); err != nil {
				return err
			}
			logger.Info("wrote %d %s ballots to %s", voters, generator.Name(), args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&voters, "voters", 20, "Number of ballots to generate")
	cmd.Flags().StringSliceVar(&candidateList, "candidates", []string{"A", "B", "C"}, "Candidate names")
	cmd.Flags().StringSliceVar(&spectrumList, "spectrum", nil, "Spectrum order for single-peaked preferences (defaults to candidate order)")
	cmd.Flags().BoolVar(&singlePeaked, "single-peaked", false, "Generate single-peaked instead of uniform-random preferences")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (defaults to GOELECT_SEED or 42)")

	return cmd
}

func newDemoCmd(logger *internal.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canned demonstration electorates",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := rules.NewEngine()
			analysisSvc := app.NewAnalysisService(engine, logger.With("analysis"))
			tacticalSvc := app.NewTacticalService(engine, logger.With("tactical"))
			allRules := []string{rules.RuleCopeland, rules.RuleBorda, rules.RuleSchulze}

			for _, scenario := range testkit.Scenarios() {
				fmt.Printf("\n=== %s: %s ===\n", scenario.Name, scenario.Description)

				analysis, err := analysisSvc.Analyze(cmd.Context(), scenario.Election)
				if err != nil {
					return err
				}
				printAnalysis(analysis)

				sweep, err := tacticalSvc.Sweep(cmd.Context(), scenario.Election, allRules, app.HeuristicAlternatives)
				if err != nil {
					return err
				}
				printSweep(sweep)
			}
			return nil
		},
	}
}

func printAnalysis(analysis *app.Analysis) {
	fmt.Printf("Ballots: %d  Candidates: %s\n", analysis.NumBallots, joinCandidates(analysis.Candidates, ", "))
	if analysis.CondorcetWinner != nil {
		fmt.Printf("Condorcet winner: %s\n", *analysis.CondorcetWinner)
	} else {
		fmt.Println("Condorcet winner: none (majority cycle)")
	}
	for _, result := range analysis.Results {
		fmt.Printf("  %-9s winners: %-8s scores: %s\n",
			result.RuleName, joinCandidates(result.Winners, ","), formatScores(analysis.Candidates, result.Scores))
	}
}

func printSweep(sweep *app.SweepResult) {
	if len(sweep.Opportunities) == 0 {
		fmt.Println("No tactical voting opportunities found.")
		return
	}
	for _, opp := range sweep.Opportunities {
		fmt.Printf("  [%s] type %s (%d voters) reporting %s elects %s: %s\n",
			opp.RuleName,
			joinCandidates(opp.TrueRanking, ">"),
			opp.VoterCount,
			joinCandidates(opp.Alternative, ">"),
			joinCandidates(opp.NewWinners, ","),
			opp.Benefit)
	}
}

func writeOutputs(analysis *app.Analysis, sweep *app.SweepResult, outXLSX, outMD, outHTML string) error {
	if outXLSX != "" {
		if err := excel.NewResultWriter(outXLSX).WriteAnalysis(analysis, sweep); err != nil {
			return err
		}
	}
	if outMD == "" && outHTML == "" {
		return nil
	}

	md := report.Markdown(analysis, sweep)
	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(md), 0o644); err != nil {
			return err
		}
	}
	if outHTML != "" {
		if err := os.WriteFile(outHTML, report.HTML(md), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func formatScores(candidates []core.Candidate, scores map[core.Candidate]float64) string {
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, fmt.Sprintf("%s=%g", c, scores[c]))
	}
	return strings.Join(parts, " ")
}

func joinCandidates(candidates []core.Candidate, sep string) string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.String()
	}
	return strings.Join(names, sep)
}
