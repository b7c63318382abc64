package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cube-groups/solver/internal/benchrun"
	"github.com/cube-groups/solver/internal/benchstore"
	"github.com/cube-groups/solver/internal/solve"
	"github.com/spf13/cobra"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run both pipelines over the fixed scramble corpus",
	Long: `Solves every scramble in the fixed corpus with both the
Thistlethwaite and Kociemba pipelines, printing per-stage lengths and
durations plus the worst-case scramble for each pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, _ := cmd.Flags().GetBool("record")
		useTUI, _ := cmd.Flags().GetBool("tui")
		dbPath, _ := cmd.Flags().GetString("db")

		engine := solve.NewEngine()
		ctx := context.Background()

		var run *benchstore.Run
		var err error
		if useTUI {
			run, err = runBenchmarkTUI(ctx, engine)
		} else {
			run, err = runBenchmarkPlain(ctx, engine)
		}
		if err != nil {
			return fmt.Errorf("benchmark run: %w", err)
		}

		if record {
			if dbPath == "" {
				dbPath = benchstore.DefaultPath()
			}
			db, err := benchstore.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open benchmark database: %w", err)
			}
			defer db.Close()

			if err := benchstore.NewRepository(db).Record(*run); err != nil {
				return fmt.Errorf("record benchmark run: %w", err)
			}
			fmt.Printf("Recorded run %s to %s\n", run.ID, dbPath)
		}

		return nil
	},
}

func runBenchmarkPlain(ctx context.Context, engine *solve.Engine) (*benchstore.Run, error) {
	progress := make(chan benchrun.ProgressEvent, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range progress {
			fmt.Printf("[%d/%d] %-12s %-60s %3d moves  %v\n",
				ev.Index, ev.Total, ev.Algorithm, ev.Scramble, len(ev.Result.Moves), ev.Result.Duration)
		}
	}()

	run, err := benchrun.Run(ctx, engine, progress)
	close(progress)
	<-done
	if err != nil {
		return nil, err
	}

	fmt.Printf("\nRan %d scrambles in %v\n", len(benchrun.Corpus), run.Duration)
	fmt.Printf("Worst thistlethwaite: %q (%v)\n", run.WorstThistleScramble, run.WorstThistleDuration)
	fmt.Printf("Worst kociemba:       %q (%v)\n", run.WorstKociembaScramble, run.WorstKociembaDuration)
	return run, nil
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
	benchmarkCmd.Flags().Bool("record", false, "Persist the run's summary to a local SQLite database")
	benchmarkCmd.Flags().Bool("tui", false, "Drive a live Bubble Tea progress view instead of line-by-line printing")
	benchmarkCmd.Flags().String("db", "", "SQLite database path for --record (default: $CUBE_BENCHMARK_DB or ./cube-benchmark.db)")
}

// benchmarkTUIModel is a minimal live progress view over the scramble
// corpus: a completed/total counter and the last few finished jobs.
type benchmarkTUIModel struct {
	progress <-chan benchrun.ProgressEvent
	done     <-chan runOutcome
	total    int
	finished int
	recent   []string
	run      *benchstore.Run
	err      error
	quitting bool
}

type runOutcome struct {
	run *benchstore.Run
	err error
}

var (
	benchTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	benchStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	benchDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

func runBenchmarkTUI(ctx context.Context, engine *solve.Engine) (*benchstore.Run, error) {
	progress := make(chan benchrun.ProgressEvent, 4)
	done := make(chan runOutcome, 1)

	go func() {
		run, err := benchrun.Run(ctx, engine, progress)
		close(progress)
		done <- runOutcome{run: run, err: err}
	}()

	m := &benchmarkTUIModel{
		progress: progress,
		done:     done,
		total:    len(benchrun.Corpus) * 2,
	}
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	final := finalModel.(*benchmarkTUIModel)
	if final.err != nil {
		return nil, final.err
	}
	return final.run, nil
}

type benchProgressMsg benchrun.ProgressEvent
type benchDoneMsg runOutcome

func (m *benchmarkTUIModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *benchmarkTUIModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-m.progress:
			if !ok {
				return nil
			}
			return benchProgressMsg(ev)
		case outcome := <-m.done:
			return benchDoneMsg(outcome)
		}
	}
}

func (m *benchmarkTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case benchProgressMsg:
		m.finished++
		line := fmt.Sprintf("%-12s %s (%d moves, %v)", msg.Algorithm, msg.Scramble, len(msg.Result.Moves), msg.Result.Duration)
		m.recent = append(m.recent, line)
		if len(m.recent) > 8 {
			m.recent = m.recent[len(m.recent)-8:]
		}
		return m, m.waitForEvent()
	case benchDoneMsg:
		m.run = msg.run
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *benchmarkTUIModel) View() string {
	if m.quitting && m.run != nil {
		return fmt.Sprintf("Done: %d scrambles in %v\n", len(benchrun.Corpus), m.run.Duration)
	}
	var s string
	s += benchTitleStyle.Render("Cube benchmark") + "\n"
	s += benchStatusStyle.Render(fmt.Sprintf("%d/%d finished", m.finished, m.total)) + "\n\n"
	for _, line := range m.recent {
		s += benchDoneStyle.Render(line) + "\n"
	}
	s += "\n" + benchStatusStyle.Render("q to quit") + "\n"
	return s
}
