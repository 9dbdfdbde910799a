package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagStatsLimit int
	flagBrowse     bool
	flagClear      bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the session journal",
	Long: `Display recent game sessions and aggregate totals.

Examples:
  termtris stats
  termtris stats --limit 20
  termtris stats --browse
  termtris stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive journal browser")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session journal cleared.")
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunStats(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termtris play' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %-6s  %-7s  %-6s  %s\n",
		"When", "Session", "Score", "Level", "Lines", "Pieces", "Time", "End")
	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %-6s  %-7s  %-6s  %s\n",
		"----", "-------", "-----", "-----", "-----", "------", "----", "---")

	for _, r := range records {
		fmt.Printf("  %-16s  %-9s  %-8d  %-6d  %-6d  %-7d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.SessionID,
			r.Score, r.Level, r.Lines, r.Pieces,
			fmt.Sprintf("%ds", r.DurationSecs), r.EndReason)
	}

	totals, err := store.GetTotals()
	if err == nil && totals.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Totals: %d sessions, %d lines, %d pieces, avg score %.0f, avg time %.0fs\n",
			totals.Sessions, totals.TotalLines, totals.TotalPieces,
			totals.AvgScore, totals.AvgDuration)
	}
}
