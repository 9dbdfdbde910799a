// termtris is a terminal Tetris with deterministic gameplay.
//
// Usage:
//
//	termtris play            - Play in the current terminal
//	termtris serve           - Start SSH server for remote play
//	termtris stats           - Show the session journal
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible piece sequences
//	--db <path>     - Set database path (default: ~/.termtris/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "Tetris in your terminal",
	Long: `termtris is a terminal Tetris: falling tetrominoes, line clears,
lock delay and classic scoring, playable locally or over SSH.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  stats    - View the session journal

Examples:
  termtris play
  termtris play --difficulty hard
  termtris play --seed 42
  termtris serve --ssh :2222
  termtris stats --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termtris/sessions.db", "Path to session journal database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
