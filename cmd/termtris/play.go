package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/game"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls (defaults, see config file):
  Left/Right - Move piece
  Down       - Soft drop
  Space      - Hard drop
  Z/X        - Rotate
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Slower gravity and longer lock delay
  normal - Classic timing
  hard   - Faster gravity, shorter lock delay, fewer lock resets

Examples:
  termtris play
  termtris play --difficulty hard
  termtris play --seed 42
  termtris play --config ./my-termtris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a game event log to this file")
}

// subscribeEventLog attaches a structured event logger to the manager.
// Logs go to a file rather than stderr so they never corrupt the TUI.
func subscribeEventLog(mgr *game.Manager, path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
	})
	mgr.Subscribe(func(ev game.Event) {
		switch ev.Type {
		case game.EventPieceSpawned, game.EventPieceLocked:
			logger.Debug(ev.Type.String(), "session", ev.SessionID, "piece", ev.Piece.String())
		case game.EventLinesCleared:
			logger.Info(ev.Type.String(), "session", ev.SessionID, "lines", ev.Lines, "score_delta", ev.ScoreDelta)
		case game.EventLevelUp:
			logger.Info(ev.Type.String(), "session", ev.SessionID, "level", ev.Level)
		case game.EventGameOver:
			logger.Info(ev.Type.String(), "session", ev.SessionID, "reason", ev.Reason,
				"score", ev.Score, "lines", ev.TotalLines)
		default:
			logger.Info(ev.Type.String(), "session", ev.SessionID)
		}
	})
	return f, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, preset)
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size, fall back to a classic 80x24
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	mgr, err := game.NewManager(gameCfg.Params(), cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open the session journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	recorder := storage.NewRecorder(store)
	mgr.Subscribe(recorder.Listen)

	if flagLogFile != "" {
		logFile, logErr := subscribeEventLog(mgr, flagLogFile)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open event log: %v\n", logErr)
		} else {
			defer logFile.Close()
		}
	}

	keys := tui.NewKeyMapper(gameCfg.Controls.Bindings())
	runErr := tui.Run(mgr, recorder, keys, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
