package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/axesporen/internal/audio"
	"github.com/vovakirdan/axesporen/internal/config"
	"github.com/vovakirdan/axesporen/internal/core"
	"github.com/vovakirdan/axesporen/internal/platform/tui"
	"github.com/vovakirdan/axesporen/internal/scene"
	"github.com/vovakirdan/axesporen/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [generator]",
	Short: "Start exploring",
	Long: `Start exploring worlds. Without a generator the one from the game
config is used (biome by default).

Controls:
  W/Z/Up      - Move up
  S/Down      - Move down
  A/Q/Left    - Move left
  D/Right     - Move right
  Mouse       - Aim
  X           - Fire
  Space       - Confirm
  Esc         - Dismiss the intro panel
  Tab         - Back to the generator launcher
  Ctrl+S      - Save a screenshot
  Ctrl+C      - Quit

Difficulty options:
  easy   - Crocodiles start slow and get faster every world
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  axesporen play
  axesporen play noise
  axesporen play --difficulty hard
  axesporen play --config ./my-worlds.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a world generator interactively",
	Long: `Start with the generator launcher.

Use arrow keys or j/k to navigate, Enter to start exploring.
Press Tab in a game to come back here, or Tab in the launcher
to see the run history.

Examples:
  axesporen menu
  axesporen menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return explore(cmd, "", true)
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	generator := ""
	if len(args) == 1 {
		generator = args[0]
	}
	return explore(cmd, generator, false)
}

// explore runs games and the launcher until the player quits.
func explore(_ *cobra.Command, generator string, inMenu bool) error {
	cfg, err := loadGameConfig(generator)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("could not open run database", "err", err)
		store = nil // Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
	}

	sound, closeAudio := openAudio(cfg, logger)
	defer closeAudio()

	for {
		if inMenu {
			res, menuErr := tui.RunMenu(store, rt, cfg.World.Generator)
			if menuErr != nil {
				return menuErr
			}
			rt = res.Config

			if res.Quit {
				return nil
			}
			if res.WantsScoreboard {
				back, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
				if sbErr != nil {
					return sbErr
				}
				if !back {
					return nil
				}
				continue
			}
			cfg.World.Generator = res.Generator
		}

		logger.Info("starting run", "generator", cfg.World.Generator, "seed", rt.Seed)
		back, runErr := tui.Run(tui.Options{
			Game:    cfg,
			Runtime: rt,
			Audio:   sound,
			Store:   store,
			Player:  playerName(),
			Log:     logger,
		})
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		if !back {
			return nil
		}
		inMenu = true
	}
}

// openAudio opens the speaker when audio is enabled. The game plays silently
// when it is disabled or no audio device is available.
func openAudio(cfg config.GameConfig, logger *log.Logger) (scene.Audio, func()) {
	if !cfg.Audio.Enabled || flagMute {
		return audio.Silent{}, func() {}
	}
	p, err := audio.Open()
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.Silent{}, func() {}
	}
	return p, p.Close
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
