package main

import (
	"fmt"
	"os"

	"github.com/Garsondee/Ligres-Lineup/internal/app"
	"github.com/Garsondee/Ligres-Lineup/internal/game"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/setup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configDir string
	setupPath string
	fresh     bool
)

var rootCmd = &cobra.Command{
	Use:   "ligres",
	Short: "Organizador Táctico Ligres: drag-and-drop lineup board",
	Long: `Opens the lineup board for a 6 or 7-a-side match.

The saved in-progress match is resumed when there is one. Otherwise the
lineup is built from --setup, or a blue-versus-red 7-a-side default.`,
	SilenceUsage: true,
	RunE:         runBoard,
}

func init() {
	rootCmd.Flags().StringVar(&configDir, "config", ".", "directory holding ligres.cfg.json")
	rootCmd.Flags().StringVar(&setupPath, "setup", "", "team setup YAML file")
	rootCmd.Flags().BoolVar(&fresh, "new", false, "archive any saved match and start from the setup")
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	a, err := app.Open(configDir, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err)
		}
	}()

	build := func() (*lineup.Match, error) {
		f := setup.Default()
		if setupPath != "" {
			if f, err = setup.Load(setupPath); err != nil {
				return nil, err
			}
		}
		return a.NewMatch(f)
	}

	m, resumed := a.ActiveMatch()
	if resumed && fresh {
		if _, err := a.Finish(m); err != nil {
			return err
		}
		resumed = false
	}
	if !resumed {
		if m, err = build(); err != nil {
			return err
		}
		if err := a.Save(m); err != nil {
			a.Log.Warn().Err(err).Msg("initial save failed")
		}
	} else {
		a.Log.Info().Int("players", len(m.Players())).Msg("resumed saved match")
	}

	g := game.New(game.Options{
		Match:       m,
		NewMatch:    build,
		Session:     a,
		Log:         a.Log,
		ExportDir:   a.Settings.Export.Dir,
		ExportScale: a.Settings.Export.Scale,
	})
	w, h := g.Layout(0, 0)
	scale := a.Settings.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle("Organizador Táctico Ligres")
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	// Keep the latest state when the window closes.
	return a.Save(g.Match())
}
