// Command lineup manages saved matches, rosters and exports from the
// terminal. It shares the configuration and store of the board.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Garsondee/Ligres-Lineup/internal/app"
	"github.com/Garsondee/Ligres-Lineup/internal/export"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	c := &cli{}
	if err := c.execute(newRootCmd(c)); err != nil {
		os.Exit(1)
	}
}

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	configDir string
	matchID   string
	app       *app.App
}

// execute runs root and then closes the app, whether or not the command
// succeeded. Cobra skips post-run hooks after a failed RunE.
func (c *cli) execute(root *cobra.Command) error {
	err := root.Execute()
	if c.app != nil {
		err = errors.Join(err, c.app.Close())
	}
	return err
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "lineup",
		Short:        "Ligres lineup tools: exports, history, rosters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			a, err := app.Open(c.configDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configDir, "config", ".", "directory holding ligres.cfg.json")

	root.AddCommand(
		c.exportCmd(),
		c.linksCmd(),
		c.paymentsCmd(),
		c.importCmd(),
		c.historyCmd(),
		c.rosterCmd(),
		c.templateCmd(),
	)
	return root
}

// addMatchFlag lets a command read an archived match instead of the
// active one.
func (c *cli) addMatchFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.matchID, "match", "", "history id to use instead of the active match")
}

// match resolves the match a command works on.
func (c *cli) match() (*lineup.Match, error) {
	if c.matchID != "" {
		return store.Restore(c.app.Store, c.matchID)
	}
	s, err := c.app.Store.LoadActive()
	if err != nil {
		return nil, err
	}
	return lineup.Restore(s)
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a shared payments file as the active match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, err := export.ImportJSON(data)
			if err != nil {
				return err
			}
			if err := c.app.Save(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d players and %d on the bench\n", len(m.Players()), len(m.Bench()))
			return nil
		},
	}
}
