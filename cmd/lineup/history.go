package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Garsondee/Ligres-Lineup/internal/export"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/spf13/cobra"
)

func (c *cli) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, inspect and restore archived matches",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived matches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.app.Store.History()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(h) == 0 {
				fmt.Fprintln(out, "No hay partidos guardados.")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range h {
				date := "sin fecha"
				if !e.Date.IsZero() {
					date = export.FormatDate(e.Date)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, pick(e.Location, "-"), date)
			}
			return tw.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the summary of an archived match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.Restore(c.app.Store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), export.Text(m))
			return nil
		},
	}

	restore := &cobra.Command{
		Use:   "restore <id>",
		Short: "Make an archived match the active one again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.Restore(c.app.Store, args[0])
			if err != nil {
				return err
			}
			if active, ok := c.app.ActiveMatch(); ok {
				if _, err := c.app.Finish(active); err != nil {
					return err
				}
			}
			if err := c.app.Save(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", args[0])
			return nil
		},
	}

	locations := &cobra.Command{
		Use:   "locations",
		Short: "List recently used locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.app.Store.History()
			if err != nil {
				return err
			}
			for _, loc := range store.RecentLocations(h, 10) {
				fmt.Fprintln(cmd.OutOrStdout(), loc)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every archived match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Store.ClearHistory(); err != nil {
				return err
			}
			c.app.Log.Info().Msg("history cleared")
			return nil
		},
	}

	cmd.AddCommand(list, show, restore, locations, clearCmd)
	return cmd
}
