package main

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/spf13/cobra"
)

func (c *cli) rosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage saved player lists",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.app.Store.Rosters()
			if err != nil {
				return err
			}
			for _, r := range rs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d): %s\n", r.ID, r.Name, len(r.PlayerNames), strings.Join(r.PlayerNames, ", "))
			}
			return nil
		},
	}

	var id string
	save := &cobra.Command{
		Use:   "save <name> <player>...",
		Short: "Create a roster, or replace one with --id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.app.Store.SaveRoster(store.Roster{ID: id, Name: args[0], PlayerNames: args[1:]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.ID)
			return nil
		},
	}
	save.Flags().StringVar(&id, "id", "", "roster id to overwrite")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Store.DeleteRoster(args[0])
		},
	}

	find := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search rosters by name or player",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.app.Store.Rosters()
			if err != nil {
				return err
			}
			hits := store.FindRosters(rs, strings.Join(args, " "))
			if len(hits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin resultados.")
				return nil
			}
			for _, h := range hits {
				if h.Player != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%s)\n", h.Roster.ID, h.Roster.Name, h.Player)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", h.Roster.ID, h.Roster.Name)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(list, save, del, find)
	return cmd
}
