package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/export"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/setup"
	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	var (
		out   string
		scale int
		clip  bool
	)
	cmd := &cobra.Command{
		Use:   "export <text|json|png>",
		Short: "Export the active or an archived match",
		Long: `Exports the lineup.

  text  plain-text summary in Spanish (stdout, or --copy for the clipboard)
  json  share payload with payments (pagos-<location>.json)
  png   field image (alineacion-tactica.png)`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"text", "json", "png"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.match()
			if err != nil {
				return err
			}
			dir := c.app.Settings.Export.Dir
			switch args[0] {
			case "text":
				if clip {
					return export.CopyText(m)
				}
				return writeOut(cmd, out, []byte(export.Text(m)))
			case "json":
				data, err := export.JSON(m)
				if err != nil {
					return err
				}
				return c.writeFile(cmd, pick(out, filepath.Join(dir, export.JSONFileName(m.Info))), data)
			case "png":
				if scale == 0 {
					scale = c.app.Settings.Export.Scale
				}
				path := pick(out, filepath.Join(dir, export.PNGFileName))
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := export.PNG(f, m, export.Options{Scale: scale}); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				c.app.Log.Info().Str("path", path).Int("scale", scale).Msg("image exported")
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			default:
				return fmt.Errorf("unknown format %q (text, json or png)", args[0])
			}
		},
	}
	c.addMatchFlag(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file")
	cmd.Flags().IntVar(&scale, "scale", 0, "png scale factor (default from config)")
	cmd.Flags().BoolVar(&clip, "copy", false, "copy the text summary to the clipboard")
	return cmd
}

func (c *cli) writeFile(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.app.Log.Info().Str("path", path).Msg("file written")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func writeOut(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func pick(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func (c *cli) linksCmd() *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print calendar and directions links for the match",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.match()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if u, err := export.CalendarURL(m.Info, duration); err == nil {
				fmt.Fprintf(out, "Calendario: %s\n", u)
			} else {
				c.app.Log.Warn().Err(err).Msg("no calendar link")
			}
			if u, err := export.MapsURL(m.Info.Location); err == nil {
				fmt.Fprintf(out, "Cómo llegar: %s\n", u)
			} else {
				c.app.Log.Warn().Err(err).Msg("no maps link")
			}
			return nil
		},
	}
	c.addMatchFlag(cmd)
	cmd.Flags().DurationVar(&duration, "duration", export.DefaultMatchDuration, "calendar event length")
	return cmd
}

func (c *cli) paymentsCmd() *cobra.Command {
	var paid, unpaid []int
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Show or update who has paid for the active match",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.match()
			if err != nil {
				return err
			}
			if len(paid)+len(unpaid) > 0 {
				if c.matchID != "" {
					return fmt.Errorf("payments of archived matches are read-only")
				}
				for _, id := range paid {
					if !m.SetPaid(id, true) {
						return fmt.Errorf("no player with id %d", id)
					}
				}
				for _, id := range unpaid {
					if !m.SetPaid(id, false) {
						return fmt.Errorf("no player with id %d", id)
					}
				}
				if err := c.app.Save(m); err != nil {
					return err
				}
			}
			printPayments(cmd.OutOrStdout(), m)
			return nil
		},
	}
	c.addMatchFlag(cmd)
	cmd.Flags().IntSliceVar(&paid, "paid", nil, "mark player ids as paid")
	cmd.Flags().IntSliceVar(&unpaid, "unpaid", nil, "mark player ids as not paid")
	return cmd
}

func printPayments(w io.Writer, m *lineup.Match) {
	home, away := m.TeamColors()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, team := range []lineup.TeamColor{home, away} {
		fmt.Fprintf(tw, "%s\t\t\n", team.TeamName())
		for _, member := range m.TeamRoster(team) {
			state := "pendiente"
			if m.Paid(member.ID) {
				state = "pagado"
			}
			name := member.Name
			if member.OnBench {
				name += " (banca)"
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", member.ID, name, state)
		}
	}
	tw.Flush()

	s := m.Payments()
	fmt.Fprintf(w, "\nCuota: %s  Pagados: %d/%d  Recaudado: %s  Pendiente: %s  Total: %s\n",
		export.FormatCLP(s.Fee), s.Paid, s.Players,
		export.FormatCLP(s.Collected), export.FormatCLP(s.Outstanding), export.FormatCLP(s.Total))
}

func (c *cli) templateCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:         "template",
		Short:       "Print a setup file to fill in for --setup",
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := setup.Template(size)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", 7, "players per team (6 or 7)")
	return cmd
}
