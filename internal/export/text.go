// Package export turns a match into the formats players pass around: a
// plain-text summary, the JSON share payload, a PNG of the field and
// calendar/maps links.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var clp = message.NewPrinter(language.MustParse("es-CL"))

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatCLP renders a peso amount with Chilean grouping, e.g. $150.000.
func FormatCLP(amount int64) string {
	if amount < 0 {
		return "-$" + clp.Sprintf("%d", -amount)
	}
	return "$" + clp.Sprintf("%d", amount)
}

// FormatDate renders the long Spanish date, e.g. "sábado, 24 de octubre de 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// Title is the headline used by the text summary and calendar event.
func Title(info lineup.MatchInfo) string {
	if loc := strings.TrimSpace(info.Location); loc != "" {
		return "Partido en " + loc
	}
	return "Partido"
}

// Text renders the lineup as a shareable plain-text summary: headline,
// date, both teams with bench and, when a fee is set, the payment state.
func Text(m *lineup.Match) string {
	var b strings.Builder
	b.WriteString(Title(m.Info))
	b.WriteByte('\n')
	if !m.Info.Date.IsZero() {
		fmt.Fprintf(&b, "%s, %s hrs\n", FormatDate(m.Info.Date), m.Info.Date.Format("15:04"))
	}

	players, bench := m.Players(), m.Bench()
	home, away := m.TeamColors()
	for _, team := range []lineup.TeamColor{home, away} {
		fmt.Fprintf(&b, "\n%s\n", team.TeamName())
		for _, p := range players {
			if p.Team == team {
				fmt.Fprintf(&b, "- %s: %s\n", p.Position, p.Name)
			}
		}
		var names []string
		for _, bp := range bench {
			if bp.Team == team {
				names = append(names, bp.Name)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, "Banca: %s\n", strings.Join(names, ", "))
		}
	}

	if fee := m.Fee(); fee > 0 {
		s := m.Payments()
		fmt.Fprintf(&b, "\nCuota por jugador: %s\n", FormatCLP(fee))
		fmt.Fprintf(&b, "Pagados: %d de %d (%s)\n", s.Paid, s.Players, FormatCLP(s.Collected))
		fmt.Fprintf(&b, "Pendiente: %s\n", FormatCLP(s.Outstanding))
		var pending []string
		for _, p := range players {
			if !m.Paid(p.ID) {
				pending = append(pending, p.Name)
			}
		}
		for _, bp := range bench {
			if !m.Paid(bp.ID) {
				pending = append(pending, bp.Name)
			}
		}
		if len(pending) > 0 {
			fmt.Fprintf(&b, "Faltan: %s\n", strings.Join(pending, ", "))
		}
	}
	return b.String()
}
