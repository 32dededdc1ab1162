package export

import (
	"bytes"
	"errors"
	"image/png"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kickoff = time.Date(2026, 10, 24, 20, 0, 0, 0, time.UTC)

func newMatch(t *testing.T, opts ...lineup.MatchOption) *lineup.Match {
	t.Helper()
	home := lineup.TeamSetup{
		Color: lineup.Blue,
		Size:  6,
		Names: map[lineup.Position]string{lineup.Goalkeeper: "Claudio", lineup.Forward: "Alexis"},
		Bench: []string{"Gary"},
	}
	away := lineup.TeamSetup{Color: lineup.Red, Size: 6, Names: map[lineup.Position]string{lineup.CenterBack: "Elías"}}
	m, err := lineup.NewMatch(home, away, opts...)
	require.NoError(t, err)
	return m
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "sábado, 24 de octubre de 2026", FormatDate(kickoff))
	assert.Equal(t, "jueves, 1 de enero de 2026", FormatDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatCLP(t *testing.T) {
	assert.Equal(t, "$150.000", FormatCLP(150000))
	assert.Equal(t, "$0", FormatCLP(0))
	assert.True(t, strings.HasPrefix(FormatCLP(-52000), "-$"))
}

func TestText(t *testing.T) {
	m := newMatch(t,
		lineup.WithInfo(lineup.MatchInfo{Location: "Cancha Los Leones", Date: kickoff}),
		lineup.WithFee(25000),
	)
	m.SetPaid(100, true)

	out := Text(m)
	assert.True(t, strings.HasPrefix(out, "Partido en Cancha Los Leones\n"))
	assert.Contains(t, out, "sábado, 24 de octubre de 2026, 20:00 hrs")
	assert.Contains(t, out, "Equipo Azul\n- Portero: Claudio\n")
	assert.Contains(t, out, "- Delantero: Alexis\n")
	assert.Contains(t, out, "Banca: Gary\n")
	assert.Contains(t, out, "- Defensa Central: Elías\n")
	assert.Contains(t, out, "Pagados: 1 de 13")
	assert.Contains(t, out, "Pendiente: $300.000")
	assert.NotContains(t, out, "Faltan: Claudio")

	assert.Less(t, strings.Index(out, "Equipo Azul"), strings.Index(out, "Equipo Rojo"))
}

func TestText_NoInfoNoFee(t *testing.T) {
	out := Text(newMatch(t))
	assert.True(t, strings.HasPrefix(out, "Partido\n\nEquipo Azul"))
	assert.NotContains(t, out, "Cuota")
}

func TestJSON_RoundTrip(t *testing.T) {
	m := newMatch(t, lineup.WithInfo(lineup.MatchInfo{Location: "Cancha 3", Date: kickoff}), lineup.WithFee(4000))
	m.Reposition(105, 12.5, 30)
	m.SetPaid(112, true)

	data, err := JSON(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"benchPlayers"`)
	assert.Contains(t, string(data), `"playerPayments"`)

	got, err := ImportJSON(data)
	require.NoError(t, err)
	p, ok := got.Player(105)
	require.True(t, ok)
	assert.InDelta(t, 12.5, p.X, 1e-9)
	assert.True(t, got.Paid(112))
	assert.Equal(t, "Cancha 3", got.Info.Location)
}

func TestImportJSON_Invalid(t *testing.T) {
	_, err := ImportJSON([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidImport)

	_, err = ImportJSON([]byte(`{"players":[{"id":1,"x":140,"y":20,"teamId":"red"}]}`))
	assert.ErrorIs(t, err, ErrInvalidImport)
	assert.ErrorIs(t, err, lineup.ErrInvalidSnapshot)
}

func TestJSONFileName(t *testing.T) {
	assert.Equal(t, "pagos-Cancha-Los-Leones.json", JSONFileName(lineup.MatchInfo{Location: " Cancha  Los Leones "}))
	assert.Equal(t, "pagos-partido.json", JSONFileName(lineup.MatchInfo{}))
	assert.Equal(t, "pagos-Ñuñoa-Cancha-3.json", JSONFileName(lineup.MatchInfo{Location: "Ñuñoa, Cancha #3"}))
}

func TestJSONFileName_StaysInDir(t *testing.T) {
	for _, loc := range []string{"x/../../../tmp/evil", `..\..\evil`, "/etc/passwd", "..", "a:b*c?"} {
		name := JSONFileName(lineup.MatchInfo{Location: loc})
		assert.NotContains(t, name, "/", loc)
		assert.NotContains(t, name, `\`, loc)
		assert.NotContains(t, name, "..", loc)
		assert.Equal(t, filepath.Join("exports", name), "exports"+string(filepath.Separator)+name, loc)
	}
	assert.Equal(t, "pagos-x-tmp-evil.json", JSONFileName(lineup.MatchInfo{Location: "x/../../../tmp/evil"}))
	assert.Equal(t, "pagos-partido.json", JSONFileName(lineup.MatchInfo{Location: "../.."}))
}

func TestPNG_Scales(t *testing.T) {
	m := newMatch(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, m, Options{Scale: 2}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, BaseWidth*2, img.Bounds().Dx())
	assert.Equal(t, BaseHeight*2, img.Bounds().Dy())

	buf.Reset()
	require.NoError(t, PNG(&buf, m, Options{}))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, BaseWidth*DefaultScale, cfg.Width)
}

func TestRender_MarkerUsesTeamColour(t *testing.T) {
	m := newMatch(t)
	p, _ := m.Player(100)
	img := Render(m)

	x, y := int(p.X/100*BaseWidth), int(p.Y/100*BaseHeight)
	assert.Equal(t, lineup.Blue.RGBA(), img.RGBAAt(x, y))
}

func TestCalendarURL(t *testing.T) {
	raw, err := CalendarURL(lineup.MatchInfo{Location: "Cancha 3", Date: kickoff}, 90*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Partido en Cancha 3", q.Get("text"))
	assert.Equal(t, "20261024T200000Z/20261024T213000Z", q.Get("dates"))
	assert.Equal(t, "Cancha 3", q.Get("location"))

	_, err = CalendarURL(lineup.MatchInfo{Location: "x"}, time.Hour)
	assert.ErrorIs(t, err, ErrNoDate)
}

func TestMapsURL(t *testing.T) {
	raw, err := MapsURL(" Estadio Nacional, Ñuñoa ")
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Estadio Nacional, Ñuñoa", u.Query().Get("destination"))

	_, err = MapsURL("  ")
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestCopyText(t *testing.T) {
	var got string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	writeClipboard = func(s string) error { got = s; return nil }
	m := newMatch(t)
	require.NoError(t, CopyText(m))
	assert.Equal(t, Text(m), got)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	assert.Error(t, CopyText(m))
}
