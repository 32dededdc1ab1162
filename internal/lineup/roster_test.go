package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixASide(color TeamColor, names map[Position]string, bench ...string) TeamSetup {
	return TeamSetup{Color: color, Size: 6, Names: names, Bench: bench}
}

func TestAssign_SixASideScenario(t *testing.T) {
	home := sixASide(Blue, map[Position]string{
		Goalkeeper: "Iker",
		CenterBack: "Carles",
		LeftBack:   "Jordi",
		RightBack:  "Dani",
		Midfielder: "Xavi",
		Forward:    "David",
	})
	away := sixASide(Red, map[Position]string{Goalkeeper: "Gigi"})

	lu, err := Assign(home, away, NewIDGen(DefaultIDBase), DefaultEdgePadding)
	require.NoError(t, err)
	require.Len(t, lu.Players, 12)

	wantRoles := []Position{Goalkeeper, CenterBack, LeftBack, RightBack, Midfielder, Forward}
	for i, p := range lu.Players[:6] {
		assert.Equal(t, Blue, p.Team)
		assert.Equal(t, wantRoles[i], p.Position)
		assert.GreaterOrEqual(t, p.Y, 50.0, "%s", p.Name)
	}
	for i, p := range lu.Players[6:] {
		assert.Equal(t, Red, p.Team)
		assert.Equal(t, wantRoles[i], p.Position)
		assert.LessOrEqual(t, p.Y, 50.0, "%s", p.Name)
	}
	assert.Equal(t, "Iker", lu.Players[0].Name)
	assert.Equal(t, "Gigi", lu.Players[6].Name)
}

func TestAssign_IDsUniqueAndMonotonic(t *testing.T) {
	home := TeamSetup{Color: White, Size: 7, Bench: []string{"a", "b"}}
	away := TeamSetup{Color: Black, Size: 7, Bench: []string{"c"}}

	lu, err := Assign(home, away, NewIDGen(100), DefaultEdgePadding)
	require.NoError(t, err)

	var ids []int
	for _, p := range lu.Players {
		ids = append(ids, p.ID)
	}
	for _, b := range lu.Bench {
		ids = append(ids, b.ID)
	}
	require.Len(t, ids, 17)
	for i, id := range ids {
		assert.Equal(t, 100+i, id)
	}
}

func TestAssign_CounterContinuesAcrossCalls(t *testing.T) {
	ids := NewIDGen(7)
	home := sixASide(Blue, nil)
	away := sixASide(Red, nil)
	_, err := Assign(home, away, ids, DefaultEdgePadding)
	require.NoError(t, err)
	assert.Equal(t, 19, ids.Peek())
}

func TestAssign_BlankNamesBecomePlaceholders(t *testing.T) {
	home := sixASide(Blue, map[Position]string{Forward: "   "})
	away := sixASide(Red, nil)

	lu, err := Assign(home, away, NewIDGen(100), DefaultEdgePadding)
	require.NoError(t, err)
	for _, p := range lu.Players {
		assert.Equal(t, PlaceholderName(p.ID), p.Name)
	}
	assert.Equal(t, "Jugador 105", lu.Players[5].Name)
}

func TestAssign_BenchSkipsBlanksAndKeepsOrder(t *testing.T) {
	home := sixASide(Blue, nil, "  Ana ", "", "   ", "Bea")
	away := sixASide(Red, nil, "\t", "Caro")

	lu, err := Assign(home, away, NewIDGen(100), DefaultEdgePadding)
	require.NoError(t, err)
	require.Len(t, lu.Bench, 3)

	assert.Equal(t, BenchPlayer{ID: 112, Name: "Ana", Team: Blue}, lu.Bench[0])
	assert.Equal(t, BenchPlayer{ID: 113, Name: "Bea", Team: Blue}, lu.Bench[1])
	assert.Equal(t, BenchPlayer{ID: 114, Name: "Caro", Team: Red}, lu.Bench[2])
}

func TestAssign_RejectsBadSetups(t *testing.T) {
	cases := []struct {
		name string
		home TeamSetup
		away TeamSetup
		want error
	}{
		{"same colours", sixASide(Red, nil), sixASide(Red, nil), ErrSameColors},
		{"bad size", TeamSetup{Color: Blue, Size: 5}, sixASide(Red, nil), ErrInvalidTeamSize},
		{"unknown colour", TeamSetup{Color: "green", Size: 6}, sixASide(Red, nil), ErrUnknownColor},
		{"position outside size", sixASide(Blue, map[Position]string{Midfielder1: "x"}), sixASide(Red, nil), ErrUnknownPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assign(tc.home, tc.away, NewIDGen(100), DefaultEdgePadding)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Blue ")
	require.NoError(t, err)
	assert.Equal(t, Blue, c)
	assert.Equal(t, "Equipo Azul", c.TeamName())

	_, err = ParseColor("green")
	assert.ErrorIs(t, err, ErrUnknownColor)
}
