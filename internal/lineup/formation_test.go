package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneTables_Monotonic(t *testing.T) {
	for z := HZone(1); z < hZoneCount; z++ {
		assert.Greater(t, z.Percent(), (z - 1).Percent(), "horizontal zone %s", z)
	}
	for z := VZone(1); z < vZoneCount; z++ {
		assert.Less(t, z.Percent(), (z - 1).Percent(), "vertical zone %s", z)
	}
}

func TestZoneTables_InsideField(t *testing.T) {
	for z := HZone(0); z < hZoneCount; z++ {
		assert.True(t, z.Percent() > 0 && z.Percent() < 100, "horizontal zone %s", z)
	}
	for z := VZone(0); z < vZoneCount; z++ {
		// Vertical zones describe the bottom half.
		assert.True(t, z.Percent() > 50 && z.Percent() < 100, "vertical zone %s", z)
	}
}

func TestZone_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { _ = HZone(99).Percent() })
	assert.Panics(t, func() { _ = VZone(-1).Percent() })
}

func TestFormationFor_CoversEveryPositionOnce(t *testing.T) {
	for _, size := range []int{6, 7} {
		roles, err := PositionsFor(size)
		require.NoError(t, err)
		for _, ft := range FormationTypes() {
			f, err := FormationFor(size, ft)
			require.NoError(t, err)
			require.Len(t, f.Entries, size, "%s/%d", ft, size)

			got := make([]Position, 0, size)
			for _, e := range f.Entries {
				got = append(got, e.Position)
			}
			assert.Equal(t, roles, got, "%s/%d entries must follow role order", ft, size)
		}
	}
}

func TestFormationFor_InvalidSize(t *testing.T) {
	for _, size := range []int{0, 5, 8, 11} {
		_, err := FormationFor(size, FormationBalanced)
		assert.ErrorIs(t, err, ErrInvalidTeamSize, "size %d", size)
		_, err = PositionsFor(size)
		assert.ErrorIs(t, err, ErrInvalidTeamSize, "size %d", size)
	}
}

func TestFormationFor_UnknownType(t *testing.T) {
	_, err := FormationFor(7, FormationType(42))
	assert.ErrorIs(t, err, ErrUnknownFormation)
}

func TestPositionsFor_SixASide(t *testing.T) {
	roles, err := PositionsFor(6)
	require.NoError(t, err)
	assert.Equal(t, []Position{Goalkeeper, CenterBack, LeftBack, RightBack, Midfielder, Forward}, roles)
}

func TestParsePosition(t *testing.T) {
	for p := Position(0); p < positionCount; p++ {
		got, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePosition("  defensa central ")
	require.NoError(t, err)
	assert.Equal(t, CenterBack, got)

	_, err = ParsePosition("Delanteroo")
	assert.ErrorIs(t, err, ErrUnknownPosition)
}

func TestParseFormation(t *testing.T) {
	ft, err := ParseFormation("")
	require.NoError(t, err)
	assert.Equal(t, FormationBalanced, ft)

	ft, err = ParseFormation("ofensiva")
	require.NoError(t, err)
	assert.Equal(t, FormationAttacking, ft)

	_, err = ParseFormation("4-4-2")
	assert.ErrorIs(t, err, ErrUnknownFormation)
}
