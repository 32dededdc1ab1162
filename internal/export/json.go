package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
)

// ErrInvalidImport is returned when a shared payload cannot be read.
var ErrInvalidImport = errors.New("invalid match file")

// JSON encodes the share payload: players, bench, match info, fee and
// payments, plus the team sides and id counter.
func JSON(m *lineup.Match) ([]byte, error) {
	return json.MarshalIndent(m.Snapshot(), "", "  ")
}

// ImportJSON decodes and validates a share payload into a live match.
func ImportJSON(data []byte) (*lineup.Match, error) {
	var s lineup.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	m, err := lineup.Restore(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	return m, nil
}

// JSONFileName is the suggested name for a shared payload,
// e.g. "pagos-Cancha-Los-Leones.json". Only letters and digits of the
// location survive; every other run of characters becomes one dash, so
// the name never carries a path separator.
func JSONFileName(info lineup.MatchInfo) string {
	words := strings.FieldsFunc(info.Location, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	loc := strings.Join(words, "-")
	if loc == "" {
		loc = "partido"
	}
	return "pagos-" + loc + ".json"
}
