package export

import (
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/atotto/clipboard"
)

var writeClipboard = clipboard.WriteAll

// CopyText places the text summary of m on the system clipboard.
func CopyText(m *lineup.Match) error {
	return writeClipboard(Text(m))
}
