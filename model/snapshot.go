package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveMarker = '*'
	deadMarker  = 'o'
)

// EncodeSnapshot renders the grid as size lines of size characters, '*' for
// a live cell and 'o' for a dead one, each line newline-terminated
func EncodeSnapshot(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for row := range g.size {
		for col := range g.size {
			if g.alive(row, col) {
				sb.WriteByte(aliveMarker)
			} else {
				sb.WriteByte(deadMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '\n' || r == '\r'
}

// DecodeSnapshot reads size×size cells from snapshot into g in row-major
// order. Line breaks are skipped, '*' is alive and any other character is
// dead. Too few or too many cells is an error, and g is only written when
// the whole snapshot parses.
func DecodeSnapshot(snapshot string, g *Grid) error {
	var (
		want  = g.size * g.size
		cells = make([]bool, 0, want)
	)

	for i, r := range snapshot {
		if isSeparator(r) {
			continue
		}
		if len(cells) == want {
			return errors.Wrapf(ErrParse, "[DecodeSnapshot] unexpected %q at offset %d after %d cells", r, i, want)
		}
		cells = append(cells, r == aliveMarker)
	}

	if len(cells) < want {
		return errors.Wrapf(ErrParse, "[DecodeSnapshot] got %d cells, need %d for a %dx%d grid",
			len(cells), want, g.size, g.size)
	}

	copy(g.cells, cells)
	return nil
}
