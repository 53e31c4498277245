package domineering

import "github.com/partizangames/cgt/boardutil"

const (
	tokenEmpty  byte = '.'
	tokenLeft   byte = 'L'
	tokenRight  byte = 'R'
	tokenMasked byte = '#'
)

var flipTokens = map[byte]byte{tokenLeft: tokenRight, tokenRight: tokenLeft}

// Position is a Domineering board state.
type Position struct {
	Board boardutil.Board
}

// New returns an empty w-by-h Domineering board.
func New(w, h int) (Position, error) {
	rows := make([][]byte, h)
	for y := 0; y < h; y++ {
		row := make([]byte, w)
		for x := range row {
			row[x] = tokenEmpty
		}
		rows[y] = row
	}
	b, err := boardutil.NewBoard(rows)
	if err != nil {
		return Position{}, err
	}
	return Position{Board: b}, nil
}

func isPlayable(tok byte) bool { return tok == tokenEmpty }
