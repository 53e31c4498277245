package boardutil

import "bytes"

// Canonical returns the lexicographically smallest Fingerprint among all
// board symmetries that preserve the game's rules: both reflections
// always apply; the two 90-degree rotations only apply (and are only
// generated) when the board is square, since a 90-degree rotation swaps
// width and height. flipTokens remaps each token under a symmetry that
// swaps the two players' roles (e.g. Domineering's vertical<->horizontal
// reflection swaps which player's dominoes the reflected board favors);
// pass a nil map when no token needs remapping under any symmetry used.
func Canonical(b Board, flipTokens map[byte]byte) Board {
	type candidate struct {
		board Board
		swaps bool // produced by a row/column-exchanging symmetry
	}
	candidates := []candidate{
		{b, false},
		{flipHorizontal(b), false},
		{flipVertical(b), false},
		{rotate180(b), false},
	}
	if b.Width == b.Height {
		candidates = append(candidates,
			candidate{rotate90(b), true},
			candidate{rotate270(b), true},
			candidate{transpose(b), true},
			candidate{antiTranspose(b), true},
		)
	}

	best := candidates[0]
	bestFP := best.board.Fingerprint()
	for _, c := range candidates[1:] {
		fp := c.board.Fingerprint()
		if bytes.Compare(fp, bestFP) < 0 {
			best, bestFP = c, fp
		}
	}
	if flipTokens != nil && best.swaps {
		return remapTokens(best.board, flipTokens)
	}
	return best.board
}

func remapTokens(b Board, flip map[byte]byte) Board {
	rows := make([][]byte, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = make([]byte, b.Width)
		for x := 0; x < b.Width; x++ {
			t := b.At(x, y)
			if mapped, ok := flip[t]; ok {
				t = mapped
			}
			rows[y][x] = t
		}
	}
	out, _ := NewBoard(rows)
	return out
}

func flipHorizontal(b Board) Board {
	rows := make([][]byte, b.Height)
	for y := 0; y < b.Height; y++ {
		row := make([]byte, b.Width)
		for x := 0; x < b.Width; x++ {
			row[x] = b.At(b.Width-1-x, y)
		}
		rows[y] = row
	}
	out, _ := NewBoard(rows)
	return out
}

func flipVertical(b Board) Board {
	rows := make([][]byte, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = append([]byte{}, b.cells[b.Height-1-y]...)
	}
	out, _ := NewBoard(rows)
	return out
}

func rotate180(b Board) Board {
	return flipHorizontal(flipVertical(b))
}

// rotate90 rotates the (necessarily square) board clockwise by 90
// degrees.
func rotate90(b Board) Board {
	n := b.Width
	rows := make([][]byte, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := 0; x < n; x++ {
			row[x] = b.At(y, n-1-x)
		}
		rows[y] = row
	}
	out, _ := NewBoard(rows)
	return out
}

func rotate270(b Board) Board {
	return rotate180(rotate90(b))
}

// transpose reflects a square board across its main diagonal.
func transpose(b Board) Board {
	n := b.Width
	rows := make([][]byte, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := 0; x < n; x++ {
			row[x] = b.At(y, x)
		}
		rows[y] = row
	}
	out, _ := NewBoard(rows)
	return out
}

func antiTranspose(b Board) Board {
	return rotate180(transpose(b))
}
