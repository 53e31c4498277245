package boardutil

// Components splits b into its 4-connected regions of "active" cells
// (those for which isActive returns true), returning one sub-board per
// region with all cells outside that region, inactive cells included,
// blanked to blank. This is the Decompose primitive every grid
// ruleset uses (spec.md §9, "the single biggest optimization"):
// disconnected empty regions of a Domineering board each become an
// independent ruleset.Ruleset component whose value sums into the
// whole.
func Components(b Board, isActive func(byte) bool, blank byte) []Board {
	seen := make([][]bool, b.Height)
	for y := range seen {
		seen[y] = make([]bool, b.Width)
	}

	var out []Board
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if seen[y][x] || !isActive(b.At(x, y)) {
				continue
			}
			region := floodFill(b, x, y, isActive, seen)
			out = append(out, isolate(b, region, blank))
		}
	}
	return out
}

func floodFill(b Board, sx, sy int, isActive func(byte) bool, seen [][]bool) []Cell {
	var region []Cell
	stack := []Cell{{X: sx, Y: sy}}
	seen[sy][sx] = true
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, Cell{X: c.X, Y: c.Y, Token: b.At(c.X, c.Y)})

		for _, off := range offsets {
			nx, ny := c.X+off[0], c.Y+off[1]
			if nx < 0 || nx >= b.Width || ny < 0 || ny >= b.Height {
				continue
			}
			if seen[ny][nx] || !isActive(b.At(nx, ny)) {
				continue
			}
			seen[ny][nx] = true
			stack = append(stack, Cell{X: nx, Y: ny})
		}
	}
	return region
}

// isolate returns a copy of b with every cell not in region replaced by
// blank.
func isolate(b Board, region []Cell, blank byte) Board {
	rows := make([][]byte, b.Height)
	for y := 0; y < b.Height; y++ {
		row := make([]byte, b.Width)
		for x := 0; x < b.Width; x++ {
			row[x] = blank
		}
		rows[y] = row
	}
	for _, c := range region {
		rows[c.Y][c.X] = c.Token
	}
	out, _ := NewBoard(rows)
	return out
}
