package game

var lineDirections = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// CountInLine returns the longest run of colour through (row, col) over the
// four line directions. Each direction counts both half-rays plus the origin.
func CountInLine(grid ObservedGrid, row, col int, color Color) int {
	size := len(grid)
	longest := 0

	for _, d := range lineDirections {
		count := 1

		r, c := row+d[0], col+d[1]
		for r >= 0 && r < size && c >= 0 && c < size && grid[r][c] == color {
			count++
			r += d[0]
			c += d[1]
		}

		r, c = row-d[0], col-d[1]
		for r >= 0 && r < size && c >= 0 && c < size && grid[r][c] == color {
			count++
			r -= d[0]
			c -= d[1]
		}

		if count > longest {
			longest = count
		}
	}
	return longest
}

// HasWin scans every cell of colour, not just the last placed one: a single
// observation can complete lines anywhere on the board.
func HasWin(grid ObservedGrid, color Color, winLength int) bool {
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] != color {
				continue
			}
			if CountInLine(grid, r, c, color) >= winLength {
				return true
			}
		}
	}
	return false
}
