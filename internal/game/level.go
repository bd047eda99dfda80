package game

// Level layout constants. Bricks sit in a fixed 8-column grid between
// side margins, stacked downward from a top offset.
const (
	LevelCols       = 8
	LevelMaxRows    = 6
	levelSideMargin = 60.0
	levelTopOffset  = 60.0
	levelRowSpacing = 26.0
)

// RowsForLevel returns the number of brick rows for a level: grows with
// the level number, capped at LevelMaxRows.
func RowsForLevel(level int) int {
	rows := 3 + level
	if rows > LevelMaxRows {
		rows = LevelMaxRows
	}
	return rows
}

// HitsForBrick returns the hit count for the brick at row in the given
// level. Higher rows and higher levels yield tougher bricks, capped at 3.
func HitsForBrick(level, row int) int {
	hits := 1 + (row+level)/2
	if hits > 3 {
		hits = 3
	}
	return hits
}

// BuildLevel generates the brick grid for a level. The layout is fully
// determined by (level, row, col); only the ball's launch angle is ever
// randomized.
func BuildLevel(level int, fieldWidth float64) []Brick {
	rows := RowsForLevel(level)
	spacing := (fieldWidth - 2*levelSideMargin) / LevelCols

	bricks := make([]Brick, 0, rows*LevelCols)
	for r := 0; r < rows; r++ {
		for c := 0; c < LevelCols; c++ {
			bricks = append(bricks, Brick{
				X:    levelSideMargin + spacing*float64(c) + spacing/2,
				Y:    levelTopOffset + float64(r)*levelRowSpacing,
				Hits: HitsForBrick(level, r),
			})
		}
	}
	return bricks
}
