package rules

const (
	// BirthNeighbors is the live neighbor count that makes any cell alive.
	BirthNeighbors = 3
	// SurvivalNeighbors is the extra live neighbor count that keeps a live cell alive.
	SurvivalNeighbors = 2
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A cell with exactly three live neighbors is alive in the next generation whether it
was alive or not, which covers both survival and birth. A live cell with exactly two
live neighbors survives. Every other cell ends dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurvivalNeighbors)
}
