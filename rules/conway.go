package rules

// Description is the plain-text statement of the rules, for any layer that wants to show it.
const Description = `Each cell has 8 neighbors.
A live cell with two or three live neighbors survives to the next generation, otherwise it dies.
A dead cell with exactly three live neighbors becomes alive in the next generation.`

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
