package brackets

import "fmt"

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// seedPositions returns the 1-based seed occupying each slot of a full
// bracket of the given size (a power of two). The order guarantees that
// seeds 1 and 2 cannot meet before the final and that byes (seeds beyond
// the participant count) fall against the highest seeds first.
//
// For size 8 the slot order is 1,8,4,5,2,7,3,6.
func seedPositions(size int) []int {
	positions := []int{1}
	for len(positions) < size {
		expanded := make([]int, 0, len(positions)*2)
		complement := len(positions)*2 + 1
		for _, seed := range positions {
			expanded = append(expanded, seed, complement-seed)
		}
		positions = expanded
	}
	return positions
}

// roundName labels elimination rounds counted from the final backwards.
func roundName(number, total int) string {
	switch total - number {
	case 0:
		return "Final"
	case 1:
		return "Semi-Finals"
	case 2:
		return "Quarter-Finals"
	default:
		return fmt.Sprintf("Round %d", number)
	}
}
