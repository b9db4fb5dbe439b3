package rule

// Descriptor packs a cell's own state together with the ON/OFF/UNK counts
// among its eight neighbors into a single byte, used to index Table.Transit
// and Table.Implic. The encoding packs (centerState, offCount, onCount,
// unkCount) into 8 bits by summing neighbor states (OFF=0, ON=1, UNK=0x10)
// and folding the high nibble in when any neighbor is unknown.
func Descriptor(state State, neighborSum int) int {
	if neighborSum&0x88 != 0 {
		return neighborSum + int(state)*2 + 0x11
	}
	return neighborSum*2 + int(state)
}

// descFromCounts builds the descriptor for a cell in the given state with
// exactly offCount known-OFF and onCount known-ON neighbors (the remaining
// 8-offCount-onCount neighbors are UNK).
func descFromCounts(state State, offCount, onCount int) int {
	unkCount := 8 - offCount - onCount
	sum := onCount + unkCount*int(UNK)
	return Descriptor(state, sum)
}
