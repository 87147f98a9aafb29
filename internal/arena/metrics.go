package arena

// InUse returns the number of bytes between the start of the arena and the
// cursor, including alignment padding and any blocks skipped because they
// were too small for a request.
func (a *Arena) InUse() int {
	return a.base + int(a.off)
}

// Capacity returns the total size of all blocks.
func (a *Arena) Capacity() int {
	return a.reserved
}

// NumBlocks returns the number of blocks currently held.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Peak returns the largest InUse value observed since the arena was created.
func (a *Arena) Peak() int {
	return a.peak
}

// Utilization returns InUse / Capacity, or 0 for an arena with no blocks.
func (a *Arena) Utilization() float64 {
	if a.reserved == 0 {
		return 0
	}
	return float64(a.InUse()) / float64(a.reserved)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		InUse:       a.InUse(),
		Capacity:    a.Capacity(),
		NumBlocks:   a.NumBlocks(),
		Peak:        a.Peak(),
		Owned:       len(a.owned),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	InUse       int     // Bytes up to the cursor
	Capacity    int     // Total block bytes
	NumBlocks   int     // Number of blocks
	Peak        int     // High-water mark of InUse
	Owned       int     // Heap objects tied to the arena
	Utilization float64 // InUse / Capacity (0.0-1.0)
}
