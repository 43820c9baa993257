package api

// Mallocer interface for arena style memory management.
type Mallocer interface {
	// Alloc allocate a block of `n` bytes from the arena. Allocated
	// blocks are always 16-byte aligned within their reservation.
	Alloc(n int64) ([]byte, error)

	// Reset rewind the arena to its initial empty state, keeping
	// every reservation for reuse.
	Reset()

	// Release the arena and all its reservations back to the OS.
	Release() error

	// Info of memory accounting for this arena.
	Info() (capacity, heap, alloc, overhead int64)

	// Allocated return bytes handed out to the application.
	Allocated() int64

	// Available return free bytes across current reservations.
	Available() int64

	// Utilization per chunk, in chain order.
	Utilization() ([]int, []float64)
}
