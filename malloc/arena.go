// Functions and methods are not thread safe.

package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/stavros-mhs/aralloc/api"

// Arena is a region allocator. Allocations are bump allocated from the
// current chunk and reclaimed in bulk, by Reset or Release, never
// individually. Arenas can be created with following parameters:
//
//   kind     : "fixed" for one block that never grows, "dynamic" for
//              an arena that grows on demand.
//   growth   : growth strategy for dynamic arenas, "chain" or "copy".
//   capacity : up front reservation, `fixed.capacity` for fixed
//              arenas, `dynamic.initial` for dynamic arenas.
type Arena struct {
	kind   string // "fixed" or "dynamic"
	growth string // "chain" or "copy"
	grower func(arena *Arena, aligned int64) ([]byte, error)

	head *chunk // first chunk, stable until Release
	curr *chunk // chunk currently being filled

	nchunks  int64
	released bool

	// settings
	fixedcap int64
	initial  int64
}

// NewArena create a new arena of `kind`, either "fixed" or "dynamic".
// Returns ErrorInvalidKind for an unknown kind and ErrorNoSpace when
// the OS cannot supply the initial reservation. Refer Defaultsettings
// for the configurable parameters.
func NewArena(kind string, setts s.Settings) (*Arena, error) {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena := &Arena{
		kind:     kind,
		growth:   setts.String("growth"),
		fixedcap: setts.Int64("fixed.capacity"),
		initial:  setts.Int64("dynamic.initial"),
	}
	var size int64
	switch kind {
	case "fixed":
		size = arena.fixedcap
	case "dynamic":
		size = arena.initial
	default:
		return nil, api.ErrorInvalidKind
	}
	switch arena.growth {
	case "chain":
		arena.grower = chainfactory()
	case "copy":
		arena.grower = copyfactory()
	default:
		panicerr("invalid growth strategy %q", arena.growth)
	}
	if size <= 0 || size > Maxarenasize {
		panicerr("arena capacity %v beyond limits", size)
	}
	head, err := newchunk(size)
	if err != nil {
		debugf("malloc: initial reservation of %v: %v\n", size, err)
		return nil, api.ErrorNoSpace
	}
	arena.head, arena.curr, arena.nchunks = head, head, 1
	infof("malloc: %q arena with %v reserved\n",
		kind, humanize.IBytes(uint64(head.capacity)))
	return arena, nil
}

//---- operations

// Alloc implement api.Mallocer{} interface. Allocate a block of `n`
// bytes from the arena. The request is rounded up to Alignment, a zero
// byte request still consumes one Alignment unit so that successive
// blocks never share an address. Fixed arenas return ErrorNoSpace once
// the reservation is full, dynamic arenas return ErrorNoSpace only
// when growing fails, in which case the arena is left unchanged.
func (arena *Arena) Alloc(n int64) ([]byte, error) {
	if arena.released {
		return nil, api.ErrorReleased
	} else if n < 0 {
		panicerr("Alloc size %v is negative", n)
	}
	aligned := alignup(n)
	if aligned == 0 {
		aligned = Alignment
	}
	if block, ok := arena.curr.alloc(aligned); ok {
		return block[:n], nil
	}
	if arena.kind == "fixed" {
		return nil, api.ErrorNoSpace
	}
	block, err := arena.grower(arena, aligned)
	if err != nil {
		return nil, err
	}
	return block[:n], nil
}

// Reset implement api.Mallocer{} interface. Rewind every chunk's fill
// offset to zero, keeping all reservations, and point the arena back
// at its head chunk. Contents are not zeroed, blocks handed out before
// the reset must not be read once new allocations overwrite them.
// Reset on a released arena is a no-op.
func (arena *Arena) Reset() {
	if arena.released {
		return
	}
	for ch := arena.head; ch != nil; ch = ch.next {
		ch.offset = 0
	}
	arena.curr = arena.head
}

// Release implement api.Mallocer{} interface. Walk the whole chain and
// return every reservation to the OS, then poison the handle. Release
// on an already released arena returns ErrorReleased. A failing unmap
// indicates a corrupted handle and panics.
func (arena *Arena) Release() error {
	if arena.released {
		return api.ErrorReleased
	}
	for ch := arena.head; ch != nil; {
		next := ch.next
		if err := ch.release(); err != nil {
			errorf("malloc: releasing %q arena: %v\n", arena.kind, err)
			panicerr("release failed: %v", err)
		}
		ch = next
	}
	arena.head, arena.curr, arena.nchunks = nil, nil, 0
	arena.released = true
	infof("malloc: %q arena released\n", arena.kind)
	return nil
}

//---- growth strategies

// chainfactory grow by appending a fresh chunk to the chain. Filled
// memory never moves, blocks handed out before the growth stay valid.
// Chunks appended before a Reset are reused, in chain order, before
// any new reservation is made.
func chainfactory() func(*Arena, int64) ([]byte, error) {
	return func(arena *Arena, aligned int64) ([]byte, error) {
		curr := arena.curr
		for curr.next != nil {
			curr = curr.next
			if block, ok := curr.alloc(aligned); ok {
				arena.curr = curr
				return block, nil
			}
		}
		// double the exhausted chunk, unless the request is bigger.
		size := curr.capacity * 2
		if size < aligned {
			size = aligned
		}
		ch, err := newchunk(size)
		if err != nil {
			debugf("malloc: chain growth to %v: %v\n", size, err)
			return nil, api.ErrorNoSpace
		}
		curr.next, arena.curr = ch, ch
		arena.nchunks++
		block, _ := ch.alloc(aligned)
		return block, nil
	}
}

// copyfactory grow by reserving a bigger block, moving the filled
// bytes into it and releasing the old block. The arena stays a single
// contiguous region, at the cost of invalidating every block handed
// out before the growth.
func copyfactory() func(*Arena, int64) ([]byte, error) {
	return func(arena *Arena, aligned int64) ([]byte, error) {
		old := arena.curr
		size := old.capacity
		for size < old.offset+aligned {
			size *= 2
		}
		ch, err := newchunk(size)
		if err != nil {
			debugf("malloc: copy growth to %v: %v\n", size, err)
			return nil, api.ErrorNoSpace
		}
		copy(ch.base, old.base[:old.offset])
		ch.offset = old.offset
		if err := old.release(); err != nil {
			panicerr("release of outgrown block failed: %v", err)
		}
		arena.head, arena.curr = ch, ch
		block, _ := ch.alloc(aligned)
		return block, nil
	}
}

//---- statistics and maintenance

// Info implement api.Mallocer{} interface. Capacity and heap count the
// page granular reservations, alloc the bytes handed out, overhead the
// arena and chunk headers.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	overhead = int64(unsafe.Sizeof(*arena))
	for ch := arena.head; ch != nil; ch = ch.next {
		capacity += ch.capacity
		heap += int64(len(ch.base))
		alloc += ch.offset
		overhead += int64(unsafe.Sizeof(*ch))
	}
	return
}

// Allocated implement api.Mallocer{} interface.
func (arena *Arena) Allocated() int64 {
	allocated := int64(0)
	for ch := arena.head; ch != nil; ch = ch.next {
		allocated += ch.offset
	}
	return allocated
}

// Available implement api.Mallocer{} interface.
func (arena *Arena) Available() int64 {
	available := int64(0)
	for ch := arena.head; ch != nil; ch = ch.next {
		available += ch.capacity - ch.offset
	}
	return available
}

// Utilization implement api.Mallocer{} interface. Chunk sizes and
// their fill percentage, in chain order.
func (arena *Arena) Utilization() ([]int, []float64) {
	sizes, fills := []int{}, []float64{}
	for ch := arena.head; ch != nil; ch = ch.next {
		sizes = append(sizes, int(ch.capacity))
		fills = append(fills, (float64(ch.offset)/float64(ch.capacity))*100)
	}
	return sizes, fills
}

// Kind return the arena kind, "fixed" or "dynamic".
func (arena *Arena) Kind() string {
	return arena.kind
}

// Chunks return the number of chunks in the chain.
func (arena *Arena) Chunks() int64 {
	return arena.nchunks
}

// Logstatistics log arena accounting at info level, prefixed by
// `prefix`.
func (arena *Arena) Logstatistics(prefix string) {
	capacity, heap, alloc, overhead := arena.Info()
	fmsg := "%v capacity: %v heap: %v alloc: %v overhead: %v chunks: %v\n"
	infof(fmsg, prefix,
		humanize.IBytes(uint64(capacity)), humanize.IBytes(uint64(heap)),
		humanize.IBytes(uint64(alloc)), overhead, arena.nchunks)
}
