package malloc

import s "github.com/bnclabs/gosettings"

// Alignment blocks returned by an arena always start at multiples of
// Alignment and consume multiples of Alignment, a zero byte request
// consumes one full unit.
const Alignment = int64(16)

// Pagesize reservation granularity, blocks are mapped from the OS in
// multiples of Pagesize.
const Pagesize = int64(4096)

// Fixedcapacity default capacity for a "fixed" arena, 16 pages. Can be
// overridden with the `fixed.capacity` setting.
const Fixedcapacity = Pagesize * 16

// Dynamicinitial default initial reservation for a "dynamic" arena,
// one page. Can be overridden with the `dynamic.initial` setting.
const Dynamicinitial = Pagesize

// Maxarenasize maximum size of a single reservation in an arena.
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Defaultsettings for NewArena().
//
// "growth" (string, default: "chain")
//		Growth strategy for "dynamic" arenas, can be "chain" or
//		"copy". "chain" appends a new chunk when the current one is
//		exhausted and never moves filled memory, blocks handed out
//		before the growth stay valid. "copy" reserves a bigger block,
//		moves the filled bytes into it and releases the old block,
//		every block handed out before the growth is invalidated.
//		Ignored by "fixed" arenas.
//
// "fixed.capacity" (int64, default: Fixedcapacity)
//		Bytes reserved up front by a "fixed" arena, rounded up to
//		Pagesize.
//
// "dynamic.initial" (int64, default: Dynamicinitial)
//		Initial reservation for a "dynamic" arena, rounded up to
//		Pagesize.
func Defaultsettings() s.Settings {
	return s.Settings{
		"growth":          "chain",
		"fixed.capacity":  Fixedcapacity,
		"dynamic.initial": Dynamicinitial,
	}
}
