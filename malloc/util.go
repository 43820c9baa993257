package malloc

import "fmt"

// alignup round n up to the next multiple of Alignment.
func alignup(n int64) int64 {
	return (n + Alignment - 1) &^ (Alignment - 1)
}

// pageup round n up to the next multiple of Pagesize.
func pageup(n int64) int64 {
	return (n + Pagesize - 1) &^ (Pagesize - 1)
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
