package signal

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// chunkSize is the number of binaries handled by one unit of work. It is
// fixed so that the merge order does not depend on the worker count.
const chunkSize = 1024

func chunkCount(n int) int {
	return (n + chunkSize - 1) / chunkSize
}

// forEachChunk calls fn(c) for c in [0, n) using up to GOMAXPROCS goroutines.
// fn must only write to state owned by chunk c.
func forEachChunk(n int, fn func(c int)) {
	workers := min(runtime.GOMAXPROCS(0), n)
	if workers <= 1 {
		for c := range n {
			fn(c)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				c := int(next.Add(1)) - 1
				if c >= n {
					return
				}
				fn(c)
			}
		}()
	}
	wg.Wait()
}
