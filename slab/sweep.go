package slab

import (
	"runtime"
	"sync"
)

// Result holds one forward evaluation of a sample sweep.
type Result struct {
	Sample             Sample
	UR1, UT1, URU, UTU float64
	Err                error
}

// MapRT evaluates every sample concurrently and returns results in input
// order. Each evaluation owns its quadrature and matrices, so workers
// share nothing mutable. workers <= 0 uses one worker per CPU.
func MapRT(samples []Sample, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(samples) {
		workers = len(samples)
	}
	var (
		results = make([]Result, len(samples))
		jobs    = make(chan int)
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := samples[i]
				ur1, ut1, uru, utu, err := ComputeRT(s)
				results[i] = Result{Sample: s, UR1: ur1, UT1: ut1, URU: uru, UTU: utu, Err: err}
			}
		}()
	}
	for i := range samples {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
