package morph

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/calab/torusmorph/torus"
)

// parallelThreshold is the minimum batch size worth splitting across
// workers. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 2048

// StageFunc evaluates one morph stage at a toroidal coordinate pair.
type StageFunc func(t1, t2, p float64) r3.Vec

// FlatStage binds FlatToCylinder to a cylinder height.
func FlatStage(height float64) StageFunc {
	return func(t1, t2, p float64) r3.Vec {
		return FlatToCylinder(t1, t2, p, height)
	}
}

// TwistStage binds TwistCylinder to a cylinder height.
func TwistStage(height float64) StageFunc {
	return func(t1, t2, p float64) r3.Vec {
		return TwistCylinder(t1, t2, p, height)
	}
}

// TorusStage binds BendToTorus to a bend parametrization.
func TorusStage(b TorusBend) StageFunc {
	return func(t1, t2, p float64) r3.Vec {
		return BendToTorus(t1, t2, p, b)
	}
}

// Map evaluates fn at progress p over every phase, preserving input
// order. Large batches are split into one chunk per worker; chunks write
// disjoint output ranges, so the only synchronization is the final wait.
func Map(phases []torus.Phase, p float64, fn StageFunc) []r3.Vec {
	n := len(phases)
	out := make([]r3.Vec, n)
	if n == 0 {
		return out
	}

	if n < parallelThreshold {
		mapChunk(phases, out, 0, n, p, fn)
		return out
	}

	numWorkers := runtime.GOMAXPROCS(0)
	chunkSize := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			mapChunk(phases, out, start, end, p, fn)
		}(start, end)
	}
	wg.Wait()
	return out
}

func mapChunk(phases []torus.Phase, out []r3.Vec, start, end int, p float64, fn StageFunc) {
	for i := start; i < end; i++ {
		out[i] = fn(phases[i].T1, phases[i].T2, p)
	}
}
