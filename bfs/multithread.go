package bfs

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/kernel"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// workerPhase is the two-phase go/done handshake state of one worker.
type workerPhase int

const (
	phaseIdle workerPhase = iota
	phaseGo
	phaseDone
)

// worker holds one goroutine's slice of the current frontier and the
// successors it produces from it. Workers never read or write another
// worker's input/output slice; the controller owns all cross-worker
// movement (the swap and the rebalance).
type worker struct {
	mu    sync.Mutex
	cond  *sync.Cond
	phase workerPhase
	input []mazestate.JointState
	// output accumulates across calls to amortize allocation; callers must
	// reset it via output[:0] before each step.
	output []mazestate.JointState
}

func newWorker() *worker {
	w := &worker{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// runMultiThreaded partitions the frontier across Options.Workers
// goroutines and advances them one BFS depth level at a time, rebalancing
// load between levels. table must be a concurrency-safe backend
// (deltatable.AtomicBitsetXor or deltatable.AtomicByteCAS); the caller is
// responsible for that choice.
func runMultiThreaded(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table, bound int, o Options) (Result, error) {
	workers := make([]*worker, o.Workers)
	for i := range workers {
		workers[i] = newWorker()
	}
	workers[0].input = []mazestate.JointState{mazestate.Start()}

	var shutdown atomic.Bool
	var wg sync.WaitGroup
	wg.Add(len(workers))
	for _, w := range workers {
		go workerLoop(w, maps, dims, respectHoles, table, &shutdown, &wg)
	}

	depth := 0
	total := 1
	for total > 0 && depth < bound && !goalReached(dims, table) {
		signalGo(workers)
		waitDone(workers)

		total = 0
		for _, w := range workers {
			w.input, w.output = w.output, w.input[:0]
			total += len(w.input)
		}
		depth++
		o.OnStep(depth, total)

		if total > 0 {
			rebalance(workers, total)
		}
	}

	shutdown.Store(true)
	signalGo(workers)
	wg.Wait()

	return Result{Reached: goalReached(dims, table), Depth: depth}, nil
}

func signalGo(workers []*worker) {
	for _, w := range workers {
		w.mu.Lock()
		w.phase = phaseGo
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

func waitDone(workers []*worker) {
	for _, w := range workers {
		w.mu.Lock()
		for w.phase != phaseDone {
			w.cond.Wait()
		}
		w.mu.Unlock()
	}
}

func workerLoop(w *worker, maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table, shutdown *atomic.Bool, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		w.mu.Lock()
		for w.phase != phaseGo {
			w.cond.Wait()
		}
		if shutdown.Load() {
			w.mu.Unlock()
			return
		}
		input := w.input
		w.mu.Unlock()

		output := make([]mazestate.JointState, 0, len(input)*2)
		for _, s := range input {
			for _, succ := range kernel.Expand(s, maps, dims, respectHoles, table) {
				output = append(output, succ.State)
			}
		}

		w.mu.Lock()
		w.output = output
		w.phase = phaseDone
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

// rebalance redistributes each worker's frontier slice so that none falls
// far below the per-worker average, moving contiguous tails from
// over-full workers to under-full ones (§4.4 step 4).
func rebalance(workers []*worker, total int) {
	T := len(workers)
	avg := total / T
	if avg == 0 {
		return
	}

	i, j := 0, 0
	for i < T {
		if len(workers[i].input) >= avg {
			i++
			continue
		}
		for j < T && len(workers[j].input) <= avg {
			j++
		}
		if j >= T {
			break
		}

		need := avg - len(workers[i].input)
		have := len(workers[j].input) - avg
		transfer := need
		if have < transfer {
			transfer = have
		}
		if transfer <= 0 {
			j++
			continue
		}

		src := workers[j].input
		n := len(src)
		moved := src[n-transfer:]
		workers[i].input = append(workers[i].input, moved...)
		workers[j].input = src[:n-transfer]

		if len(workers[i].input) >= avg {
			i++
		}
		if len(workers[j].input) <= avg {
			j++
		}
	}
}
