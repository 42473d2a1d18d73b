//go:build test

package segment

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var probeWords = []string{
	"competitive", "countless", "counterproductive", "compilation", "tester", "tried",
	"computeless", "zebra", "clearest", "courting", "trier", "comatose",
}

// syntheticCorpus derives a larger corpus by combining stems and endings.
func syntheticCorpus() []string {
	stems := []string{"compet", "comput", "count", "court", "test", "clear", "clean", "compil", "trie", "walk", "talk", "form"}
	endings := []string{"", "e", "ed", "er", "ers", "ing", "ings", "ive", "ively", "less", "ness", "ation", "able"}
	var words []string
	for _, s := range stems {
		for _, e := range endings {
			words = append(words, s+e)
		}
	}
	return append(words, strings.Fields(testCorpus)...)
}

func newMemEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(syntheticCorpus(), Options{MinSuffixLen: 2, ByFrequency: true})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{100, 500, 1000, 2500}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 1000},
		{workers: 2, iterationsPerWorker: 500},
		{workers: 4, iterationsPerWorker: 250},
		{workers: 8, iterationsPerWorker: 125},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			runConcurrentMemoryTest(t, config.workers, config.iterationsPerWorker)
		})
	}
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	eng := newMemEngine(t)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, w := range probeWords {
			_ = eng.Split(w)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	totalOps := iterations * len(probeWords)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 100 {
		t.Errorf("retained memory per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

// runConcurrentMemoryTest shares one engine between readers; Split must not mutate it.
func runConcurrentMemoryTest(t *testing.T, workers, iterationsPerWorker int) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	eng := newMemEngine(t)
	want := eng.Segment()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	mismatches := make([]int, workers)
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for iter := 0; iter < iterationsPerWorker; iter++ {
				for w, splits := range want {
					if fmt.Sprint(eng.Split(w)) != fmt.Sprint(splits) {
						mismatches[id]++
					}
				}
			}
		}(worker)
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	totalOps := workers * iterationsPerWorker * len(want)
	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("workers=%d iter_per_worker=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, iterationsPerWorker, totalOps, memDelta, memPerOp, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	for id, n := range mismatches {
		if n > 0 {
			t.Errorf("worker %d saw %d splits differing from Segment()", id, n)
		}
	}
	if memPerOp > 100 {
		t.Errorf("retained memory per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
