package tuplespace

import (
	"sync"
	"testing"
)

func TestSequenceAllocator_MonotonicPerName(t *testing.T) {
	dir := t.TempDir()
	s := newSequenceAllocator(dir, newAtomicOps(dir))

	first, err := s.next("job")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := s.next("job")
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	if first != "00000001" {
		t.Errorf("first = %q, want %q", first, "00000001")
	}
	if second != "00000002" {
		t.Errorf("second = %q, want %q", second, "00000002")
	}
}

func TestSequenceAllocator_IndependentPerName(t *testing.T) {
	dir := t.TempDir()
	s := newSequenceAllocator(dir, newAtomicOps(dir))

	a, err := s.next("alpha")
	if err != nil {
		t.Fatalf("next(alpha): %v", err)
	}
	b, err := s.next("beta")
	if err != nil {
		t.Fatalf("next(beta): %v", err)
	}

	if a != "00000001" || b != "00000001" {
		t.Errorf("independent counters should both start at 1, got alpha=%q beta=%q", a, b)
	}
}

func TestSequenceAllocator_ConcurrentNextNeverDuplicates(t *testing.T) {
	dir := t.TempDir()
	s := newSequenceAllocator(dir, newAtomicOps(dir))

	const n = 30
	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := s.next("job")
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			results <- tok
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for tok := range results {
		if seen[tok] {
			t.Errorf("duplicate sequence token issued: %q", tok)
		}
		seen[tok] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct tokens, got %d", n, len(seen))
	}
}
