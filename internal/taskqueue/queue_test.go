package taskqueue

import (
	"sync"
	"testing"
)

func TestDrainAll_EmptyQueueIsNoop(t *testing.T) {
	q := New()
	if n := q.DrainAll(); n != 0 {
		t.Fatalf("DrainAll() = %d, want 0", n)
	}
	if n := q.DrainAll(); n != 0 {
		t.Fatalf("second DrainAll() = %d, want 0", n)
	}
}

func TestDrainAll_RunsInPushOrder(t *testing.T) {
	var q Queue
	var order []string

	q.Push(func() { order = append(order, "A-start"); order = append(order, "A-end") })
	q.Push(func() { order = append(order, "B") })

	if n := q.DrainAll(); n != 2 {
		t.Fatalf("DrainAll() = %d, want 2", n)
	}
	want := []string{"A-start", "A-end", "B"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after drain, want 0", q.Len())
	}
}

func TestDrainAll_PanickingTaskDoesNotStopDrain(t *testing.T) {
	q := New()
	ran := 0

	q.Push(func() { ran++ })
	q.Push(func() { panic("boom") })
	q.Push(func() { ran++ })

	if n := q.DrainAll(); n != 3 {
		t.Fatalf("DrainAll() = %d, want 3", n)
	}
	if ran != 2 {
		t.Fatalf("ran = %d, want 2 tasks around the panic", ran)
	}
}

func TestDrainAll_TasksPushedDuringDrainWaitForNextDrain(t *testing.T) {
	q := New()
	ran := []string{}

	q.Push(func() {
		ran = append(ran, "first")
		q.Push(func() { ran = append(ran, "second") })
	})

	if n := q.DrainAll(); n != 1 {
		t.Fatalf("DrainAll() = %d, want 1", n)
	}
	if len(ran) != 1 || q.Len() != 1 {
		t.Fatalf("ran = %v, Len() = %d; want nested task deferred", ran, q.Len())
	}
	q.DrainAll()
	if len(ran) != 2 || ran[1] != "second" {
		t.Fatalf("ran = %v, want [first second]", ran)
	}
}

func TestPush_ConcurrentProducers(t *testing.T) {
	q := New()
	const producers, perProducer = 8, 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(func() {})
			}
		}()
	}
	wg.Wait()

	if n := q.DrainAll(); n != producers*perProducer {
		t.Fatalf("DrainAll() = %d, want %d", n, producers*perProducer)
	}
}

func TestPush_PerProducerOrderPreserved(t *testing.T) {
	q := New()
	var seen []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			q.Push(func() { seen = append(seen, i) })
		}
	}()
	<-done

	q.DrainAll()
	if len(seen) != 50 {
		t.Fatalf("len(seen) = %d, want 50", len(seen))
	}
	for i, v := range seen {
		if v != i {
			t.Fatalf("seen[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestClose_RejectsPushesAndDropsPending(t *testing.T) {
	q := New()
	ran := false
	q.Push(func() { ran = true })
	q.Close()

	if !q.Closed() {
		t.Fatal("Closed() = false after Close")
	}
	if q.Push(func() { ran = true }) {
		t.Fatal("Push() = true on closed queue, want false")
	}
	if n := q.DrainAll(); n != 0 {
		t.Fatalf("DrainAll() = %d on closed queue, want 0", n)
	}
	if ran {
		t.Fatal("task ran after Close")
	}
}

func TestPush_NilTaskRejected(t *testing.T) {
	q := New()
	if q.Push(nil) {
		t.Fatal("Push(nil) = true, want false")
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", q.Len())
	}
}
