package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("dataset", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != "ok" {
				t.Errorf("unexpected value: %q", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_InFlight(t *testing.T) {
	var g SingleFlight[int]
	release := make(chan struct{})
	started := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = g.Do("dataset", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	if !g.InFlight("dataset") {
		t.Fatalf("expected dataset call to be in flight")
	}
	close(release)
	<-done

	if g.InFlight("dataset") {
		t.Fatalf("expected dataset call to be finished")
	}
}

func TestSingleFlight_ErrorIsNotCached(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err, _ := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Fatalf("expected second call to run, got %d %v", got, err)
	}
}
