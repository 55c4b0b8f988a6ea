package predictor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-process-scheduler/backend/internal/scheduler"
)

func TestBuilderDeterministic(t *testing.T) {
	p := scheduler.NewProcess(42, "chrome", 12.5, 340)

	a := NewBuilder(7).Build(p)
	b := NewBuilder(7).Build(p)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different features:\n %+v\n %+v", a, b)
	}
}

func TestBuilderRanges(t *testing.T) {
	b := NewBuilder(1)
	for i := 0; i < 200; i++ {
		f := b.Build(scheduler.NewProcess(int32(i), "p", 0.2, 10))

		if f.Priority < 1 || f.Priority > 10 {
			t.Fatalf("priority %d outside 1..10", f.Priority)
		}
		if f.IOBurstEst < 50 || f.IOBurstEst > 300 {
			t.Fatalf("io burst %v outside 50..300", f.IOBurstEst)
		}
		if f.ArrivalTime < 1000 || f.ArrivalTime > 90000 {
			t.Fatalf("arrival %v outside 1000..90000", f.ArrivalTime)
		}
		if f.WaitingTime < 1000 || f.WaitingTime > 5000 {
			t.Fatalf("waiting %v outside 1000..5000", f.WaitingTime)
		}
		if f.TurnaroundTime < 3000 || f.TurnaroundTime > 8000 {
			t.Fatalf("turnaround %v outside 3000..8000", f.TurnaroundTime)
		}
		if f.CPUBurstEst != 1 {
			t.Fatalf("near-idle cpu should clamp to 1, got %v", f.CPUBurstEst)
		}
	}
}

func TestBuilderKeepsAssignedPriority(t *testing.T) {
	p := scheduler.Process{PID: 1, Name: "p", CPUUsage: 5, Priority: 4}

	f := NewBuilder(1).Build(p)
	if f.Priority != 4 {
		t.Fatalf("expected assigned priority 4, got %d", f.Priority)
	}
}

func TestEstimatorFeedsModel(t *testing.T) {
	est := NewEstimator(Static(150), NewBuilder(1))

	v, err := est.Predict(context.Background(), scheduler.NewProcess(1, "p", 10, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 150 {
		t.Fatalf("expected 150, got %v", v)
	}
}

func TestHTTPPredictor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"predicted_time_slice": 87.5}`))
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL, time.Second)
	v, err := p.Predict(context.Background(), Features{Priority: 5, CPUBurstEst: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 87.5 {
		t.Fatalf("expected 87.5, got %v", v)
	}
}

func TestHTTPPredictorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPPredictor(srv.URL, time.Second)
	if _, err := p.Predict(context.Background(), Features{}); err == nil {
		t.Fatal("expected an error on 500 response")
	}
}

func TestCachedPredictorFallsThrough(t *testing.T) {
	// Nothing listens here; every cache call fails and the wrapped predictor
	// must still answer.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	defer rdb.Close()

	c := NewCachedPredictor(NewEstimator(Static(42), NewBuilder(1)), rdb, time.Minute)
	v, err := c.Predict(context.Background(), scheduler.NewProcess(3, "p", 9, 12))
	if err != nil {
		t.Fatalf("cache failure must not fail the prediction: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

type fakeStore struct {
	data map[string]string
	sets int
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.sets++
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

type countingPredictor struct {
	v     float64
	calls int
}

func (c *countingPredictor) Predict(context.Context, scheduler.Process) (float64, error) {
	c.calls++
	return c.v, nil
}

func TestCachedPredictorHitsOnRepeatedProcess(t *testing.T) {
	kv := &fakeStore{data: map[string]string{}}
	model := &countingPredictor{v: 120}
	c := NewCachedPredictor(model, kv, time.Minute)

	// The same snapshot row shows up every cycle; only the first call may
	// reach the model.
	p := scheduler.NewProcess(42, "chrome", 12.5, 340)
	for i := 0; i < 3; i++ {
		v, err := c.Predict(context.Background(), p)
		if err != nil {
			t.Fatalf("cycle %d: unexpected error: %v", i, err)
		}
		if v != 120 {
			t.Fatalf("cycle %d: expected 120, got %v", i, v)
		}
	}
	if model.calls != 1 {
		t.Fatalf("expected one model call across repeated cycles, got %d", model.calls)
	}
	if kv.sets != 1 {
		t.Fatalf("expected one cache write, got %d", kv.sets)
	}
}

func TestCacheKeyStableAcrossCycles(t *testing.T) {
	p := scheduler.NewProcess(42, "chrome", 12.5, 340)

	if a, b := cacheKey(p), cacheKey(p); a != b {
		t.Fatalf("same process produced different keys: %s vs %s", a, b)
	}
	q := p
	q.PID = 43
	if cacheKey(p) == cacheKey(q) {
		t.Fatal("distinct processes must not share a key")
	}
}
