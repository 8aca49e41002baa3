package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
	"github.com/riskibarqy/ucl-stats/internal/platform/resilience"
)

const datasetFlightKey = "dataset"

// LoadStatus is what the presentation layer shows around the data: the
// loading flag, the last user-visible error and what is currently loaded.
type LoadStatus struct {
	Source   string
	Loading  bool
	Error    string
	LoadedAt time.Time
	Records  int
	Version  uint64
}

// DatasetService runs the one-shot ingestion and hands the result to the
// engine. A failed load never touches the current record set.
type DatasetService struct {
	loader player.Loader
	engine *QueryEngine
	logger *logging.Logger
	flight resilience.SingleFlight[Snapshot]
	now    func() time.Time

	mu       sync.RWMutex
	lastErr  string
	loadedAt time.Time
}

func NewDatasetService(loader player.Loader, engine *QueryEngine, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		loader: loader,
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches and parses the dataset, then replaces the engine's record
// set. Concurrent callers share one in-flight load. There is no retry; a
// failure is reported and the caller may call Load again. The shared load
// ignores cancellation of whichever caller started it, so one disconnecting
// client cannot fail the load for the others.
func (s *DatasetService) Load(ctx context.Context) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Load")
	defer span.End()

	flightCtx := context.WithoutCancel(ctx)
	snap, err, shared := s.flight.Do(datasetFlightKey, func() (Snapshot, error) {
		return s.load(flightCtx)
	})
	if shared {
		s.logger.DebugContext(ctx, "joined in-flight dataset load")
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *DatasetService) load(ctx context.Context) (Snapshot, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		message := describeLoadError(err)
		s.mu.Lock()
		s.lastErr = message
		s.mu.Unlock()

		s.logger.ErrorContext(ctx, "dataset load failed", "source", s.loader.Source(), "error", err)
		return Snapshot{}, fmt.Errorf("load dataset from %s: %w", s.loader.Source(), err)
	}

	snap := s.engine.ReplaceRecords(ctx, records)

	s.mu.Lock()
	s.lastErr = ""
	s.loadedAt = s.now()
	s.mu.Unlock()

	return snap, nil
}

func (s *DatasetService) Status(ctx context.Context) LoadStatus {
	snap := s.engine.Snapshot(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return LoadStatus{
		Source:   s.loader.Source(),
		Loading:  s.flight.InFlight(datasetFlightKey),
		Error:    s.lastErr,
		LoadedAt: s.loadedAt,
		Records:  snap.TotalRecords,
		Version:  snap.Version,
	}
}

func describeLoadError(err error) string {
	switch {
	case crerr.Is(err, player.ErrTransport):
		return "Failed to fetch statistics data: " + err.Error()
	case crerr.Is(err, player.ErrParse):
		return "Failed to parse statistics data: " + err.Error()
	default:
		return "Failed to load statistics data: " + err.Error()
	}
}
