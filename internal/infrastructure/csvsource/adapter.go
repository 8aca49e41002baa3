package csvsource

import (
	"context"
	"time"

	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
)

// Adapter is the ingestion adapter: one fetch followed by one decode.
type Adapter struct {
	fetcher Fetcher
	logger  *logging.Logger
}

var _ player.Loader = (*Adapter)(nil)

func NewAdapter(fetcher Fetcher, logger *logging.Logger) *Adapter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Adapter{
		fetcher: fetcher,
		logger:  logger,
	}
}

func (a *Adapter) Source() string {
	return a.fetcher.Location()
}

func (a *Adapter) Load(ctx context.Context) ([]player.Player, error) {
	started := time.Now()

	a.logger.InfoContext(ctx, "fetching dataset", "source", a.fetcher.Location())
	raw, err := a.fetcher.Fetch(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "fetch dataset failed", "source", a.fetcher.Location(), "error", err)
		return nil, err
	}

	records, err := Decode(raw)
	if err != nil {
		a.logger.WarnContext(ctx, "decode dataset failed", "source", a.fetcher.Location(), "bytes", len(raw), "error", err)
		return nil, err
	}

	a.logger.InfoContext(ctx, "dataset decoded",
		"source", a.fetcher.Location(),
		"bytes", len(raw),
		"records", len(records),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return records, nil
}
