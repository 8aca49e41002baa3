package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/ucl-stats/internal/config"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
)

const fixtureCSV = "Player,Nation,Pos,Squad,Age,Born,MP,Starts,Min,90s,Gls,Ast\n" +
	"Raphinha,br BRA,FW,Barcelona,27-290,1996,14,14,\"1,170\",13.0,13,9\n" +
	"Harry Kane,eng ENG,FW,Bayern Munich,31-086,1993,14,13,\"1,090\",12.1,11,1\n"

func testConfig(t *testing.T, source string) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           "127.0.0.1:0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		DataSource:         source,
		DataFetchTimeout:   time.Second,
		StatsReferenceYear: 2024,
		ChartsCacheTTL:     time.Minute,
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing.csv"))
	cfg.HTTPAddr = ""

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_WatcherOnlyWhenEnabled(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "ucl.csv"))

	a, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.Watcher != nil {
		t.Fatalf("expected no watcher when DataWatch is off")
	}

	cfg.DataWatch = true
	a, err = New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.Watcher == nil {
		t.Fatalf("expected watcher when DataWatch is on")
	}
}

func TestNew_LoadsLocalDatasetAndServesPlayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucl.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	a, err := New(testConfig(t, path), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	snap, err := a.Dataset.Load(context.Background())
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if snap.TotalRecords != 2 {
		t.Fatalf("expected 2 records, got %d", snap.TotalRecords)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}
