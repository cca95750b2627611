package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/platform/logging"
)

const maxWarmupWorkers = 8

type WarmupResult struct {
	SportCount   int                `json:"sport_count"`
	WorkerCount  int                `json:"worker_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	Tasks        []WarmupTaskResult `json:"tasks"`
}

type WarmupTaskResult struct {
	Sport      string `json:"sport"`
	Records    int    `json:"records"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

const (
	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"
)

// CatalogWarmer preloads the player lists of every sport that exposes them,
// so the first chart page load is served from cache.
type CatalogWarmer struct {
	catalog *SportCatalog
	players player.Repository
	workers int
	logger  *logging.Logger
}

func NewCatalogWarmer(catalog *SportCatalog, players player.Repository, workers int, logger *logging.Logger) *CatalogWarmer {
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogWarmer{
		catalog: catalog,
		players: players,
		workers: workers,
		logger:  logger,
	}
}

func (w *CatalogWarmer) Warm(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogWarmer.Warm")
	defer span.End()

	targets := make([]sport.Sport, 0)
	for _, item := range w.catalog.List() {
		if item.Supports(sport.FeaturePlayers) {
			targets = append(targets, item)
		}
	}

	workerCount := normalizeWarmupWorkerCount(w.workers, len(targets))
	result := WarmupResult{
		SportCount:  len(targets),
		WorkerCount: workerCount,
		Tasks:       make([]WarmupTaskResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupTaskResult, len(targets))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, target := range targets {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupTaskResult{Sport: target.Key, Status: warmupStatusSuccess}
			items, err := w.players.ListBySport(ctx, target)
			if err != nil {
				row.Status = warmupStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				w.logger.WarnContext(ctx, "warm player catalog failed", "sport", target.Key, "error", err)
			} else {
				row.Records = len(items)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool { return result.Tasks[i].Sport < result.Tasks[j].Sport })

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	w.logger.InfoContext(ctx, "player catalog warmed",
		"sports", result.SportCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func normalizeWarmupWorkerCount(requested, tasks int) int {
	n := requested
	if n <= 0 {
		n = 1
	}
	if n > maxWarmupWorkers {
		n = maxWarmupWorkers
	}
	if tasks > 0 && n > tasks {
		n = tasks
	}
	return n
}
