package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/rivsy/rivsy/pkg/domain"
)

//go:generate moq -out mocks/feed_selector.go -pkg mocks -skip-ensure -fmt goimports . FeedSelector
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/refresh_recorder.go -pkg mocks -skip-ensure -fmt goimports . RefreshRecorder

// FeedSelector selects feeds due for refresh. Only feeds with at least one
// subscription in the requested plan band are eligible.
type FeedSelector interface {
	GetDueFeeds(ctx context.Context, cutoff time.Time, paid bool) ([]int64, error)
}

// Refresher runs the ingestion pipeline for one feed
type Refresher interface {
	Refresh(ctx context.Context, feedID int64) (domain.RefreshResult, error)
}

// RefreshRecorder is the best-effort cache side channel. Failures are logged
// and ignored, the recorder never affects correctness.
type RefreshRecorder interface {
	RecordRefresh(ctx context.Context, feedID int64, at time.Time) error
}

// Scheduler selects due feeds per plan tier and drives their refresh through
// a bounded worker pool. Selection itself is stateless and safe to call
// concurrently; the ticker loop is the external trigger the selection
// contract requires.
type Scheduler struct {
	feeds     FeedSelector
	refresher Refresher
	recorder  RefreshRecorder

	checkInterval time.Duration
	maxWorkers    int
	now           func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Feeds         FeedSelector
	Refresher     Refresher
	Recorder      RefreshRecorder // optional
	CheckInterval time.Duration
	MaxWorkers    int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.CheckInterval == 0 {
		params.CheckInterval = 5 * time.Minute
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	return &Scheduler{
		feeds:         params.Feeds,
		refresher:     params.Refresher,
		recorder:      params.Recorder,
		checkInterval: params.CheckInterval,
		maxWorkers:    params.MaxWorkers,
		now:           time.Now,
	}
}

// FeedsDue returns ids of feeds stale enough for the given plan tier: never
// fetched, or last fetched before now minus the tier's refresh interval
func (s *Scheduler) FeedsDue(ctx context.Context, plan domain.Plan) ([]int64, error) {
	cutoff := s.now().Add(-plan.RefreshInterval())
	return s.feeds.GetDueFeeds(ctx, cutoff, plan.Paid())
}

// Start begins the periodic refresh loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.checkInterval)
		defer ticker.Stop()

		// run immediately on start
		s.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started, check interval %v, %d workers", s.checkInterval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunOnce performs a single scheduling pass over both plan bands. The paid
// band runs first, its subscribers are promised the tighter cadence.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.refreshTier(ctx, domain.PlanPro)
	s.refreshTier(ctx, domain.PlanFree)
}

// refreshTier refreshes all feeds due under the given plan's cadence,
// tolerating per-feed failures independently
func (s *Scheduler) refreshTier(ctx context.Context, plan domain.Plan) {
	ids, err := s.FeedsDue(ctx, plan)
	if err != nil {
		lgr.Printf("[ERROR] failed to select due feeds for %s tier: %v", plan, err)
		return
	}
	if len(ids) == 0 {
		return
	}

	lgr.Printf("[INFO] refreshing %d feeds for %s tier", len(ids), plan)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, id := range ids {
		g.Go(func() error {
			result, err := s.refresher.Refresh(gctx, id)
			if err != nil {
				// per-feed failure, the next pass retries naturally
				lgr.Printf("[WARN] failed to refresh feed %d: %v", id, err)
				return nil
			}
			s.recordRefresh(gctx, id)
			if result.ArticlesAdded > 0 {
				lgr.Printf("[DEBUG] feed %d added %d articles", id, result.ArticlesAdded)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] refresh pass error: %v", err)
	}

	lgr.Printf("[INFO] %s tier refresh completed", plan)
}

// recordRefresh notes the refresh in the cache side channel, best effort only
func (s *Scheduler) recordRefresh(ctx context.Context, feedID int64) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordRefresh(ctx, feedID, s.now()); err != nil {
		lgr.Printf("[WARN] failed to record refresh for feed %d: %v", feedID, err)
	}
}
