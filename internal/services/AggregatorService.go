package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"contesthub/internal/models"
	"contesthub/internal/platforms/interfaces"
	"contesthub/internal/providers"
	"contesthub/internal/structures"

	"golang.org/x/sync/errgroup"
)

type AggregatorServiceInterface interface {
	FetchAllContests(ctx context.Context) (*models.ContestList, error)
}

type AggregatorService struct {
	adapters  []interfaces.AdapterInterface
	solutions SolutionServiceInterface
	policy    string
	timeout   time.Duration
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	now       func() time.Time
}

func NewAggregatorService(
	conf *structures.Config,
	adapters []interfaces.AdapterInterface,
	solutions SolutionServiceInterface,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
) AggregatorServiceInterface {
	return &AggregatorService{
		adapters:  adapters,
		solutions: solutions,
		policy:    conf.Aggregation.Policy,
		timeout:   conf.Aggregation.Timeout,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// FetchAllContests queries every adapter concurrently and returns the merged,
// classified and sorted list. Under the abort policy the first adapter
// failure cancels the rest and no list is returned.
func (as *AggregatorService) FetchAllContests(ctx context.Context) (*models.ContestList, error) {
	if as.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, as.timeout)
		defer cancel()
	}

	var (
		results  [][]models.Contest
		failures []*models.AdapterFailure
		err      error
	)
	if as.policy == structures.PolicyDegrade {
		results, failures, err = as.fetchDegrade(ctx)
	} else {
		results, err = as.fetchAbort(ctx)
	}
	if err != nil {
		return nil, err
	}

	var merged []models.Contest
	for _, r := range results {
		merged = append(merged, r...)
	}

	links := as.solutionLinks(ctx)
	now := as.now().UTC()
	for i := range merged {
		merged[i].Status = merged[i].StatusAt(now)
		if link, ok := links[merged[i].ID]; ok && link != "" {
			merged[i].SolutionLink = link
		}
	}
	SortContests(merged)
	as.recordTotals(merged)

	list := &models.ContestList{
		Contests:    merged,
		GeneratedAt: now,
	}
	if list.Contests == nil {
		list.Contests = []models.Contest{}
	}
	for _, f := range failures {
		list.Failed = append(list.Failed, models.PlatformFailure{Platform: f.Platform, Message: f.Err.Error()})
	}
	return list, nil
}

func (as *AggregatorService) fetchAbort(ctx context.Context) ([][]models.Contest, error) {
	results := make([][]models.Contest, len(as.adapters))
	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range as.adapters {
		g.Go(func() error {
			contests, err := as.fetchOne(gctx, adapter)
			if err != nil {
				return err
			}
			results[i] = contests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		as.logger.Errorf(providers.TypeApp, "Aggregation aborted: %v", err)
		return nil, err
	}
	return results, nil
}

func (as *AggregatorService) fetchDegrade(ctx context.Context) ([][]models.Contest, []*models.AdapterFailure, error) {
	results := make([][]models.Contest, len(as.adapters))
	errs := make([]*models.AdapterFailure, len(as.adapters))
	var g errgroup.Group
	for i, adapter := range as.adapters {
		g.Go(func() error {
			contests, err := as.fetchOne(ctx, adapter)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = contests
			return nil
		})
	}
	_ = g.Wait()

	var failures []*models.AdapterFailure
	for _, f := range errs {
		if f != nil {
			failures = append(failures, f)
		}
	}
	if len(as.adapters) > 0 && len(failures) == len(as.adapters) {
		joined := make([]error, len(failures))
		for i, f := range failures {
			joined[i] = f
		}
		return nil, nil, errors.Join(joined...)
	}
	for _, f := range failures {
		as.logger.Warnf(providers.TypeApp, "Degraded aggregation: %v", f)
	}
	return results, failures, nil
}

func (as *AggregatorService) fetchOne(ctx context.Context, adapter interfaces.AdapterInterface) ([]models.Contest, *models.AdapterFailure) {
	platform := adapter.Platform()
	start := time.Now()
	contests, err := adapter.Fetch(ctx)
	as.metrics.ObserveAdapterDuration(string(platform), time.Since(start))
	if err != nil {
		// siblings cancelled by an aborted group are not failures of their own
		if !errors.Is(err, context.Canceled) {
			as.metrics.IncAdapterFailures(string(platform))
		}
		return nil, &models.AdapterFailure{Platform: platform, Err: err}
	}
	return contests, nil
}

// solutionLinks takes one snapshot of the link store. A read error means no links.
func (as *AggregatorService) solutionLinks(ctx context.Context) map[string]string {
	links, err := as.solutions.GetAll(ctx)
	if err != nil {
		as.logger.Warnf(providers.TypeApp, "Solution links unavailable: %v", err)
		return nil
	}
	return links
}

func (as *AggregatorService) recordTotals(contests []models.Contest) {
	counts := map[models.Status]int{
		models.StatusOngoing:  0,
		models.StatusUpcoming: 0,
		models.StatusPast:     0,
	}
	for _, c := range contests {
		counts[c.Status]++
	}
	for status, n := range counts {
		as.metrics.SetContestsTotal(string(status), n)
	}
}

// SortContests orders by status rank (ongoing, upcoming, past), then by start
// time descending. Ties keep their input order.
func SortContests(contests []models.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		ri, rj := contests[i].Status.Rank(), contests[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return contests[i].StartTime.After(contests[j].StartTime)
	})
}
