package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vesoapp/veso-backend/internal/cache"
	"github.com/vesoapp/veso-backend/internal/models"
	"github.com/vesoapp/veso-backend/internal/repositories"
	"github.com/vesoapp/veso-backend/internal/scrape"
	"github.com/vesoapp/veso-backend/pkg/relay"
)

// Compile-time check to ensure ResultServiceImpl implements ResultService
var _ ResultService = (*ResultServiceImpl)(nil)

// ResultServiceImpl runs the fetch pipeline: memory cache, durable cache,
// then the source fallback chain through the CORS relay. Constructed once at
// process start; the caches live as long as the service does.
type ResultServiceImpl struct {
	relay      *relay.Client
	memory     *cache.Memory
	durable    repositories.ResultCacheRepository // nil when no store is configured
	durableTTL time.Duration
	delay      time.Duration // pause between source attempts in batch runs
	sources    []scrape.Source
	now        func() time.Time
}

// NewResultService creates a ResultServiceImpl. durable may be nil, in which
// case every durable lookup is a miss and the pipeline scrapes live.
func NewResultService(relayClient *relay.Client, memory *cache.Memory, durable repositories.ResultCacheRepository, durableTTL, batchDelay time.Duration) *ResultServiceImpl {
	return &ResultServiceImpl{
		relay:      relayClient,
		memory:     memory,
		durable:    durable,
		durableTTL: durableTTL,
		delay:      batchDelay,
		sources:    scrape.Sources(),
		now:        time.Now,
	}
}

// Fetch resolves one date+region query. On-demand fetches do not throttle
// between source attempts.
func (s *ResultServiceImpl) Fetch(ctx context.Context, date string, region models.Region) (models.ResultSet, bool) {
	return s.fetch(ctx, date, region, false)
}

func (s *ResultServiceImpl) fetch(ctx context.Context, date string, region models.Region, throttle bool) (models.ResultSet, bool) {
	key := cache.Key(date, region)

	if set, ok := s.memory.Get(key); ok {
		return set, true
	}

	if s.durable != nil {
		set, err := s.durable.Get(ctx, key)
		switch {
		case err == nil:
			s.memory.Put(key, set)
			return set, true
		case err != repositories.ErrNotFound:
			// A broken store is just a miss; the scrape path still works.
			slog.Warn("durable cache lookup failed", "key", key, "error", err)
		}
	}

	set := s.scrapeSources(ctx, date, region, throttle)
	if len(set) > 0 {
		s.store(ctx, key, set)
	}
	return set, false
}

// scrapeSources walks the fallback chain. Every per-source failure is
// swallowed; the first source that parses into at least one result wins.
func (s *ResultServiceImpl) scrapeSources(ctx context.Context, date string, region models.Region, throttle bool) models.ResultSet {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		slog.Warn("unparseable date for scrape", "date", date)
		return models.ResultSet{}
	}
	day, month, year := parts[0], parts[1], parts[2]

	for i, source := range s.sources {
		if throttle && i > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return models.ResultSet{}
			}
		}

		body, err := s.relay.Fetch(ctx, source.URL(day, month, year, region))
		if err != nil {
			slog.Warn("source fetch failed, trying next", "source", source.Name, "date", date, "error", err)
			continue
		}

		set := scrape.Parse(string(body), date, region)
		if len(set) == 0 {
			slog.Debug("source page did not parse", "source", source.Name, "date", date)
			continue
		}

		slog.Info("results scraped", "source", source.Name, "date", date, "region", region, "provinces", len(set))
		return set
	}

	return models.ResultSet{}
}

// store writes a non-empty set into both cache tiers. Callers guarantee
// non-emptiness; empty sets must never be cached.
func (s *ResultServiceImpl) store(ctx context.Context, key string, set models.ResultSet) {
	s.memory.Put(key, set)
	if s.durable == nil {
		return
	}
	if err := s.durable.Put(ctx, key, set, s.durableTTL); err != nil {
		slog.Warn("durable cache write failed", "key", key, "error", err)
	}
}

// Prefetch walks backward from today, filling the caches day by day. The
// inter-day pause keeps the relay and the sources from rate limiting us.
func (s *ResultServiceImpl) Prefetch(ctx context.Context, days int, region models.Region) ([]models.PrefetchDay, models.PrefetchSummary) {
	rows := make([]models.PrefetchDay, 0, days)
	var summary models.PrefetchSummary

	for i := 0; i < days; i++ {
		date := models.FormatDate(s.now().AddDate(0, 0, -i))
		row := models.PrefetchDay{Date: date}

		if err := ctx.Err(); err != nil {
			row.Status = "error"
			summary.Errors++
			rows = append(rows, row)
			continue
		}

		set, fromCache := s.fetch(ctx, date, region, true)
		switch {
		case fromCache:
			row.Status = "cached"
			row.Count = len(set)
			summary.Cached++
		case len(set) > 0:
			row.Status = "fetched"
			row.Count = len(set)
			summary.Fetched++
		default:
			row.Status = "no_data"
			summary.NoData++
		}
		rows = append(rows, row)

		if i < days-1 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
			}
		}
	}

	summary.Total = len(rows)
	return rows, summary
}
