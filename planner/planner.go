package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/metrics"
	"github.com/katalvlaran/geodes/resource"
	"github.com/katalvlaran/geodes/search"
)

var (
	// ErrNoBlueprints is returned by TopProduct for an empty list.
	ErrNoBlueprints = errors.New("planner: no blueprints")

	// ErrBadCount is returned by TopProduct when n < 1.
	ErrBadCount = errors.New("planner: blueprint count must be positive")
)

// memoKey identifies a search by what determines its answer. IDs are left
// out so identical recipes under different numbers share one entry.
type memoKey struct {
	costs   [resource.NumKinds]resource.Vector
	horizon int
}

// Planner runs and memoizes searches. It is not safe for concurrent use.
type Planner struct {
	cache      *lru.Cache[memoKey, int]
	metrics    *metrics.Search
	logger     *slog.Logger
	searchOpts []search.Option
}

// Option configures a Planner.
type Option func(*Planner)

// WithMetrics records every search on m.
func WithMetrics(m *metrics.Search) Option {
	return func(p *Planner) {
		p.metrics = m
	}
}

// WithLogger sets the logger for progress records and search debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSearchOptions appends options passed to every search.MaxGeodes call.
func WithSearchOptions(opts ...search.Option) Option {
	return func(p *Planner) {
		p.searchOpts = append(p.searchOpts, opts...)
	}
}

// New returns a Planner memoizing up to cacheSize results.
// A cacheSize ≤ 0 disables memoization.
func New(cacheSize int, opts ...Option) (*Planner, error) {
	p := &Planner{logger: slog.New(slog.DiscardHandler)}
	if cacheSize > 0 {
		cache, err := lru.New[memoKey, int](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("planner: cache: %w", err)
		}
		p.cache = cache
	}
	var fn Option
	for _, fn = range opts {
		fn(p)
	}

	return p, nil
}

// MaxGeodes returns the maximum geode count of bp within horizon minutes.
// A cancelled ctx fails the call even when the result is memoized.
func (p *Planner) MaxGeodes(ctx context.Context, bp *blueprint.Blueprint, horizon int) (int, error) {
	if bp == nil {
		return 0, search.ErrNilBlueprint
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key := memoKey{costs: bp.Costs, horizon: horizon}
	if p.cache != nil {
		if v, ok := p.cache.Get(key); ok {
			p.metrics.ObserveCacheHit()
			p.logger.Debug("memo hit", slog.Int("blueprint", bp.ID), slog.Int("horizon", horizon))

			return v, nil
		}
	}

	opts := make([]search.Option, 0, len(p.searchOpts)+2)
	opts = append(opts, search.WithContext(ctx), search.WithLogger(p.logger))
	opts = append(opts, p.searchOpts...)

	start := time.Now()
	res, err := search.MaxGeodes(bp, horizon, opts...)
	if err != nil {
		return 0, fmt.Errorf("planner: blueprint %d: %w", bp.ID, err)
	}
	elapsed := time.Since(start)
	p.metrics.ObserveRun(res.Stats, elapsed)
	p.logger.Info("blueprint searched",
		slog.Int("blueprint", bp.ID),
		slog.Int("horizon", horizon),
		slog.Int("geodes", res.Geodes),
		slog.Int("visited", res.Stats.Visited),
		slog.Int("pruned", res.Stats.Pruned),
		slog.Duration("elapsed", elapsed))

	if p.cache != nil {
		p.cache.Add(key, res.Geodes)
	}

	return res.Geodes, nil
}

// MaxEach searches every blueprint in order and returns the results in the
// same order.
func (p *Planner) MaxEach(ctx context.Context, bps []blueprint.Blueprint, horizon int) ([]int, error) {
	out := make([]int, len(bps))
	var (
		i   int
		err error
	)
	for i = range bps {
		out[i], err = p.MaxGeodes(ctx, &bps[i], horizon)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// QualitySum returns Σ (i+1)·MaxGeodes(bps[i]). An empty list sums to 0.
func (p *Planner) QualitySum(ctx context.Context, bps []blueprint.Blueprint, horizon int) (int, error) {
	results, err := p.MaxEach(ctx, bps, horizon)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, v := range results {
		sum += (i + 1) * v
	}

	return sum, nil
}

// TopProduct multiplies the results of the first n blueprints, or of all of
// them when fewer than n are given.
func (p *Planner) TopProduct(ctx context.Context, bps []blueprint.Blueprint, n, horizon int) (int, error) {
	if n < 1 {
		return 0, ErrBadCount
	}
	if len(bps) == 0 {
		return 0, ErrNoBlueprints
	}
	if n > len(bps) {
		n = len(bps)
	}
	results, err := p.MaxEach(ctx, bps[:n], horizon)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, v := range results {
		product *= v
	}

	return product, nil
}
