package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/resource"
)

// noImprovement is returned by a subtree that was pruned entirely.
// Callers rely on the incumbent instead.
const noImprovement = -1

// engine holds the per-call search state.
// A fresh engine per MaxGeodes call keeps the incumbent scoped to one search.
type engine struct {
	// Blueprint data, prefetched.
	costs [resource.NumKinds]resource.Vector
	caps  resource.Vector

	// Policy
	useBound bool
	onVisit  func(Node) error
	logger   *slog.Logger

	// Cancellation
	ctx   context.Context
	steps int // sparse ctx checks counter
	err   error

	// Incumbent: best geode count proven reachable so far.
	best  int
	stats Stats
}

// cancelled performs a rare context check (every 4096 node events).
func (e *engine) cancelled() bool {
	e.steps++
	if (e.steps & 4095) != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err

		return true
	}

	return false
}

// raise commits v as the new incumbent when it improves on it.
func (e *engine) raise(v int, minutesLeft int, source string) {
	if v <= e.best {
		return
	}
	e.best = v
	e.stats.Raises++
	e.logger.Debug("incumbent raised",
		slog.Int("geodes", v),
		slog.Int("minutes_left", minutesLeft),
		slog.String("source", source))
}

// apply returns the child state of taking a at a node, or false when a is illegal.
// Legality is checked on the stock held before this minute's production.
func (e *engine) apply(a Action, res, produced, robots resource.Vector) (resource.Vector, resource.Vector, bool) {
	k, builds := a.Robot()
	if !builds {
		return produced, robots, true
	}
	if robots[k] >= e.caps[k] || !res.Contains(e.costs[k]) {
		return resource.Vector{}, resource.Vector{}, false
	}

	return produced.Sub(e.costs[k]), robots.Inc(k), true
}

// mustHold panics on a child state that legality checks should have excluded.
func (e *engine) mustHold(res, robots resource.Vector) {
	if !res.NonNegative() {
		panic(fmt.Sprintf("search: negative resources in child state (%v)", res))
	}
	for _, k := range resource.Kinds {
		if robots[k] > e.caps[k] {
			panic(fmt.Sprintf("search: %s robots %d exceed cap %d", k, robots[k], e.caps[k]))
		}
	}
}

// searchCaps returns the robot ceilings enforced during a search starting
// from fleet. A kind no recipe consumes has a blueprint cap of 0, but the
// starting robots already exist, so every cap is raised to the starting
// fleet: such a kind is simply never built.
func searchCaps(bp *blueprint.Blueprint, fleet resource.Vector, useCaps bool) resource.Vector {
	var caps resource.Vector
	if !useCaps {
		for _, k := range resource.Kinds {
			caps[k] = resource.Unbounded
		}

		return caps
	}

	caps = bp.RobotCaps()
	for _, k := range resource.Kinds {
		caps[k] = max(caps[k], fleet.Get(k))
	}

	return caps
}

// dfs explores the subtree below (res, robots, minutesLeft) and returns the
// best geode count found in it, or noImprovement if everything was pruned.
func (e *engine) dfs(res, robots resource.Vector, minutesLeft int) int {
	if e.err != nil || e.cancelled() {
		return noImprovement
	}
	e.stats.Visited++

	if e.onVisit != nil {
		if err := e.onVisit(Node{Resources: res, Robots: robots, MinutesLeft: minutesLeft}); err != nil {
			e.err = fmt.Errorf("search: OnVisit hook at %d minutes left: %w", minutesLeft, err)

			return noImprovement
		}
	}

	if minutesLeft == 0 {
		e.stats.Leaves++
		e.raise(res.Get(resource.Objective), 0, "leaf")

		return res.Get(resource.Objective)
	}

	if e.useBound {
		pessimistic, optimistic := Bounds(res, robots, minutesLeft)
		if optimistic <= e.best {
			e.stats.Pruned++

			return noImprovement
		}
		e.raise(pessimistic, minutesLeft, "bound")
	}

	var (
		produced     = res.Add(robots)
		result       = noImprovement
		child, fleet resource.Vector
		ok           bool
		v            int
	)
	for _, a := range priority {
		child, fleet, ok = e.apply(a, res, produced, robots)
		if !ok {
			continue
		}
		e.mustHold(child, fleet)
		if v = e.dfs(child, fleet, minutesLeft-1); v > result {
			result = v
		}
		if e.err != nil {
			break
		}
	}

	return result
}

// MaxGeodes returns the maximum number of geodes bp can produce in horizon
// minutes, starting from a single ore robot and an empty stock.
//
// Errors: ErrNilBlueprint, ErrNegativeHorizon, ErrHorizonTooLarge,
// blueprint validation errors, ctx.Err() on cancellation and wrapped OnVisit
// errors. On error the Result is zero.
func MaxGeodes(bp *blueprint.Blueprint, horizon int, opts ...Option) (Result, error) {
	if bp == nil {
		return Result{}, ErrNilBlueprint
	}
	if horizon < 0 {
		return Result{}, ErrNegativeHorizon
	}
	if horizon > MaxHorizon {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrHorizonTooLarge, horizon, MaxHorizon)
	}
	if err := bp.Validate(); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	// Engine initialization.
	var e engine
	e.costs = bp.Costs
	e.useBound = o.UseBound
	e.onVisit = o.OnVisit
	e.ctx = o.Ctx
	e.logger = o.Logger
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	// Root: one ore robot, nothing banked.
	fleet := resource.Unit(resource.Ore)
	e.caps = searchCaps(bp, fleet, o.UseCaps)

	root := e.dfs(resource.Vector{}, fleet, horizon)
	if e.err != nil {
		return Result{}, e.err
	}

	geodes := e.best
	if root > geodes {
		geodes = root
	}

	return Result{Geodes: geodes, Stats: e.stats}, nil
}
