package search

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/geodes/resource"
)

// MaxHorizon is the largest accepted horizon.
const MaxHorizon = 64

var (
	// ErrNilBlueprint is returned when MaxGeodes receives a nil blueprint.
	ErrNilBlueprint = errors.New("search: blueprint is nil")

	// ErrNegativeHorizon is returned for a horizon below zero.
	ErrNegativeHorizon = errors.New("search: horizon must be non-negative")

	// ErrHorizonTooLarge is returned for a horizon above MaxHorizon.
	ErrHorizonTooLarge = errors.New("search: horizon exceeds MaxHorizon")
)

// Node is one search state. It is handed to OnVisit by value and never stored.
type Node struct {
	Resources   resource.Vector
	Robots      resource.Vector
	MinutesLeft int
}

// Stats are diagnostics of one MaxGeodes call.
type Stats struct {
	// Visited counts every node entered, leaves included.
	Visited int

	// Pruned counts nodes cut by the optimistic bound.
	Pruned int

	// Leaves counts nodes with no minutes left.
	Leaves int

	// Raises counts how often the incumbent improved.
	Raises int
}

// Result is the outcome of MaxGeodes.
type Result struct {
	// Geodes is the maximum geode count reachable within the horizon.
	Geodes int

	Stats Stats
}

// Option configures optional behavior of MaxGeodes.
type Option func(*Options)

// Options holds the search policies and hooks.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug records on incumbent raises; nil discards.
	Logger *slog.Logger

	// OnVisit, if non-nil, is invoked on every node before it is expanded.
	// Returning an error aborts the search with that error.
	OnVisit func(n Node) error

	// UseBound enables pruning by the pessimistic/optimistic bound pair.
	UseBound bool

	// UseCaps enables the RobotCaps ceiling on non-objective robots.
	UseCaps bool
}

// DefaultOptions returns Options with a background context, no logger,
// no hook and every pruning rule enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   nil,
		OnVisit:  nil,
		UseBound: true,
		UseCaps:  true,
	}
}

// WithContext sets the context checked during the search.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a logger for incumbent updates.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(n Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithoutBound disables bound pruning. The result is unchanged, only slower.
func WithoutBound() Option {
	return func(o *Options) {
		o.UseBound = false
	}
}

// WithoutCaps disables the robot ceiling. The result is unchanged, only slower.
func WithoutCaps() Option {
	return func(o *Options) {
		o.UseCaps = false
	}
}
