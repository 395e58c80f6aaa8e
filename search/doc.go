// Package search finds the maximum number of geodes a blueprint can yield
// within a fixed horizon of minutes.
//
// MaxGeodes runs a depth-first Branch-and-Bound over build/idle decisions.
// Every minute the factory either builds one robot it can afford (paid from
// the stock held at the start of the minute) or idles; all existing robots
// then deliver one unit of their kind.
//
// Pruning (all admissible, the optimum is never discarded):
//  1. RobotCaps: no more k-robots than the largest k-cost of any recipe,
//     for every non-objective kind k.
//  2. Bound pair per node (see Bounds):
//     pessimistic = geodes + minutesLeft·geodeRobots  (build nothing more)
//     optimistic  = pessimistic + t(t+1)/2, t = minutesLeft−1
//     (a new geode robot every remaining minute, starting next minute).
//     The node is pruned when optimistic ≤ best; best is raised to
//     pessimistic as soon as that value is provably reachable.
//  3. Branching order: geode robot, obsidian, clay, ore, then idle, so the
//     incumbent tightens early and later siblings prune harder.
//
// The incumbent (best) belongs to a single MaxGeodes call and starts at 0;
// nothing survives between calls, so results are deterministic.
//
// Complexity:
//   - Worst case exponential in the horizon (≤ 5 branches per minute).
//   - Per node: O(NumKinds) work, no heap allocation.
//   - Memory: O(horizon) call stack.
//
// Options:
//
//   - WithContext(ctx)    sparse cancellation checks (every 4096 nodes).
//   - WithLogger(l)       debug record on every incumbent raise.
//   - WithOnVisit(fn)     pre-order hook; an error aborts the search.
//   - WithoutBound()      disables the bound pair (testing/benchmarking).
//   - WithoutCaps()       disables RobotCaps (testing/benchmarking).
//
// Errors:
//
//   - ErrNilBlueprint      if bp is nil.
//   - ErrNegativeHorizon   if horizon < 0.
//   - ErrHorizonTooLarge   if horizon > MaxHorizon.
//   - blueprint.ErrInvalidBlueprint for negative costs.
//   - context errors, or any error returned by OnVisit (wrapped).
package search
