// Package planner drives geode searches over a list of blueprints and
// combines their results.
//
//   - MaxGeodes   one blueprint, memoized by (costs, horizon).
//   - MaxEach     one result per blueprint, in input order.
//   - QualitySum  Σ (index+1) · result.
//   - TopProduct  product of the results of the first n blueprints.
//
// Every search owns a fresh incumbent; the memo only replays values already
// computed by this Planner, so it never changes an answer. Blueprints are
// searched one after another.
package planner
