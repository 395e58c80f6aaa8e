// Package geodes finds how many geodes a robot factory can crack before
// time runs out, given a blueprint of robot recipes.
//
// 🚀 What is the problem?
//
//	A factory starts with one ore robot. Each minute it may build one robot
//	(paying ore, clay or obsidian) and every robot collects one unit of its
//	resource. The goal is the largest geode stock at the end of the horizon.
//	The decision tree grows as 5^horizon; admissible pruning keeps it small.
//
// ✨ Layout:
//
//	resource/ — the four resource kinds and the fixed-width Vector
//	blueprint/ — recipes, robot caps, puzzle-text parser
//	search/   — Branch-and-Bound over build/idle decisions (MaxGeodes)
//	planner/  — quality sum / top product over many blueprints, memoized
//	metrics/  — Prometheus collectors for search runs
//	config/   — YAML + .env + environment settings, slog setup
//	cmd/geodes — command-line entry point
//
// Quick start:
//
//	bps, _ := blueprint.ParseString(text)
//	res, _ := search.MaxGeodes(&bps[0], 24)
//	fmt.Println(res.Geodes)
//
//	go install github.com/katalvlaran/geodes/cmd/geodes@latest
package geodes
