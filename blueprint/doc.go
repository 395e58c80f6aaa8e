// Package blueprint models robot-construction recipes and reads them from
// puzzle text.
//
// What:
//
//   - Blueprint: four cost vectors, Costs[k] = price of one robot that
//     produces one unit of kind k per minute.
//   - RobotCaps: per-kind ceiling on how many robots of a kind are ever
//     useful. A factory can spend at most max_r(Costs[r][k]) units of k per
//     minute (one robot per minute), so more k-robots than that only pile up
//     unspendable stock. The objective kind is never capped.
//   - Parse: turns "Blueprint N: Each ore robot costs ..." text into
//     validated Blueprints. A blueprint may span several lines.
//
// Errors:
//
//   - ErrEmptyInput        if the text holds no blueprint.
//   - ErrMalformed         for unparseable or incomplete recipes.
//   - ErrOutOfOrder        if blueprint IDs do not run 1, 2, 3, ...
//   - ErrInvalidBlueprint  if struct validation fails (negative cost, ID < 1).
//
// Complexity: RobotCaps is O(NumKinds²); Parse is linear in the input size.
package blueprint
