package blueprint

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/geodes/resource"
)

var (
	headerRe = regexp.MustCompile(`Blueprint (\d+):`)
	recipeRe = regexp.MustCompile(`Each (\w+) robot costs ([^.]*)\.`)
	amountRe = regexp.MustCompile(`^(\d+) (\w+)$`)
)

// Parse reads every blueprint from r.
//
// Whitespace (including line breaks) is insignificant, so both the one-line
// and the wrapped multi-line layouts are accepted. Each blueprint must define
// exactly one recipe per robot kind, and IDs must run 1, 2, 3, ...
func Parse(r io.Reader) ([]Blueprint, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("blueprint: read input: %w", err)
	}

	return ParseString(string(raw))
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Blueprint, error) {
	text := strings.Join(strings.Fields(s), " ")
	if text == "" {
		return nil, ErrEmptyInput
	}

	headers := headerRe.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: no %q header", ErrMalformed, "Blueprint N:")
	}
	if lead := strings.TrimSpace(text[:headers[0][0]]); lead != "" {
		return nil, fmt.Errorf("%w: unexpected text %q before first blueprint", ErrMalformed, lead)
	}

	out := make([]Blueprint, 0, len(headers))
	var (
		i, id, end int
		bp         Blueprint
		err        error
	)
	for i = range headers {
		id, err = strconv.Atoi(text[headers[i][2]:headers[i][3]])
		if err != nil {
			return nil, fmt.Errorf("%w: blueprint number: %v", ErrMalformed, err)
		}
		if id != i+1 {
			return nil, fmt.Errorf("%w: got %d at position %d", ErrOutOfOrder, id, i+1)
		}

		end = len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		bp, err = parseBody(id, text[headers[i][1]:end])
		if err != nil {
			return nil, err
		}
		if err = bp.Validate(); err != nil {
			return nil, err
		}
		out = append(out, bp)
	}

	return out, nil
}

// parseBody decodes the four "Each X robot costs ..." sentences of one blueprint.
func parseBody(id int, body string) (Blueprint, error) {
	bp := Blueprint{ID: id}
	var seen [resource.NumKinds]bool

	matches := recipeRe.FindAllStringSubmatch(body, -1)
	if rest := strings.TrimSpace(recipeRe.ReplaceAllString(body, "")); rest != "" {
		return Blueprint{}, fmt.Errorf("%w %d: unexpected text %q", ErrMalformed, id, rest)
	}

	for _, m := range matches {
		robot, err := resource.ParseKind(m[1])
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w %d: robot kind %q: %v", ErrMalformed, id, m[1], err)
		}
		if seen[robot] {
			return Blueprint{}, fmt.Errorf("%w %d: duplicate %s robot recipe", ErrMalformed, id, robot)
		}
		seen[robot] = true

		cost, err := parseCost(m[2])
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w %d: %s robot: %v", ErrMalformed, id, robot, err)
		}
		bp.Costs[robot] = cost
	}

	for _, k := range resource.Kinds {
		if !seen[k] {
			return Blueprint{}, fmt.Errorf("%w %d: missing %s robot recipe", ErrMalformed, id, k)
		}
	}

	return bp, nil
}

// parseCost decodes "3 ore and 14 clay" into a Vector.
func parseCost(s string) (resource.Vector, error) {
	var cost resource.Vector
	for _, part := range strings.Split(s, " and ") {
		m := amountRe.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return resource.Vector{}, fmt.Errorf("cannot read amount %q", part)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return resource.Vector{}, err
		}
		k, err := resource.ParseKind(m[2])
		if err != nil {
			return resource.Vector{}, fmt.Errorf("cost kind %q: %w", m[2], err)
		}
		cost[k] += n
	}

	return cost, nil
}
