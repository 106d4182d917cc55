package almanac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BlackVoid/aoc2023/internal/common"
	"github.com/BlackVoid/aoc2023/internal/diagnostic"
)

const seedsPrefix = "seeds:"

// Almanac is a parsed puzzle input: the seed list and the mapping stages.
type Almanac struct {
	// Seeds as listed in the input, in input order.
	Seeds []uint64
	// Stages in input order.
	Stages []*Stage

	byFrom map[string]*Stage
	order  []int
	chain  []*Stage
}

// Step is one hop of a resolution trace.
type Step struct {
	Domain string
	Value  uint64
}

// Parse parses a complete almanac. Any structural problem aborts the parse;
// no partial almanac is returned.
func Parse(input string) (*Almanac, error) {
	a, diags := ParseWithDiagnostics(input)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("failed to parse almanac: %w", err)
	}

	return a, nil
}

// ParseWithDiagnostics parses input and reports every problem found.
// The returned almanac is nil whenever diagnostics contain errors.
func ParseWithDiagnostics(input string) (*Almanac, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	blocks := splitBlocks(splitLines(input, 1))

	first, ok := common.First(blocks)
	if !ok {
		diags.AddError("empty_input", "input is empty", "", 0)
		return nil, diags
	}

	a := &Almanac{
		byFrom: make(map[string]*Stage, len(blocks)-1),
	}

	a.Seeds = parseSeeds(first, diags)

	for _, block := range blocks[1:] {
		st := parseStage(block, diags)
		if st == nil {
			continue
		}

		if prev, dup := a.byFrom[st.From]; dup {
			diags.AddError("duplicate_stage",
				fmt.Sprintf("domain %q is already mapped by %q (line %d)", st.From, prev.Name(), prev.Line),
				block[0].text, st.Line)

			continue
		}

		a.byFrom[st.From] = st
		a.Stages = append(a.Stages, st)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	order, err := orderStages(a.Stages)
	if err != nil {
		diags.AddError("stage_cycle", err.Error(), "", 0)
		return nil, diags
	}

	a.order = order
	a.chain = buildChain(a.byFrom)

	return a, diags
}

// splitBlocks groups consecutive non-blank lines.
func splitBlocks(lines []line) [][]line {
	var (
		blocks  [][]line
		current []line
	)

	for _, l := range lines {
		if l.text == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}

			continue
		}

		current = append(current, l)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func parseSeeds(block []line, diags *diagnostic.Diagnostics) []uint64 {
	header := block[0]

	rest, found := strings.CutPrefix(header.text, seedsPrefix)
	if !found {
		diags.AddError("missing_seeds",
			fmt.Sprintf("first block must start with %q, got %q", seedsPrefix, header.text),
			"", header.num)

		return nil
	}

	for _, l := range block[1:] {
		diags.AddError("unexpected_line",
			fmt.Sprintf("unexpected line %q after seeds", l.text),
			seedsPrefix, l.num)
	}

	fields := strings.Fields(rest)
	seeds := make([]uint64, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			diags.AddError("invalid_number",
				fmt.Sprintf("%q is not an unsigned integer", f),
				seedsPrefix, header.num)

			continue
		}

		seeds = append(seeds, n)
	}

	return seeds
}

// Stage returns the stage consuming the given domain.
func (a *Almanac) Stage(from string) (*Stage, bool) {
	st, ok := a.byFrom[from]
	return st, ok
}

// Chain returns the stages visited when resolving a seed, in order.
func (a *Almanac) Chain() []*Stage {
	return a.chain
}

// Ordered returns every stage, dependencies first. Stages that are not
// reachable from the seed domain are included.
func (a *Almanac) Ordered() []*Stage {
	out := make([]*Stage, 0, len(a.order))
	for _, i := range a.order {
		out = append(out, a.Stages[i])
	}

	return out
}

// FinalDomain returns the domain a resolved value belongs to.
func (a *Almanac) FinalDomain() string {
	if len(a.chain) == 0 {
		return SeedDomain
	}

	return a.chain[len(a.chain)-1].To
}

// Resolve passes seed through every stage of the chain.
func (a *Almanac) Resolve(seed uint64) uint64 {
	v := seed
	for _, st := range a.chain {
		v = st.Map(v)
	}

	return v
}

// Trace resolves seed and records the value in every domain on the way,
// starting with the seed itself.
func (a *Almanac) Trace(seed uint64) []Step {
	steps := make([]Step, 0, len(a.chain)+1)
	steps = append(steps, Step{Domain: SeedDomain, Value: seed})

	v := seed
	for _, st := range a.chain {
		v = st.Map(v)
		steps = append(steps, Step{Domain: st.To, Value: v})
	}

	return steps
}

// SeedRanges interprets the almanac's seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]SeedRange, error) {
	return SeedRanges(a.Seeds)
}
