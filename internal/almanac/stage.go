package almanac

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/BlackVoid/aoc2023/internal/common"
	"github.com/BlackVoid/aoc2023/internal/diagnostic"
)

const (
	domainSeparator = "-to-"
	mapSuffix       = "map:"
)

// Stage translates values of one domain into the next.
// Intervals are sorted by Start and never modified after construction.
type Stage struct {
	From      string
	To        string
	Intervals []Interval
	// Line is the 1-based input line of the stage header, 0 when unknown.
	Line int
}

// Name returns the stage header without the "map:" suffix, e.g. "seed-to-soil".
func (s *Stage) Name() string {
	return s.From + domainSeparator + s.To
}

// Lookup returns the interval containing src.
func (s *Stage) Lookup(src uint64) (Interval, bool) {
	i, found := slices.BinarySearchFunc(s.Intervals, src, Interval.compare)
	if !found {
		return Interval{}, false
	}

	return s.Intervals[i], true
}

// Map translates src through the stage. Values outside every interval are
// returned unchanged.
func (s *Stage) Map(src uint64) uint64 {
	iv, ok := s.Lookup(src)
	if !ok {
		return src
	}

	return iv.Map(src)
}

// ParseStage parses a single block of the form
//
//	<from>-to-<to> map:
//	<dst> <src> <len>
//	...
func ParseStage(block string) (*Stage, error) {
	var diags diagnostic.Diagnostics

	st := parseStage(splitLines(block, 1), &diags)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("failed to parse stage: %w", err)
	}

	return st, nil
}

type line struct {
	text string
	num  int
}

// splitLines splits text into trimmed lines numbered from first.
func splitLines(text string, first int) []line {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	out := make([]line, 0, len(raw))
	for i, l := range raw {
		out = append(out, line{text: strings.TrimSpace(l), num: first + i})
	}

	return out
}

func parseStage(lines []line, diags *diagnostic.Diagnostics) *Stage {
	// Leading blank lines are not part of the block.
	for len(lines) > 0 && lines[0].text == "" {
		lines = lines[1:]
	}

	header, ok := common.First(lines)
	if !ok {
		diags.AddError("empty_block", "stage block is empty", "", 0)
		return nil
	}

	from, to, ok := parseHeader(header, diags)
	if !ok {
		return nil
	}

	st := &Stage{From: from, To: to, Line: header.num}
	before := len(diags.Errors)

	for _, l := range lines[1:] {
		if l.text == "" {
			continue
		}

		iv, ok := parseInterval(l, header.text, diags)
		if !ok {
			continue
		}

		st.Intervals = append(st.Intervals, iv)
	}

	if len(diags.Errors) > before {
		return nil
	}

	slices.SortStableFunc(st.Intervals, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	return st
}

func parseHeader(header line, diags *diagnostic.Diagnostics) (string, string, bool) {
	fields := strings.Fields(header.text)
	if len(fields) != 2 || fields[1] != mapSuffix {
		diags.AddError("invalid_header",
			fmt.Sprintf("stage header %q must look like \"<from>-to-<to> map:\"", header.text),
			header.text, header.num)

		return "", "", false
	}

	from, to, found := strings.Cut(fields[0], domainSeparator)
	if !found {
		diags.AddError("missing_separator",
			fmt.Sprintf("stage header %q has no %q separator", header.text, domainSeparator),
			header.text, header.num)

		return "", "", false
	}

	if from == "" || to == "" {
		diags.AddError("empty_domain",
			fmt.Sprintf("stage header %q has an empty domain name", header.text),
			header.text, header.num)

		return "", "", false
	}

	return from, to, true
}

func parseInterval(l line, block string, diags *diagnostic.Diagnostics) (Interval, bool) {
	fields := strings.Fields(l.text)
	if len(fields) != 3 {
		diags.AddError("wrong_token_count",
			fmt.Sprintf("expected 3 numbers, got %d in %q", len(fields), l.text),
			block, l.num)

		return Interval{}, false
	}

	var nums [3]uint64

	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			diags.AddError("invalid_number",
				fmt.Sprintf("%q is not an unsigned integer", f),
				block, l.num)

			return Interval{}, false
		}

		nums[i] = n
	}

	dst, src, length := nums[0], nums[1], nums[2]

	end, ok := common.AddChecked(src, length)
	if !ok {
		diags.AddError("source_overflow",
			fmt.Sprintf("source range %d+%d overflows", src, length),
			block, l.num)

		return Interval{}, false
	}

	if _, ok := common.AddChecked(dst, length); !ok {
		diags.AddError("destination_overflow",
			fmt.Sprintf("destination range %d+%d overflows", dst, length),
			block, l.num)

		return Interval{}, false
	}

	return Interval{Start: src, End: end, Base: dst}, true
}
