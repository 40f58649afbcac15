package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OpenEnded marks a tier without an upper bound ("30+").
const OpenEnded = -1

// LateFeeTier applies Fee to loans whose days past due fall in [Start, End].
type LateFeeTier struct {
	Start int
	End   int
	Fee   decimal.Decimal
}

// Matches reports whether daysPastDue falls within the tier.
func (t LateFeeTier) Matches(daysPastDue int) bool {
	if t.Start == OpenEnded {
		return false
	}
	if t.End == OpenEnded {
		return daysPastDue >= t.Start
	}
	return t.Start <= daysPastDue && daysPastDue <= t.End
}

// String renders the tier key in its stored form, e.g. "1-14" or "30+".
func (t LateFeeTier) String() string {
	if t.End == OpenEnded {
		return fmt.Sprintf("%d+", t.Start)
	}
	return fmt.Sprintf("%d-%d", t.Start, t.End)
}

// LateFeeSchedule is an ordered list of tiers.
type LateFeeSchedule []LateFeeTier

// Resolve returns the fee multiplier of the first tier matching daysPastDue.
// Overlapping tiers are not merged: order decides.
func (s LateFeeSchedule) Resolve(daysPastDue int) decimal.Decimal {
	if daysPastDue <= 0 {
		return decimal.Zero
	}
	for _, tier := range s {
		if tier.Matches(daysPastDue) {
			return tier.Fee
		}
	}
	return decimal.Zero
}

// Sum returns the total of Resolve(d) for every d in [from, to]. Resolve is
// constant between tier boundaries, so the range is summed per segment.
func (s LateFeeSchedule) Sum(from, to int) decimal.Decimal {
	if from < 1 {
		from = 1
	}
	if from > to {
		return decimal.Zero
	}

	cuts := []int{from, to + 1}
	for _, tier := range s {
		if tier.Start == OpenEnded {
			continue
		}
		cuts = append(cuts, tier.Start)
		if tier.End != OpenEnded {
			cuts = append(cuts, tier.End+1)
		}
	}
	sort.Ints(cuts)

	total := decimal.Zero
	prev := from
	for _, c := range cuts {
		if c <= prev {
			continue
		}
		if c > to+1 {
			c = to + 1
		}
		total = total.Add(s.Resolve(prev).Mul(decimal.NewFromInt(int64(c - prev))))
		prev = c
		if prev > to {
			break
		}
	}
	return total
}

// Validate checks every tier for well-formed bounds and a non-negative fee.
func (s LateFeeSchedule) Validate() error {
	for _, tier := range s {
		if tier.Start < 0 {
			return fmt.Errorf("%w: %s start must be non-negative", ErrInvalidLateFeeTier, tier)
		}
		if tier.End != OpenEnded && tier.End < tier.Start {
			return fmt.Errorf("%w: %s ends before it starts", ErrInvalidLateFeeTier, tier)
		}
		if tier.Fee.IsNegative() {
			return fmt.Errorf("%w: %s fee must be non-negative", ErrInvalidLateFeeTier, tier)
		}
	}
	return nil
}

// Structure renders the schedule in its stored map form.
func (s LateFeeSchedule) Structure() map[string]string {
	out := make(map[string]string, len(s))
	for _, tier := range s {
		out[tier.String()] = tier.Fee.String()
	}
	return out
}

// ParseLateFeeStructure reads the stored map form, keyed by "start-end" or
// "start+", into a schedule ordered by start.
func ParseLateFeeStructure(structure map[string]string) (LateFeeSchedule, error) {
	schedule := make(LateFeeSchedule, 0, len(structure))
	for key, value := range structure {
		tier, err := parseLateFeeKey(key)
		if err != nil {
			return nil, err
		}

		fee, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: fee %q for %q", ErrInvalidLateFeeTier, value, key)
		}
		tier.Fee = fee

		schedule = append(schedule, tier)
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Start < schedule[j].Start
	})

	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

func parseLateFeeKey(key string) (LateFeeTier, error) {
	key = strings.TrimSpace(key)

	if strings.HasSuffix(key, "+") {
		start, err := strconv.Atoi(strings.TrimSuffix(key, "+"))
		if err != nil {
			return LateFeeTier{}, fmt.Errorf("%w: %q", ErrInvalidLateFeeTier, key)
		}
		return LateFeeTier{Start: start, End: OpenEnded}, nil
	}

	bounds := strings.SplitN(key, "-", 2)
	if len(bounds) != 2 {
		return LateFeeTier{}, fmt.Errorf("%w: %q", ErrInvalidLateFeeTier, key)
	}

	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return LateFeeTier{}, fmt.Errorf("%w: %q", ErrInvalidLateFeeTier, key)
	}
	end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return LateFeeTier{}, fmt.Errorf("%w: %q", ErrInvalidLateFeeTier, key)
	}

	return LateFeeTier{Start: start, End: end}, nil
}
