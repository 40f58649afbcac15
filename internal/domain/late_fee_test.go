package domain

import (
	"errors"
	"testing"
)

func TestLateFeeSchedule_Resolve(t *testing.T) {
	schedule := LateFeeSchedule{
		{Start: 1, End: 29, Fee: dec("50")},
		{Start: 30, End: OpenEnded, Fee: dec("100")},
	}

	tests := []struct {
		days int
		want string
	}{
		{days: 15, want: "50"},
		{days: 1, want: "50"},
		{days: 29, want: "50"},
		{days: 30, want: "100"},
		{days: 365, want: "100"},
		{days: 0, want: "0"},
		{days: -5, want: "0"},
	}

	for _, tt := range tests {
		if got := schedule.Resolve(tt.days); !got.Equal(dec(tt.want)) {
			t.Fatalf("Resolve(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestLateFeeSchedule_ResolveTakesFirstMatch(t *testing.T) {
	schedule := LateFeeSchedule{
		{Start: 1, End: OpenEnded, Fee: dec("0.25")},
		{Start: 30, End: OpenEnded, Fee: dec("1.0")},
	}

	if got := schedule.Resolve(45); !got.Equal(dec("0.25")) {
		t.Fatalf("expected first matching tier fee 0.25, got %s", got)
	}
}

func TestLateFeeSchedule_ResolveGapReturnsZero(t *testing.T) {
	schedule := LateFeeSchedule{
		{Start: 1, End: 10, Fee: dec("0.25")},
		{Start: 20, End: 29, Fee: dec("0.5")},
	}

	if got := schedule.Resolve(15); !got.IsZero() {
		t.Fatalf("expected zero in gap, got %s", got)
	}

	if got := (LateFeeSchedule{}).Resolve(10); !got.IsZero() {
		t.Fatalf("expected zero for empty schedule, got %s", got)
	}
}

func TestLateFeeSchedule_IgnoresUnboundedStart(t *testing.T) {
	schedule := LateFeeSchedule{{Start: OpenEnded, End: OpenEnded, Fee: dec("9")}}

	if got := schedule.Resolve(10); !got.IsZero() {
		t.Fatalf("expected tier with open start to never match, got %s", got)
	}
}

func TestParseLateFeeStructure(t *testing.T) {
	schedule, err := ParseLateFeeStructure(map[string]string{
		"30+":   "1.0",
		"1-14":  "0.25",
		"15-29": "0.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedule) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(schedule))
	}

	if schedule[0].Start != 1 || schedule[0].End != 14 {
		t.Fatalf("expected first tier 1-14, got %s", schedule[0])
	}
	if schedule[2].Start != 30 || schedule[2].End != OpenEnded {
		t.Fatalf("expected last tier 30+, got %s", schedule[2])
	}

	if got := schedule.Resolve(20); !got.Equal(dec("0.5")) {
		t.Fatalf("expected 0.5 at 20 days, got %s", got)
	}

	structure := schedule.Structure()
	if structure["30+"] != "1" || structure["1-14"] != "0.25" {
		t.Fatalf("unexpected structure: %v", structure)
	}
}

func TestParseLateFeeStructure_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		structure map[string]string
	}{
		{name: "non numeric key", structure: map[string]string{"a-b": "1"}},
		{name: "missing bound", structure: map[string]string{"14": "1"}},
		{name: "bad fee", structure: map[string]string{"1-14": "x"}},
		{name: "negative fee", structure: map[string]string{"1-14": "-1"}},
		{name: "end before start", structure: map[string]string{"14-1": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLateFeeStructure(tt.structure)
			if !errors.Is(err, ErrInvalidLateFeeTier) {
				t.Fatalf("expected ErrInvalidLateFeeTier, got %v", err)
			}
		})
	}
}

func TestLateFeeSchedule_SumMatchesDailyResolve(t *testing.T) {
	schedules := map[string]LateFeeSchedule{
		"tiered": {
			{Start: 1, End: 29, Fee: dec("0.5")},
			{Start: 30, End: OpenEnded, Fee: dec("1")},
		},
		"overlap": {
			{Start: 5, End: 40, Fee: dec("0.25")},
			{Start: 1, End: OpenEnded, Fee: dec("2")},
		},
		"gap": {
			{Start: 1, End: 10, Fee: dec("0.25")},
			{Start: 20, End: 29, Fee: dec("0.5")},
		},
		"empty": {},
	}
	ranges := [][2]int{{-10, 0}, {-10, 15}, {1, 1}, {3, 45}, {29, 30}, {12, 18}, {50, 400}, {10, 5}}

	for name, schedule := range schedules {
		for _, r := range ranges {
			want := dec("0")
			for d := r[0]; d <= r[1]; d++ {
				want = want.Add(schedule.Resolve(d))
			}
			if got := schedule.Sum(r[0], r[1]); !got.Equal(want) {
				t.Fatalf("%s: Sum(%d, %d) = %s, want %s", name, r[0], r[1], got, want)
			}
		}
	}
}
