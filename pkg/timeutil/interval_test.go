package timeutil

import (
	"testing"
	"time"
)

func clock(h, m int) time.Time {
	return time.Date(2024, time.March, 4, h, m, 0, 0, time.UTC)
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"overlapping", clock(9, 0), clock(9, 30), clock(9, 15), clock(9, 45), true},
		{"touching", clock(9, 0), clock(9, 30), clock(9, 30), clock(10, 0), false},
		{"contained", clock(9, 0), clock(12, 0), clock(10, 0), clock(11, 0), true},
		{"disjoint", clock(9, 0), clock(9, 30), clock(11, 0), clock(12, 0), false},
		{"same", clock(9, 0), clock(9, 30), clock(9, 0), clock(9, 30), true},
		{"empty inside", clock(9, 0), clock(10, 0), clock(9, 30), clock(9, 30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersects(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
			if back := Intersects(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); back != got {
				t.Fatalf("Intersects not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	if !Within(clock(9, 0), time.Time{}, time.Time{}) {
		t.Fatalf("expected unbounded range to contain everything")
	}
	if !Within(clock(9, 0), clock(9, 0), clock(9, 0)) {
		t.Fatalf("expected closed range to include its bounds")
	}
	if Within(clock(8, 59), clock(9, 0), time.Time{}) {
		t.Fatalf("expected time before lower bound to be excluded")
	}
	if Within(clock(9, 1), time.Time{}, clock(9, 0)) {
		t.Fatalf("expected time after upper bound to be excluded")
	}
}

func TestTouches(t *testing.T) {
	if !Touches(clock(9, 0), clock(10, 0), clock(10, 0), clock(11, 0)) {
		t.Fatalf("expected shared boundary to count")
	}
	if Touches(clock(9, 0), clock(10, 0), clock(10, 1), time.Time{}) {
		t.Fatalf("expected range after the interval to be excluded")
	}
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 13, 45, 0, 0, time.UTC)
	if got := StartOfDay(ts); !got.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day %v", got)
	}
	if got := EndOfDay(ts); got.Day() != 4 || got.Hour() != 23 {
		t.Fatalf("unexpected end of day %v", got)
	}
}
