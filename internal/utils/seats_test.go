package utils

import "testing"

func TestFormatSeatList(t *testing.T) {
	if got := FormatSeatList([]int{13, 12, 1}); got != "1,12,13" {
		t.Fatalf("got %q", got)
	}
	if got := FormatSeatList(nil); got != "" {
		t.Fatalf("empty input must render empty, got %q", got)
	}
}

func TestParseSeatList(t *testing.T) {
	got := ParseSeatList("12,13, 20;x,-4,")
	want := []int{12, 13, 20}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if got := ParseSeatList(""); len(got) != 0 {
		t.Fatalf("empty string must parse to no seats, got %v", got)
	}
}

func TestDedupeSeats(t *testing.T) {
	unique, ok := DedupeSeats([]int{12, 13})
	if !ok || len(unique) != 2 {
		t.Fatalf("clean input flagged: %v %v", unique, ok)
	}

	unique, ok = DedupeSeats([]int{12, 12, 0, -3})
	if ok {
		t.Fatalf("duplicates and non-positives must flip ok")
	}
	if len(unique) != 1 || unique[0] != 12 {
		t.Fatalf("got %v", unique)
	}
}
