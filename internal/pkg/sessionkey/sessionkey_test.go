package sessionkey

import (
	"testing"
	"time"
)

func TestDerive_SameDaySameKey(t *testing.T) {
	morning := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 21, 45, 0, 0, time.UTC)

	if Derive(4, morning) != Derive(4, evening) {
		t.Errorf("keys for the same schedule item and day must match: %q vs %q",
			Derive(4, morning), Derive(4, evening))
	}
}

func TestDerive_DifferentDaysDifferentKeys(t *testing.T) {
	monday := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	tuesday := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)

	if Derive(4, monday) == Derive(4, tuesday) {
		t.Error("keys for different calendar days must differ")
	}
}

func TestDerive_Format(t *testing.T) {
	ref := time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC)
	if got := Derive(12, ref); got != "12-2025-01-06" {
		t.Errorf("Derive(12, jan 6) = %q, want %q", got, "12-2025-01-06")
	}
}

func TestDerive_UsesLocalCalendarDay(t *testing.T) {
	// 23:30 in UTC+10 is still the 10th locally even though UTC has moved on.
	loc := time.FixedZone("UTC+10", 10*3600)
	lateLocal := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	if got := Derive(4, lateLocal); got != "4-2025-03-10" {
		t.Errorf("Derive at local 23:30 = %q, want %q", got, "4-2025-03-10")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	ref := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	key := Derive(7, ref)

	id, day, err := Parse(key)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", key, err)
	}
	if id != 7 {
		t.Errorf("schedule item id = %d, want 7", id)
	}
	if day.Format("2006-01-02") != "2025-03-10" {
		t.Errorf("day = %s, want 2025-03-10", day.Format("2006-01-02"))
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{"", "4", "-2025-03-10", "abc-2025-03-10", "4-march-10", "4-"}
	for _, key := range cases {
		if _, _, err := Parse(key); err == nil {
			t.Errorf("Parse(%q) should fail", key)
		}
		if Valid(key) {
			t.Errorf("Valid(%q) should be false", key)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("4-2025-03-10") {
		t.Error(`Valid("4-2025-03-10") should be true`)
	}
}
