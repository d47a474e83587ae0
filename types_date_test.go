package divitrek

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-10", want: NewDate(2024, 1, 10)},
		{in: "2024-1-2", want: NewDate(2024, 1, 2)},
		{in: "10/01/2024", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	if got := MustDate("2024-12-31").AddMonth(-12); got != MustDate("2023-12-31") {
		t.Errorf("AddMonth(-12) = %s, want 2023-12-31", got)
	}
	if got := MustDate("2024-12-31").AddMonth(1); got != MustDate("2025-01-31") {
		t.Errorf("AddMonth(1) = %s, want 2025-01-31", got)
	}
	if got := MustDate("2024-01-31").Add(1); got != MustDate("2024-02-01") {
		t.Errorf("Add(1) = %s, want 2024-02-01", got)
	}
	if got := MustDate("2024-02-15").StartOfMonth(); got != MustDate("2024-02-01") {
		t.Errorf("StartOfMonth = %s, want 2024-02-01", got)
	}
	if got := MustDate("2024-02-15").EndOfMonth(); got != MustDate("2024-02-29") {
		t.Errorf("EndOfMonth = %s, want 2024-02-29 (leap year)", got)
	}
	if got := MustDate("2024-04-10").DaysSince(MustDate("2024-01-10")); got != 91 {
		t.Errorf("DaysSince = %d, want 91", got)
	}
}

func TestDate_AddMonthClamps(t *testing.T) {
	// month arithmetic from a day-29/30/31 anchor clamps to the target
	// month's last day instead of overflowing into the next month.
	testCases := []struct {
		in     string
		months int
		want   string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", -1, "2024-02-29"},
		{"2024-10-31", 1, "2024-11-30"},
		{"2024-12-31", 2, "2025-02-28"},
		{"2024-02-29", 12, "2025-02-28"},
		{"2024-02-29", -12, "2023-02-28"},
		{"2024-01-15", 1, "2024-02-15"},
	}
	for _, tc := range testCases {
		if got := MustDate(tc.in).AddMonth(tc.months); got != MustDate(tc.want) {
			t.Errorf("%s.AddMonth(%d) = %s, want %s", tc.in, tc.months, got, tc.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	d := MustDate("2024-01-10")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-10"` {
		t.Errorf("marshal = %s, want \"2024-01-10\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := MustDate("2024-01-10"), MustDate("2024-01-11")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is inconsistent")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}
