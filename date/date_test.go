package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-02", want: New(2025, time.January, 2)},
		{in: "2025-1-2", want: New(2025, time.January, 2)},
		{in: "2024-2-29", want: New(2024, time.February, 29)},
		{in: "02/01/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOrdering(t *testing.T) {
	a := New(2025, time.March, 31)
	b := New(2025, time.April, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %v should be before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %v should be after %v", b, a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("Compare(%v, %v) = %d, want 0", a, a, a.Compare(a))
	}
}

func TestAdd(t *testing.T) {
	d := New(2025, time.January, 31)
	if got := d.Add(1); !got.Equal(New(2025, time.February, 1)) {
		t.Errorf("Add(1) = %v, want 2025-02-01", got)
	}
	if got := d.Add(-31); !got.Equal(New(2024, time.December, 31)) {
		t.Errorf("Add(-31) = %v, want 2024-12-31", got)
	}
}

func TestEndOfMonth(t *testing.T) {
	testCases := []struct{ in, want Date }{
		{New(2025, time.January, 5), New(2025, time.January, 31)},
		{New(2024, time.February, 1), New(2024, time.February, 29)},
		{New(2025, time.December, 31), New(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		if got := tc.in.EndOfMonth(); !got.Equal(tc.want) {
			t.Errorf("EndOfMonth(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.July, 4)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2025-07-04"` {
		t.Errorf("Marshal() = %s, want %q", b, `"2025-07-04"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("Unmarshal(\"\") error = %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("empty string should decode to the zero date, got %v", zero)
	}
}
