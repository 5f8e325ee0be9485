package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 15 {
		t.Errorf("unexpected date: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("date should be at midnight, got %v", d)
	}

	if _, err := ParseDate("15.01.2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty string")
	}
}

func TestDate_UnmarshalJSON_TimestampSuffix(t *testing.T) {
	// PostgREST renders plain date columns as "2006-01-02", but be tolerant
	// of a timestamp column sneaking in.
	var d Date
	if err := json.Unmarshal([]byte(`"2024-01-15T00:00:00"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-01-15" {
		t.Errorf("unexpected date: %s", d)
	}

	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("null should decode to zero date: %v", err)
	}
	if !d.IsZero() {
		t.Error("expected zero date after null")
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, 3, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2024-03-07"` {
		t.Errorf("unexpected json: %s", data)
	}

	data, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("zero date should marshal to null, got %s", data)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"Low", PriorityLow},
		{"low", PriorityLow},
		{"HIGH", PriorityHigh},
		{" medium ", PriorityMedium},
		{"unknown", PriorityMedium},
		{"", PriorityMedium},
	}

	for _, tt := range tests {
		if got := ParsePriority(tt.input); got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPriority_UnmarshalNormalizes(t *testing.T) {
	tests := []struct {
		row  string
		want Priority
	}{
		{`{"priority":"high"}`, PriorityHigh},
		{`{"priority":"LOW"}`, PriorityLow},
		{`{"priority":"urgent"}`, PriorityMedium},
		{`{"priority":null}`, PriorityMedium},
		{`{}`, Priority("")},
	}

	for _, tt := range tests {
		var got Task
		if err := json.Unmarshal([]byte(tt.row), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.row, err)
		}
		if got.Priority != tt.want {
			t.Errorf("Unmarshal(%s) priority = %q, want %q", tt.row, got.Priority, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2024, 5, 20, 18, 42, 13, 999, time.Local)
	got := NormalizeDate(in)

	want := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("NormalizeDate = %v, want %v", got, want)
	}
}
