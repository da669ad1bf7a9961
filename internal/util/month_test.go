package util

import (
	"testing"
	"time"
)

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(2024, 3)
	if year != 2024 || month != 2 {
		t.Errorf("Expected 2024-02, got %d-%02d", year, month)
	}

	year, month = PreviousMonth(2024, 1)
	if year != 2023 || month != 12 {
		t.Errorf("Expected 2023-12 across the year boundary, got %d-%02d", year, month)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, 2)
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2024-02-01, got %v", start)
	}
	// 2024 is a leap year
	if !end.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2024-02-29, got %v", end)
	}

	start, end = MonthBounds(2023, 12)
	if !start.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2023-12-01, got %v", start)
	}
	if !end.Equal(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected 2023-12-31, got %v", end)
	}
}
