package cmd

import (
	"testing"
	"time"
)

func TestFormatUKDate(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "single digit day",
			time: time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
			want: "5 Jul 2024",
		},
		{
			name: "double digit day",
			time: time.Date(2024, time.December, 25, 12, 30, 0, 0, time.UTC),
			want: "25 Dec 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatUKDate(tt.time); got != tt.want {
				t.Errorf("formatUKDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDaysAgo(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{name: "today", days: 0, want: "today"},
		{name: "negative clamps to today", days: -3, want: "today"},
		{name: "one day", days: 1, want: "1 day ago"},
		{name: "many days", days: 42, want: "42 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDaysAgo(tt.days); got != tt.want {
				t.Errorf("formatDaysAgo(%d) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}
