package views

import (
	"testing"
	"time"
)

func TestDisplayedDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-15 10:30:00", "2024-01-15"},
		{"1999-12-31 23:59:59", "1999-12-31"},
		{"not a timestamp", "not a timestamp"},
	}
	for _, tt := range tests {
		if got := DisplayedDate(tt.input); got != tt.want {
			t.Errorf("DisplayedDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestApproximateDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{-10 * time.Second, "In the future"},
		{10 * time.Second, "Just now"},
		{90 * time.Second, "A minute ago"},
		{10 * time.Minute, "10 minutes ago"},
		{90 * time.Minute, "An hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{30 * time.Hour, "A day ago"},
		{3 * 24 * time.Hour, "3 days ago"},
		{8 * 24 * time.Hour, "A week ago"},
		{20 * 24 * time.Hour, "2 weeks ago"},
		{40 * 24 * time.Hour, "A month ago"},
		{120 * 24 * time.Hour, "4 months ago"},
		{400 * 24 * time.Hour, "A year ago"},
		{1100 * 24 * time.Hour, "3 years ago"},
	}
	for _, tt := range tests {
		stamp := now.Add(-tt.ago).Format(exactFormat)
		if got := ApproximateDate(stamp, now); got != tt.want {
			t.Errorf("ApproximateDate(%s ago) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestApproximateDatePassthrough(t *testing.T) {
	if got := ApproximateDate("garbage", time.Now()); got != "garbage" {
		t.Errorf("ApproximateDate(garbage) = %q, want passthrough", got)
	}
}
