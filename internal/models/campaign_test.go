package models

import "testing"

func TestCampaignEndTime(t *testing.T) {
	c := Campaign{CreationTime: 5, Duration: 10}
	if got := c.EndTime(); got != 15 {
		t.Fatalf("EndTime() = %d, want 15", got)
	}
}

func TestCampaignActiveAtInclusiveBounds(t *testing.T) {
	c := Campaign{CreationTime: 5, Duration: 10}
	cases := []struct {
		hour int
		want bool
	}{
		{4, false},
		{5, true},
		{10, true},
		{15, true},
		{16, false},
	}
	for _, tc := range cases {
		if got := c.ActiveAt(tc.hour); got != tc.want {
			t.Fatalf("ActiveAt(%d) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}
