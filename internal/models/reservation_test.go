package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckInStatus_CanTransition(t *testing.T) {
	statuses := []CheckInStatus{BeforeCheckIn, CheckedIn, CheckedOut, NoShow}

	legal := map[CheckInStatus]map[CheckInStatus]bool{
		BeforeCheckIn: {CheckedIn: true, NoShow: true},
		CheckedIn:     {CheckedOut: true},
		CheckedOut:    {},
		NoShow:        {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			expected := legal[from][to]
			assert.Equal(t, expected, from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestCheckInStatus_IsTerminal(t *testing.T) {
	assert.False(t, BeforeCheckIn.IsTerminal())
	assert.False(t, CheckedIn.IsTerminal())
	assert.True(t, CheckedOut.IsTerminal())
	assert.True(t, NoShow.IsTerminal())
}

func TestShift_Overlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
	}

	base := &Shift{StartTime: at(10), EndTime: at(12)}

	tests := []struct {
		name     string
		other    *Shift
		overlaps bool
	}{
		{"contained", &Shift{StartTime: at(11), EndTime: at(13)}, true},
		{"identical", &Shift{StartTime: at(10), EndTime: at(12)}, true},
		{"surrounding", &Shift{StartTime: at(9), EndTime: at(13)}, true},
		{"touching end", &Shift{StartTime: at(12), EndTime: at(13)}, false},
		{"touching start", &Shift{StartTime: at(8), EndTime: at(10)}, false},
		{"disjoint", &Shift{StartTime: at(14), EndTime: at(15)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}
