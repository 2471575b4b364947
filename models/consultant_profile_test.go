package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Short sessions must still credit delivered time; 30 minutes is half an
// hour, not zero.
func TestHoursDelivered(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    float64
	}{
		{name: "nothing delivered", minutes: 0, want: 0},
		{name: "single half-hour session", minutes: 30, want: 0.5},
		{name: "three quarters", minutes: 45, want: 0.75},
		{name: "whole hours", minutes: 120, want: 2},
		{name: "accumulated mix", minutes: 30 + 60 + 45, want: 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ConsultantProfile{MinutesDelivered: tt.minutes}
			assert.Equal(t, tt.want, p.HoursDelivered())
		})
	}
}
