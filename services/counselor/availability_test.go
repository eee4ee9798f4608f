package counselor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAvailability(t *testing.T) {
	cases := []struct {
		name         string
		availability map[string][]string
		wantErr      string
	}{
		{
			name:         "empty map",
			availability: map[string][]string{},
		},
		{
			name: "well formed week",
			availability: map[string][]string{
				"Monday":    {"09:00-12:00", "14:00-16:00"},
				"Wednesday": {"08:30-10:30"},
				"Saturday":  {"10:00-11:00"},
			},
		},
		{
			name:         "unsorted input is fine",
			availability: map[string][]string{"Monday": {"14:00-16:00", "09:00-12:00"}},
		},
		{
			name:         "touching ranges are fine",
			availability: map[string][]string{"Monday": {"09:00-12:00", "12:00-14:00"}},
		},
		{
			name:         "unknown weekday",
			availability: map[string][]string{"Funday": {"09:00-12:00"}},
			wantErr:      "unknown weekday",
		},
		{
			name:         "lowercase weekday rejected",
			availability: map[string][]string{"monday": {"09:00-12:00"}},
			wantErr:      "unknown weekday",
		},
		{
			name:         "malformed range",
			availability: map[string][]string{"Monday": {"9:00-12:00"}},
			wantErr:      "malformed range",
		},
		{
			name:         "out of clock range",
			availability: map[string][]string{"Monday": {"24:00-25:00"}},
			wantErr:      "malformed range",
		},
		{
			name:         "start not before end",
			availability: map[string][]string{"Monday": {"12:00-09:00"}},
			wantErr:      "must start before",
		},
		{
			name:         "zero length range",
			availability: map[string][]string{"Monday": {"09:00-09:00"}},
			wantErr:      "must start before",
		},
		{
			name:         "overlapping ranges",
			availability: map[string][]string{"Monday": {"09:00-12:00", "11:00-13:00"}},
			wantErr:      "overlap",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAvailability(tc.availability)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
