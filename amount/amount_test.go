package amount

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		wantErr string
	}{
		{name: "whole number", input: "100", want: 100 * scale},
		{name: "fractional", input: "10.5", want: 105 * scale / 10},
		{name: "max fractional digits", input: "1.1234567", want: 1*scale + 1234567},
		{name: "zero", input: "0", want: 0},
		{name: "leading dot", input: ".5", want: 5 * scale / 10},
		{name: "max trust limit", input: "922337203685.4775807", want: math.MaxInt64},
		{name: "negative", input: "-5", want: -5 * scale},
		{name: "empty", input: "", wantErr: "empty amount string"},
		{name: "comma separator rejected", input: "1,000", wantErr: "comma is not a valid decimal separator"},
		{name: "too many fractional digits", input: "1.12345678", wantErr: "more than 7 fractional digits"},
		{name: "overflow", input: "922337203686", wantErr: "exceeds i64::MAX/10^7"},
		{name: "non digit", input: "12a", wantErr: "non-digit characters"},
		{name: "no digits at all", input: ".", wantErr: "no digits"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_String(t *testing.T) {
	testCases := []struct {
		stroops int64
		want    string
	}{
		{stroops: 1000000000, want: "100"},
		{stroops: 105000000, want: "10.5"},
		{stroops: 11234567, want: "1.1234567"},
		{stroops: 0, want: "0"},
		{stroops: -50000000, want: "-5"},
		{stroops: math.MaxInt64, want: "922337203685.4775807"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, String(tc.stroops))
	}
}

func Test_ParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"100", "0.0000001", "922337203685.4775807", "0"} {
		stroops, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, String(stroops))
	}
}
