package types_test

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

func TestSeverity_Colorize(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	tests := []struct {
		name     string
		severity types.Severity
		label    string
		want     string
	}{
		{
			name:     "moderate keeps its label",
			severity: types.SeverityMedium,
			label:    "MODERATE",
			want:     "\x1b[33mMODERATE\x1b[0m",
		},
		{
			name:     "critical",
			severity: types.SeverityCritical,
			label:    "CRITICAL",
			want:     "\x1b[31mCRITICAL\x1b[0m",
		},
		{
			name:     "out of range",
			severity: types.Severity(42),
			label:    "WHATEVER",
			want:     "\x1b[36mWHATEVER\x1b[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.Colorize(tt.label))
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "MEDIUM", types.SeverityMedium.String())
	assert.Equal(t, "UNKNOWN", types.SeverityUnknown.String())
}

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration",
			err:  &types.ConfigurationError{Err: cause},
			want: "configuration error: boom",
		},
		{
			name: "transport",
			err:  &types.TransportError{Err: cause},
			want: "transport error: boom",
		},
		{
			name: "deserialization",
			err:  &types.DeserializationError{Err: cause},
			want: "deserialization error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}
