package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/ghsa-feed/pkg/report"
	"github.com/aquasecurity/ghsa-feed/pkg/types"
)

var testBatch = types.AdvisoryBatch{
	{
		ID:         "GHSA-xxxx-0001",
		Summary:    "Remote code execution in parser",
		Severity:   "CRITICAL",
		CVSSVector: lo.ToPtr("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"),
	},
	{
		ID:       "GHSA-xxxx-0002",
		Summary:  "Denial of service",
		Severity: "MODERATE",
	},
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNewWriter(t *testing.T) {
	for _, format := range report.Formats {
		t.Run(format, func(t *testing.T) {
			w, err := report.NewWriter(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, w)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := report.NewWriter("xml", &bytes.Buffer{})
		require.Error(t, err)

		var ce *types.ConfigurationError
		assert.ErrorAs(t, err, &ce)
		assert.Contains(t, err.Error(), `unknown format "xml"`)
	})
}

func TestTextWriter_Write(t *testing.T) {
	t.Run("advisories", func(t *testing.T) {
		want, err := os.ReadFile(filepath.Join("testdata", "text.golden"))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = report.TextWriter{Output: &buf}.Write(testBatch)
		require.NoError(t, err)
		assert.Equal(t, string(want), buf.String())
	})

	t.Run("empty batch", func(t *testing.T) {
		var buf bytes.Buffer
		err := report.TextWriter{Output: &buf}.Write(types.AdvisoryBatch{})
		require.NoError(t, err)
		assert.Equal(t, "+------------------------------+\n", buf.String())
	})

	t.Run("empty vector is not N/A", func(t *testing.T) {
		var buf bytes.Buffer
		err := report.TextWriter{Output: &buf}.Write(types.AdvisoryBatch{
			{ID: "GHSA-xxxx-0003", Summary: "s", Severity: "LOW", CVSSVector: lo.ToPtr("")},
		})
		require.NoError(t, err)
		assert.Equal(t, "+------------------------------+\nGHSA-xxxx-0003\ns\n\nLOW\n+------------------------------+\n", buf.String())
	})
}

func TestTableWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	err := report.TableWriter{Output: &buf}.Write(append(testBatch, types.Advisory{
		ID:         "GHSA-xxxx-0003",
		Summary:    "Truncated vector in a very long summary that goes on and on",
		Severity:   "LOW",
		CVSSVector: lo.ToPtr("CVSS:3.1/AV:N/AC:L"),
	}))
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "GHSA-xxxx-0001")
	assert.Contains(t, got, "9.8")
	assert.Contains(t, got, "CRITICAL")
	assert.Contains(t, got, "MODERATE")
	assert.Contains(t, got, "N/A")
	assert.Contains(t, got, "Truncated vector in a very long summary that ...")
	assert.NotContains(t, got, "goes on and on")
	assert.Contains(t, got, "TOTAL")
}

func TestJSONWriter_Write(t *testing.T) {
	tests := []struct {
		name  string
		batch types.AdvisoryBatch
		want  string
	}{
		{
			name:  "advisories",
			batch: testBatch,
			want: `{"count":2,"advisories":[
				{"id":"GHSA-xxxx-0001","summary":"Remote code execution in parser","severity":"CRITICAL","cvssVector":"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
				{"id":"GHSA-xxxx-0002","summary":"Denial of service","severity":"MODERATE","cvssVector":null}]}`,
		},
		{
			name:  "nil batch",
			batch: nil,
			want:  `{"count":0,"advisories":[]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := report.JSONWriter{Output: &buf}.Write(tt.batch)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, buf.String())
			assert.True(t, json.Valid(buf.Bytes()))
		})
	}
}
