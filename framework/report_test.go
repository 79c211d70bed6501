package framework

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestWriteReport(t *testing.T) {
	r := NewRunner(nil, nil, 0)
	require.NoError(t, r.Register("good", func(t *T) {
		t.AttachDiagnostic("items", ldvalue.Int(12))
	}))
	require.NoError(t, r.Register("bad", func(t *T) {
		t.Run("mismatch", func(t *T) {
			t.Errorf("wanted 1, got 2")
		})
	}))
	results := r.Run(context.Background())

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))

	var doc struct {
		OK     bool `json:"ok"`
		Suites []struct {
			Name        string                     `json:"name"`
			Outcome     string                     `json:"outcome"`
			Errors      []string                   `json:"errors"`
			Diagnostics map[string]json.RawMessage `json:"diagnostics"`
			Cases       []struct {
				Name   string   `json:"name"`
				Errors []string `json:"errors"`
			} `json:"cases"`
		} `json:"suites"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.False(t, doc.OK)
	require.Len(t, doc.Suites, 2)
	assert.Equal(t, "good", doc.Suites[0].Name)
	assert.Equal(t, "passed", doc.Suites[0].Outcome)
	assert.JSONEq(t, "12", string(doc.Suites[0].Diagnostics["items"]))
	assert.Equal(t, "bad", doc.Suites[1].Name)
	assert.Equal(t, "failed", doc.Suites[1].Outcome)
	require.Len(t, doc.Suites[1].Cases, 1)
	assert.Equal(t, []string{"wanted 1, got 2"}, doc.Suites[1].Cases[0].Errors)
}

func TestWriteReportFile(t *testing.T) {
	r := NewRunner(nil, nil, 0)
	require.NoError(t, r.Register("only", func(*T) {}))
	results := r.Run(context.Background())

	path := t.TempDir() + "/report.json"
	require.NoError(t, WriteReportFile(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, true, doc["ok"])
}
