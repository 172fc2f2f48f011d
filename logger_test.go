package recipecatalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryLogFilePath(t *testing.T) {
	path := NewQueryLogFilePath("logs", "Web Server")
	assert.Equal(t, "logs", filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".web_server.json"), path)
}

func TestFileQueryLoggerFlush(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileQueryLogger(&buf)

	require.NoError(t, logger.LogQuery(QueryLog{Operation: "filter", Input: map[string]any{"category": "Dessert"}, Results: 2}))
	require.NoError(t, logger.LogQuery(QueryLog{Operation: "search", Results: 0}))
	assert.Zero(t, buf.Len(), "nothing is written before Flush")

	require.NoError(t, logger.Flush())

	var doc struct {
		Session struct {
			Queries []QueryLog `json:"queries"`
		} `json:"query_session"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Session.Queries, 2)
	assert.Equal(t, "filter", doc.Session.Queries[0].Operation)
	assert.Equal(t, "Dessert", doc.Session.Queries[0].Input["category"])
	assert.Equal(t, 2, doc.Session.Queries[0].Results)
	assert.Equal(t, "search", doc.Session.Queries[1].Operation)
}

func TestFileQueryLoggerNilWriter(t *testing.T) {
	logger := NewFileQueryLogger(nil)
	require.NoError(t, logger.LogQuery(QueryLog{Operation: "filter"}))
	assert.NoError(t, logger.Flush())
}

func TestStreamQueryLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStreamQueryLogger(&buf)

	require.NoError(t, logger.LogQuery(QueryLog{Operation: "filter", Results: 3, Duration: time.Millisecond}))
	require.NoError(t, logger.LogQuery(QueryLog{Operation: "ingredients", Error: "boom"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first QueryLog
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "filter", first.Operation)
	assert.Equal(t, 3, first.Results)
	assert.Equal(t, time.Millisecond, first.Duration)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestNoOpQueryLogger(t *testing.T) {
	assert.NoError(t, NewNoOpQueryLogger().LogQuery(QueryLog{Operation: "filter"}))
}
