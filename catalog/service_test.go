package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"recipecatalog"
)

func newTestService(t *testing.T, buf *bytes.Buffer) *Service {
	t.Helper()
	return NewService(
		testRecipes(),
		recipecatalog.NewStreamQueryLogger(buf),
		tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"),
	)
}

func TestService(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, &buf)
	ctx := context.Background()

	assert.Equal(t, []int{2, 3}, ids(svc.Filter(ctx, Criteria{Category: "plat"})))
	assert.Equal(t, []int{4}, ids(svc.Search(ctx, "apple")))
	assert.Len(t, svc.Ingredients(ctx), 7)
	assert.Len(t, svc.Recipes(), 4)

	r, ok := svc.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Boeuf bourguignon", r.Name)
	_, ok = svc.Get(99)
	assert.False(t, ok)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first recipecatalog.QueryLog
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "filter", first.Operation)
	assert.Equal(t, 2, first.Results)
	assert.Equal(t, map[string]any{"category": "plat"}, first.Input)
}

func TestService_NilLogger(t *testing.T) {
	svc := NewService(nil, nil,
		tracenoop.NewTracerProvider().Tracer("test"),
		metricnoop.NewMeterProvider().Meter("test"))

	assert.Empty(t, svc.Filter(context.Background(), Criteria{}))
}
