package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		record func()
	}{
		{
			name:   "success",
			record: func() { RecordCheckSuccess(1, 250*time.Millisecond) },
		},
		{
			name:   "failure",
			record: func() { RecordCheckFailure(1, 2*time.Second) },
		},
		{
			name:   "skipped",
			record: func() { RecordCheckSkipped(1) },
		},
		{
			name:   "zero duration",
			record: func() { RecordCheckSuccess(2, 0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, tt.record)
		})
	}
}

func TestRecordPagePipeline(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPageIngested(7)
		RecordPageArchived()
		RecordImageCacheFailure()
		RecordSourceDisabled()
	})
}

func TestUpdateWatchersActive(t *testing.T) {
	UpdateWatchersActive(5)

	m := &dto.Metric{}
	require.NoError(t, WatchersActive.Write(m))
	assert.Equal(t, float64(5), m.GetGauge().GetValue())

	UpdateWatchersActive(0)
	require.NoError(t, WatchersActive.Write(m))
	assert.Equal(t, float64(0), m.GetGauge().GetValue())
}

func TestUpdatePagesTotal(t *testing.T) {
	UpdatePagesTotal(120, 34)

	m := &dto.Metric{}
	require.NoError(t, PagesTotal.WithLabelValues("live").Write(m))
	assert.Equal(t, float64(120), m.GetGauge().GetValue())

	require.NoError(t, PagesTotal.WithLabelValues("archive").Write(m))
	assert.Equal(t, float64(34), m.GetGauge().GetValue())
}

func TestUpdateSourcesTotal(t *testing.T) {
	UpdateSourcesTotal(12)

	m := &dto.Metric{}
	require.NoError(t, SourcesTotal.Write(m))
	assert.Equal(t, float64(12), m.GetGauge().GetValue())
}

func TestRecordDBQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("select_pages", 3*time.Millisecond)
	})
}
