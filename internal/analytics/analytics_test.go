package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateAllMetrics(t *testing.T) {
	rep := Aggregate(Request{UserID: 1, Start: time.Now(), End: time.Now()}, AllMetrics())

	assert.Equal(t, 35588, rep.Revenue)
	assert.Equal(t, 200, rep.Posts)
	assert.Equal(t, 134, rep.Comments)
	assert.Equal(t, 70, rep.Likes)
	assert.Equal(t, 30, rep.Engagement)
	assert.InDelta(t, 641.4166, rep.RevenueGrowth, 0.001)
	assert.InDelta(t, 100.0, rep.PostsGrowth, 1e-9)
}

func TestAggregateIgnoresRequest(t *testing.T) {
	base := Aggregate(Request{UserID: 1}, AllMetrics())

	for _, req := range []Request{
		{UserID: 0},
		{UserID: -42},
		{UserID: 987654321, Start: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Now()},
	} {
		assert.Equal(t, base, Aggregate(req, AllMetrics()))
	}
}

func TestAggregateNoMetrics(t *testing.T) {
	rep := Aggregate(Request{}, Options{})

	assert.Equal(t, Report{}, rep)
}

func TestAggregateEngagementWithoutPosts(t *testing.T) {
	rep := Aggregate(Request{}, Options{IncludePayments: true, CalculateEngagementRate: true})

	assert.Equal(t, 35588, rep.Revenue)
	assert.Zero(t, rep.Engagement)
}

func TestAggregateGrowthWithoutRevenue(t *testing.T) {
	rep := Aggregate(Request{}, Options{CompareWithPrevious: true})

	assert.InDelta(t, -100.0, rep.RevenueGrowth, 1e-9)
	assert.InDelta(t, -100.0, rep.PostsGrowth, 1e-9)
}

func TestReportJSONOmitsGrowth(t *testing.T) {
	data, err := json.Marshal(Aggregate(Request{}, AllMetrics()))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 5)
	assert.NotContains(t, fields, "RevenueGrowth")
}

func TestGrowth(t *testing.T) {
	assert.Zero(t, growth(10, 0))
	assert.InDelta(t, 50.0, growth(15, 10), 1e-9)
}
