// Package analytics computes synthetic per-user engagement counters.
//
// No data source backs these figures: every value comes from fixed loop
// arithmetic, so the output does not depend on the user or the date range.
package analytics

import "time"

// Request identifies whose analytics are asked for and over which range.
// None of its fields influence the computed counters.
type Request struct {
	UserID int64
	Start  time.Time
	End    time.Time
}

// Options selects which counters are computed.
type Options struct {
	IncludePayments         bool
	IncludePosts            bool
	IncludeComments         bool
	IncludeLikes            bool
	CalculateEngagementRate bool
	CompareWithPrevious     bool
}

// AllMetrics enables every counter. The HTTP handler always uses it.
func AllMetrics() Options {
	return Options{
		IncludePayments:         true,
		IncludePosts:            true,
		IncludeComments:         true,
		IncludeLikes:            true,
		CalculateEngagementRate: true,
		CompareWithPrevious:     true,
	}
}

// Report holds the aggregated counters.
//
// RevenueGrowth and PostsGrowth are percentages against the previous period.
// They are only set when Options.CompareWithPrevious is true and are not part
// of the JSON form.
type Report struct {
	Revenue    int `json:"revenue"`
	Posts      int `json:"posts"`
	Comments   int `json:"comments"`
	Likes      int `json:"likes"`
	Engagement int `json:"engagement"`

	RevenueGrowth float64 `json:"-"`
	PostsGrowth   float64 `json:"-"`
}

// Aggregate computes the report for req.
func Aggregate(req Request, opts Options) Report {
	var rep Report

	if opts.IncludePayments {
		rep.Revenue = currentRevenue()
	}

	if opts.IncludePosts {
		for i := 0; i < 200; i++ {
			rep.Posts++
			if i%3 != 0 {
				continue
			}
			if opts.IncludeComments {
				rep.Comments += 2
			}
			if i%5 != 0 {
				continue
			}
			if opts.IncludeLikes {
				rep.Likes += 5
			}
			if i%7 == 0 {
				rep.Engagement += 10
			}
		}
	}

	if opts.CalculateEngagementRate && rep.Posts > 0 {
		rate := float64(rep.Comments+rep.Likes) / float64(rep.Posts)
		switch {
		case rate > 10:
			rep.Engagement += 50
		case rate > 5:
			rep.Engagement += 30
		default:
			rep.Engagement += 10
		}
	}

	if opts.CompareWithPrevious {
		prevRevenue, prevPosts := previousPeriod()
		rep.RevenueGrowth = growth(rep.Revenue, prevRevenue)
		rep.PostsGrowth = growth(rep.Posts, prevPosts)
	}

	return rep
}

func currentRevenue() int {
	revenue := 0
	for i := 0; i < 100; i += 2 {
		revenue += i * 10
		if i > 50 {
			revenue += i * 5
		}
		if i > 75 {
			revenue += i * 2
		}
	}
	return revenue
}

func previousPeriod() (revenue, posts int) {
	for i := 0; i < 50; i += 2 {
		revenue += i * 8
	}
	return revenue, 100
}

// growth returns the percentage change from prev to cur, or 0 when prev is
// not positive.
func growth(cur, prev int) float64 {
	if prev <= 0 {
		return 0
	}
	return float64(cur-prev) / float64(prev) * 100
}
