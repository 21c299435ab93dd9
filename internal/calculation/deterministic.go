package calculation

import "time"

// nowFunc stamps PlanReport.GeneratedAt.
var nowFunc = time.Now

// SetNowFunc pins the report timestamp so summaries can be compared in tests.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc picks the generator seed for a simulator built with Seed 0.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc pins the fallback seed so unseeded runs become reproducible in tests.
func SetSeedFunc(f func() int64) { seedFunc = f }
