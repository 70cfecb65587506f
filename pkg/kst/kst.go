// Package kst provides the wall clock of the brief. Every label in the report is printed in Korea Standard Time.
package kst

import "time"

// Location is Korea Standard Time. Korea has no daylight saving, so a fixed zone is exact.
var Location = time.FixedZone("KST", 9*60*60)

// Clock returns the current time. Jobs hold a Clock so tests can freeze the date.
type Clock func() time.Time

// Now returns the current time in KST.
func Now() time.Time {
	return time.Now().In(Location)
}

// Fixed returns a Clock that always reports t converted to KST.
func Fixed(t time.Time) Clock {
	return func() time.Time {
		return t.In(Location)
	}
}

// ISO formats t the way the status record stores timestamps: microseconds and a numeric offset.
func ISO(t time.Time) string {
	return t.In(Location).Format("2006-01-02T15:04:05.000000-07:00")
}
