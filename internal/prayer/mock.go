package prayer

// mockTimings is the static fallback used when the timings provider is
// unreachable or returns malformed data. The prayer list must never come
// up empty, so a representative schedule is better than an error screen.
var mockTimings = map[string]string{
	"Fajr":    "06:18",
	"Sunrise": "07:47",
	"Dhuhr":   "12:54",
	"Asr":     "15:28",
	"Maghrib": "17:51",
	"Isha":    "19:14",
}

// MockTimings returns a copy of the fallback timings map.
func MockTimings() map[string]string {
	out := make(map[string]string, len(mockTimings))
	for k, v := range mockTimings {
		out[k] = v
	}
	return out
}
