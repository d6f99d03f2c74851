package portfolio

import "time"

// SignalWindow is the trailing window of signal records exposed to the
// dashboard. The bot logs every scan, not just actionable signals, so the
// full feed grows without bound.
const SignalWindow = 7 * 24 * time.Hour

// RecentSignals keeps signal records checked within the window ending at
// now. Signal records have no fixed schema, so they pass through as raw
// maps; records with no parseable check time are dropped.
func RecentSignals(signals []map[string]any, now time.Time) []map[string]any {
	cutoff := now.Add(-SignalWindow)
	var recent []map[string]any
	for _, s := range signals {
		ts := timeField(s, "checked_at")
		if ts.IsZero() {
			ts = timeField(s, "timestamp")
		}
		if !ts.IsZero() && !ts.Before(cutoff) {
			recent = append(recent, s)
		}
	}
	return recent
}
