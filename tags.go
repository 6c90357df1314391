package okaara

// tagLog is an ordered, per-instance record of the tags attached to write or
// read calls. Appends are guarded by the enabled flag fixed at construction;
// duplicates are preserved and order is never changed. Recording is
// best-effort by contract: it can never fail the surrounding write or read.
type tagLog struct {
	enabled bool
	entries []string
}

func (l *tagLog) record(tag string) {
	if !l.enabled {
		return
	}
	l.entries = append(l.entries, tag)
}

// all returns a copy of the recorded tags in call order. Empty when
// recording was never enabled, no matter how many tagged calls were made.
func (l *tagLog) all() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}
