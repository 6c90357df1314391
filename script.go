package okaara

import "context"

type scriptEntry struct {
	line string
	err  error
}

// Script is a pre-loaded input source that simulates a user: each read pops
// the next queued entry in FIFO order. It satisfies LineSource, so it is
// substitutable for a real input handle without the engine noticing.
//
// Reading past the end returns ErrExhausted, never an empty string and
// never an abort, so tests can tell the three outcomes apart.
type Script struct {
	entries []scriptEntry
}

// NewScript builds a scripted source from the simulated user's successive
// entries.
func NewScript(lines ...string) *Script {
	s := &Script{}
	for _, line := range lines {
		s.PushLine(line)
	}
	return s
}

// PushLine queues one more entry at the end of the script.
func (s *Script) PushLine(line string) {
	s.entries = append(s.entries, scriptEntry{line: line})
}

// PushInterrupt queues a simulated user interrupt (ctrl+c equivalent). The
// read that pops it fails with ErrInterrupted, which Read converts to an
// abort or propagates depending on the call.
func (s *Script) PushInterrupt() {
	s.entries = append(s.entries, scriptEntry{err: ErrInterrupted})
}

// Remaining reports how many entries have not been consumed yet.
func (s *Script) Remaining() int {
	return len(s.entries)
}

// ReadLine pops and returns the first remaining entry.
func (s *Script) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.entries) == 0 {
		return "", ErrExhausted
	}
	head := s.entries[0]
	s.entries = s.entries[1:]
	if head.err != nil {
		return "", head.err
	}
	return head.line, nil
}
