package okaara

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// LineSource is the input handle contract: a blocking "read one line"
// operation that returns the line, or signals exhaustion or a user
// interrupt. Both the reader built over a real handle and Script satisfy it,
// so either can be injected transparently.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

type readResult struct {
	text string
	err  error
}

// lineReader adapts an io.Reader to LineSource. A background goroutine pumps
// completed lines into a channel so a blocked terminal read can be abandoned
// when the context is cancelled; the ReadLine API itself stays synchronous.
type lineReader struct {
	reader  *bufio.Reader
	results chan readResult
	once    sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	// One slot of lookahead lets the pump park a completed line when the
	// waiting read was abandoned; the next ReadLine picks it up.
	return &lineReader{
		reader:  bufio.NewReader(r),
		results: make(chan readResult, 1),
	}
}

func (lr *lineReader) pump() {
	for {
		text, err := lr.reader.ReadString('\n')

		// A final unterminated line still belongs to the caller.
		if text != "" {
			lr.results <- readResult{text: text}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.results <- readResult{err: err}
			}
			close(lr.results)
			return
		}
	}
}

// ReadLine blocks for the next line, with the trailing line terminator
// (\n or \r\n) stripped. A cancelled context surfaces as its error; a
// drained reader surfaces as ErrExhausted.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lr.once.Do(func() { go lr.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lr.results:
		if !ok {
			return "", ErrExhausted
		}
		if res.err != nil {
			return "", res.err
		}
		return trimLineEnding(res.text), nil
	}
}
