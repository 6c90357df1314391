package okaara

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"
)

func TestLineReader_SplitsLines(t *testing.T) {
	lr := newLineReader(strings.NewReader("one\ntwo\nthree\n"))
	ctx := context.Background()

	for _, want := range []string{"one", "two", "three"} {
		got, err := lr.ReadLine(ctx)
		if err != nil {
			t.Fatalf("ReadLine() error: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := lr.ReadLine(ctx); !errors.Is(err, ErrExhausted) {
		t.Errorf("ReadLine() after drain = %v, want ErrExhausted", err)
	}
}

func TestLineReader_StripsCRLF(t *testing.T) {
	lr := newLineReader(strings.NewReader("windows\r\nunix\n"))
	ctx := context.Background()

	got, err := lr.ReadLine(ctx)
	if err != nil || got != "windows" {
		t.Errorf("ReadLine() = %q, %v, want %q, nil", got, err, "windows")
	}

	got, err = lr.ReadLine(ctx)
	if err != nil || got != "unix" {
		t.Errorf("ReadLine() = %q, %v, want %q, nil", got, err, "unix")
	}
}

func TestLineReader_FinalUnterminatedLine(t *testing.T) {
	lr := newLineReader(strings.NewReader("complete\npartial"))
	ctx := context.Background()

	if got, _ := lr.ReadLine(ctx); got != "complete" {
		t.Fatalf("first ReadLine() = %q, want %q", got, "complete")
	}

	got, err := lr.ReadLine(ctx)
	if err != nil {
		t.Fatalf("ReadLine() error on unterminated line: %v", err)
	}
	if got != "partial" {
		t.Errorf("ReadLine() = %q, want %q", got, "partial")
	}

	if _, err := lr.ReadLine(ctx); !errors.Is(err, ErrExhausted) {
		t.Errorf("ReadLine() = %v, want ErrExhausted", err)
	}
}

func TestLineReader_EmptyInputIsExhausted(t *testing.T) {
	lr := newLineReader(strings.NewReader(""))

	if _, err := lr.ReadLine(context.Background()); !errors.Is(err, ErrExhausted) {
		t.Errorf("ReadLine() = %v, want ErrExhausted", err)
	}
}

func TestLineReader_ReadErrorSurfaces(t *testing.T) {
	boom := errors.New("device gone")
	lr := newLineReader(io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(boom)))
	ctx := context.Background()

	got, err := lr.ReadLine(ctx)
	if err != nil || got != "partial" {
		t.Fatalf("ReadLine() = %q, %v, want partial text first", got, err)
	}

	if _, err := lr.ReadLine(ctx); !errors.Is(err, boom) {
		t.Errorf("ReadLine() = %v, want %v", err, boom)
	}

	if _, err := lr.ReadLine(ctx); !errors.Is(err, ErrExhausted) {
		t.Errorf("ReadLine() after error = %v, want ErrExhausted", err)
	}
}

func TestLineReader_CancelledContextPreemptsInput(t *testing.T) {
	lr := newLineReader(strings.NewReader("unread\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := lr.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ReadLine() = %v, want context.Canceled", err)
	}

	// The line is still there for a live context.
	got, err := lr.ReadLine(context.Background())
	if err != nil || got != "unread" {
		t.Errorf("ReadLine() = %q, %v, want the untouched line", got, err)
	}
}

func TestLineReader_CancelWhileBlocked(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	lr := newLineReader(r)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if _, err := lr.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("ReadLine() = %v, want context.Canceled", err)
	}

	// A line arriving after the abandoned read belongs to the next caller.
	if _, err := w.Write([]byte("late\n")); err != nil {
		t.Fatalf("pipe write: %v", err)
	}

	got, err := lr.ReadLine(context.Background())
	if err != nil || got != "late" {
		t.Errorf("ReadLine() = %q, %v, want %q, nil", got, err, "late")
	}
}
