package okaara

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
)

func openTestPty(t *testing.T) (master, slave *os.File) {
	t.Helper()

	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		master.Close()
		slave.Close()
	})
	return master, slave
}

func TestPrompt_OverPty(t *testing.T) {
	master, slave := openTestPty(t)

	p := New(WithInput(slave), WithOutput(slave))

	// Input typed on the terminal is available before the prompt asks.
	if _, err := master.WriteString("Bob\n"); err != nil {
		t.Fatalf("master write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	name, err := p.Read(ctx, "Name: ")
	if err != nil {
		t.Fatalf("Read() over pty: %v", err)
	}
	if name != "Bob" {
		t.Errorf("Read() = %q, want %q", name, "Bob")
	}

	if err := master.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
		t.Skipf("pty read deadline unsupported: %v", err)
	}
	buf := make([]byte, 256)
	n, err := master.Read(buf)
	if err != nil {
		t.Fatalf("master read: %v", err)
	}
	if got := string(buf[:n]); !strings.Contains(got, "Name: ") {
		t.Errorf("terminal saw %q, want the prompt in it", got)
	}
}

func TestPrompt_WidthFollowsPty(t *testing.T) {
	master, slave := openTestPty(t)

	if err := pty.Setsize(master, &pty.Winsize{Rows: 24, Cols: 100}); err != nil {
		t.Skipf("pty resize unsupported: %v", err)
	}

	p := New(WithOutput(slave))
	if got := p.width(); got != 100 {
		t.Errorf("width() = %d, want 100 from the pty", got)
	}
}
