/*
Package okaara is a terminal interaction helper: it wraps reading user input and writing formatted output so callers can prompt, color text, and record what was shown or entered for later verification.

It is not a TUI framework: no cursor positioning, no panes, no event loop. It is the thin layer between an interactive program and its terminal handles, made testable.

# Concept

A Prompt owns an input handle and an output handle. Writes flow through a formatting pipeline (optional renderer, centering, coloring) and are fully delivered before the call returns. Reads write their prompt through the same pipeline, then block for one line. Both can attach a tag; when tag recording is enabled the tags accumulate in per-instance ordered logs that tests assert against.

# Key Behaviors

  - Color toggling: with color disabled, colored writes emit the text byte-identical, with no escape sequences leaking.
  - Interrupts: ctrl+c during a read returns ErrAborted by default, or propagates as ErrInterrupted when the call opts in.
  - Exhaustion: a drained input source is ErrExhausted, always distinct from an abort and from a legitimate empty entry.
  - Scripting: a Script substitutes for the real input handle, feeding queued lines (and simulated interrupts) to the same code path.

# Usage

	package main

	import (
		"context"
		"errors"
		"fmt"
		"log"

		"github.com/pronix/okaara"
	)

	func main() {
		p := okaara.New(okaara.WithTagRecording(true))

		if err := p.Write("Welcome!", okaara.Colored(okaara.Green), okaara.Tagged("greeting")); err != nil {
			log.Fatal(err)
		}

		name, err := p.Read(context.Background(), "Name: ", okaara.ReadTagged("name"))
		switch {
		case errors.Is(err, okaara.ErrAborted):
			fmt.Println("cancelled")
			return
		case errors.Is(err, okaara.ErrExhausted):
			fmt.Println("no more input")
			return
		case err != nil:
			log.Fatal(err)
		}

		_ = p.Write("Hello, " + name)
	}

For menu-driven applications, see the shell package, which layers screens of triggered menu items over a Prompt.
*/
package okaara
