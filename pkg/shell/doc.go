/*
Package shell builds interactive, multi-screen command loops on top of the
okaara prompt.

# Concept

A shell consists of one or more screens, each carrying its own menu of
items. Only the active screen's menu answers user input; a small shell-level
menu (help, clear, quit, and screen navigation) works everywhere. Actions
move between screens with Transition, Previous and Home, and stop the loop
by returning ErrExit.

# Usage

	sh := shell.New(shell.WithPrompt(okaara.New()))

	files := shell.NewScreen("files")
	files.Add(shell.NewItem("list tracked files", listFiles, "l", "list"))
	files.Add(shell.NewItem("show a file", showFile, "s", "show"))

	if err := sh.Add(files); err != nil {
		log.Fatal(err)
	}

	if err := sh.Run(context.Background()); err != nil {
		log.Fatal(err)
	}

The user picks items by typing a trigger, optionally followed by arguments
that are handed to the item's Action. Typing "?" renders the menu; "q" ends
the loop.
*/
package shell
