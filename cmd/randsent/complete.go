package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	completions := getCompletions(args)
	for _, c := range completions {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

// getCompletions completes command names, the long flags of a command and,
// after -g, the names of the grammar directory.
func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	// args[0] is "randsent" (binary name from COMP_WORDS[0])
	app := newApp(UI{Out: io.Discard, Err: io.Discard})
	cursorIndex := len(args) - 1
	lastWord := args[cursorIndex]

	if cursorIndex == 1 && !strings.HasPrefix(lastWord, "-") {
		var completions []string
		for _, c := range app.Commands {
			if !c.Hidden && strings.HasPrefix(c.Name, lastWord) {
				completions = append(completions, c.Name)
			}
		}
		return completions
	}

	prev := args[cursorIndex-1]
	if prev == "-g" || prev == "--grammar-file" {
		return grammarCompletions(args, lastWord)
	}

	if !strings.HasPrefix(lastWord, "--") {
		return nil
	}

	flags := app.Flags
	if cmd := app.Command(args[1]); cmd != nil {
		flags = cmd.Flags
	}

	var completions []string
	for _, f := range flags {
		name := "--" + f.Names()[0]
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}
	return completions
}

// grammarCompletions lists the stored grammars whose name starts with
// prefix. The directory comes from -d or the environment.
func grammarCompletions(args []string, prefix string) []string {
	dir := os.Getenv(envGrammarPath)
	for i := 1; i < len(args)-1; i++ {
		if args[i] == "-d" || args[i] == "--grammar-path" {
			dir = args[i+1]
		}
	}

	if dir == "" {
		return nil
	}

	names, err := NewGrammarRepository(dir).Names()
	if err != nil {
		return nil
	}

	var completions []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			completions = append(completions, n)
		}
	}
	return completions
}
