// Copyright
// SPDX-License-Identifier: MIT
// text-editor: a small terminal text editor with undo, dirty tracking, and
// async file I/O.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"

	"github.com/JoaoMadeiraxyz/text-editor/internal/config"
	"github.com/JoaoMadeiraxyz/text-editor/internal/tui"
	"github.com/JoaoMadeiraxyz/text-editor/internal/tui/widgets/pathprompt"
)

const Version = "0.2.0"

func usage() {
	fmt.Fprint(os.Stderr, heredoc.Doc(`
		Usage: text-editor [flags] [file]

		Opens file (or the configured default file) in a terminal editor.
		With no file, starts with an empty unsaved document.

		Flags:
		  -config DIR   config directory (default: user config dir)
		  -theme NAME   color theme, overrides config
		  -tab N        tab width, overrides config
		  -version      print version and exit

		Keys inside the editor: ctrl+g shows the full list.
	`))
}

func main() {
	var (
		configDir = flag.String("config", "", "config directory")
		theme     = flag.String("theme", "", "color theme")
		tab       = flag.Int("tab", 0, "tab width")
		version   = flag.Bool("version", false, "print version")
	)
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println("text-editor", Version)
		return
	}

	dir := *configDir
	if dir == "" {
		dir = config.DefaultDir()
	}
	settings, _, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *theme != "" {
		settings.Theme = *theme
	}
	if *tab > 0 {
		settings.TabWidth = *tab
	}

	initial := settings.DefaultFile
	if flag.NArg() > 0 {
		initial = flag.Arg(0)
	}
	if initial != "" {
		initial = pathprompt.ExpandPath(initial)
	}

	if err := tui.Run(tui.Options{
		Theme:       settings.Theme,
		TabWidth:    settings.TabWidth,
		InitialPath: initial,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}
}
