package main

import (
	"fmt"
	"os"

	"github.com/ray-d-song/golist/pkg/config"
	"github.com/ray-d-song/golist/pkg/seed"
)

// defaultEntries is listed when neither arguments nor a seed file are given
var defaultEntries = []string{
	"*** Node 1.0 ***",
	"*** Node 2.0 ***",
	"*** Node 3.0 ***",
}

// isFile checks if a path is a file
func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// loadEntries picks the list contents: the seed flag, then the arguments,
// then the last seed remembered in the config, then the defaults
func loadEntries(cfg *config.Config, seedPath string, args []string) ([]string, error) {
	if seedPath != "" {
		entries, err := seed.Load(seedPath)
		if err != nil {
			return nil, err
		}
		cfg.SetLastSeed(seedPath)
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		}
		return entries, nil
	}

	if len(args) > 0 {
		return args, nil
	}

	if cfg.LastSeed != "" && isFile(cfg.LastSeed) {
		return seed.Load(cfg.LastSeed)
	}

	return defaultEntries, nil
}

// printHelp prints the help message
func printHelp() {
	fmt.Print(`
Usages:
    golist                 list the last seed file or the built-in entries
    golist TEXT...         list TEXT arguments in order
    golist -seed FILE      list the lines of FILE, or the <li> items of an HTML FILE

Options:
    -mode MODE      bidirectional (default) or forward-only
    -reverse        also print the list tail first
    -ui             browse and edit the list in the terminal
    -scenarios      run the built-in list scenarios and exit
    -debug          write diagnostics to the debug log
    -v              print version information
    -h, --help      print short, long help

Key Bindings (-ui):
    Help             : ?
    Quit             : q
    Down             : j
    Up               : k
    First            : g
    Last             : G
    Insert before    : i
    Append           : a
    Remove           : d
    Search           : /
    Reverse order    : r
    Switch colorsch  : c
`)
}

// printVersion prints the version information
func printVersion() {
	fmt.Printf("golist %s\n", version)
	fmt.Printf("%s License\n", license)
	fmt.Printf("Copyright (c) 2025 %s\n", author)
	fmt.Println(url)
}
