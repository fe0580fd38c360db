package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ray-d-song/golist/pkg/config"
	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/listing"
	"github.com/ray-d-song/golist/pkg/ui"
	"github.com/ray-d-song/golist/pkg/utils"
)

const (
	version = "0.1.0"
	license = "MIT"
	author  = "Ray-D-Song"
	url     = "https://github.com/ray-d-song/golist"
)

var (
	helpFlag      = flag.Bool("h", false, "Print help message")
	helpLongFlag  = flag.Bool("help", false, "Print help message")
	versionFlag   = flag.Bool("v", false, "Print version information")
	uiFlag        = flag.Bool("ui", false, "Browse the list interactively")
	modeFlag      = flag.String("mode", "", "List mode: bidirectional or forward-only")
	seedFlag      = flag.String("seed", "", "Read list entries from a text or HTML file")
	reverseFlag   = flag.Bool("reverse", false, "Also print the list in reverse order")
	scenariosFlag = flag.Bool("scenarios", false, "Run the built-in list scenarios")
	debugFlag     = flag.Bool("debug", false, "Write diagnostics to the debug log")
)

func main() {
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the list and writes its listings to w
func run(w io.Writer) error {
	// initialize debug logger
	if *debugFlag {
		utils.InitDebugLogger()
		defer utils.CloseDebugLogger()
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	mode, err := cfg.ListMode()
	if *modeFlag != "" {
		mode, err = list.ParseMode(*modeFlag)
	}
	if err != nil {
		return err
	}

	if *scenariosFlag {
		return runScenarios(w, mode)
	}

	entries, err := loadEntries(cfg, *seedFlag, flag.Args())
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	head, err := list.MakeListFrom(entries, list.WithMode(mode))
	if err != nil {
		return fmt.Errorf("building list: %w", err)
	}
	defer func() {
		list.DestroyList(head)
	}()

	if *uiFlag {
		head, err = ui.Run(head, mode, cfg.ColorScheme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if err := listing.Fprint(w, head); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	if *reverseFlag {
		fmt.Fprintln(w)
		if err := listing.FprintReverse(w, head); err != nil {
			return fmt.Errorf("writing reverse listing: %w", err)
		}
	}
	return nil
}
