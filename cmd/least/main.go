// cmd/least/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kenseitehdev/Least/internal/app"
	"github.com/kenseitehdev/Least/internal/buffer"
	"github.com/kenseitehdev/Least/internal/config"
	"github.com/kenseitehdev/Least/internal/ingest"
	"github.com/kenseitehdev/Least/internal/logger"
)

var Version = "1.0.0"

func main() {
	flag.Usage = config.Usage
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s version %s\n", config.AppName, Version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)
	logger.Infof("Starting %s %s", config.AppName, Version)

	buffers := gatherBuffers(*flags.Multi, args)
	if len(buffers) == 0 {
		if *flags.Multi {
			fmt.Fprintln(os.Stderr, "No command produced output")
		} else {
			config.Usage()
		}
		os.Exit(1)
	}
	for _, b := range buffers {
		b.SetLineNumbers(cfg.Pager.ShowLineNumbers)
	}

	pagerApp, err := app.NewApp(buffers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing pager: %v\n", err)
		os.Exit(1)
	}
	if err := pagerApp.Run(); err != nil {
		logger.Errorf("Pager exited with error: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// gatherBuffers builds the initial buffer list from --multi commands, piped
// standard input and positional file arguments, in that precedence.
func gatherBuffers(multi bool, args []string) []*buffer.Buffer {
	if multi {
		return ingest.FromCommands(args)
	}

	var buffers []*buffer.Buffer
	if !ingest.IsStdinTerminal() {
		piped, err := ingest.FromStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to process input: %v\n", err)
			os.Exit(1)
		}
		buffers = append(buffers, piped...)
	}

	for _, path := range args {
		b, err := ingest.FromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load file: %v\n", err)
			continue
		}
		buffers = append(buffers, b)
	}
	return buffers
}
