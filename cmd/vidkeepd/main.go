package main

import (
	"flag"
	"fmt"
	"os"
)

// version is stamped by the build via -ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", "config.toml", "Path to the vidkeepd config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vidkeepd %s\n", version)
		os.Exit(0)
	}

	if err := runServer(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
