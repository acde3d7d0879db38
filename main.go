package main

import (
	"flag"
	"log"

	"daddeck/internal/di"
	"daddeck/internal/structures"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the yaml config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("failed to start: %s", err)
	}
}
