package main

import (
	"flag"
	"fmt"
	"log"

	"sweet-booking/internal/config"
	"sweet-booking/internal/server"
	"sweet-booking/internal/version"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
