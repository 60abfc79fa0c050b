package main

import (
	"flag"
	"log"

	"github.com/siteci/siteci/sitegate"
)

func main() {
	configFile := flag.String(
		"config", sitegate.DefaultConfigFile,
		"path to the config file",
	)
	domain := flag.String("domain", "", "domain to serve; overrides config")
	staticDir := flag.String(
		"static_dir", "", "static files directory; overrides config",
	)
	flag.Parse()

	config, err := sitegate.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *domain != "" {
		config.Domain = *domain
	}
	if *staticDir != "" {
		config.StaticDir = *staticDir
	}

	if err := sitegate.Serve(config); err != nil {
		log.Fatal(err)
	}
}
