package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/siteci/siteci/lintci"
)

func main() {
	flags := new(lintci.Flags)
	flag.StringVar(
		&flags.ConfigFile, "config", "",
		"Path to the config file; empty means "+lintci.DefaultConfigFile+".",
	)
	flag.StringVar(
		&flags.Dir, "dir", "",
		"Directory to lint; empty means the configured default.",
	)
	flag.BoolVar(
		&flags.NoStatus, "nostatus", false,
		"Print the report but do not post a commit status.",
	)
	flag.Parse()

	// Local runs keep credentials in a .env file; CI sets real
	// environment variables and has no such file.
	if err := godotenv.Load(); err == nil {
		log.Print("loaded environment from .env")
	}

	if err := lintci.Main(flags, nil); err != nil {
		log.Fatal(err)
	}
}
