package main

import (
	"flag"
	"fmt"
	"os"

	"inkwell/app/routes"
	"inkwell/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const cliVersion = "1.0.0"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help                       Display this help message.
  version                    Show version information.
  serve [--config <path>]    Run the blog API server.
`
	fmt.Println(helpText)
}

// serve loads the configuration, opens the database, and runs the HTTP
// server until it fails.
func serve(args []string) {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := flags.String("config", "", "path to a TOML config file")
	flags.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("failed to create upload directory")
	}

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg.UploadDir)

	log.Info().Str("addr", cfg.Addr).Msg("starting blog API server")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
