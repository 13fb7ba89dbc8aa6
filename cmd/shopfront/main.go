package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/internal/client/cart"
	"github.com/dkolesov/shopfront/internal/client/catalog"
	"github.com/dkolesov/shopfront/internal/client/cli"
	"github.com/dkolesov/shopfront/internal/client/iocli"
	"github.com/dkolesov/shopfront/internal/client/nav"
	"github.com/dkolesov/shopfront/internal/client/session"
	"github.com/dkolesov/shopfront/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8000/api"

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServer(), "API base URL")
	dbPath := flag.String("db", "shopfront.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL, boltStorage)
	cartStore := cart.NewStore(apiClient, boltStorage, boltStorage)
	catalogStore := catalog.NewStore(apiClient)
	sessionSvc := session.NewService(apiClient, boltStorage, cartStore)
	guard := nav.NewGuard(boltStorage, sessionSvc)

	app := cli.New(stdio, apiClient, sessionSvc, guard, cartStore, catalogStore)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultServer() string {
	if url := os.Getenv("SHOPFRONT_SERVER"); url != "" {
		return url
	}
	return defaultServerURL
}

func printVersion() {
	fmt.Printf("Shopfront Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
