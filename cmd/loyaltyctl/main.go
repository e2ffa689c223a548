// loyaltyctl carries the operator-invoked sync commands:
//
//	loyaltyctl sync-properties -account <id>
//	loyaltyctl sync-realwin -account <id>
//
// Both print human-readable progress and exit non-zero on failure. Missing
// account connector settings are collected interactively on first run.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/twocngdagz/lush-sub001/internal/config"
	"github.com/twocngdagz/lush-sub001/internal/connector"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/lush"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/mock"
	_ "github.com/twocngdagz/lush-sub001/internal/connector/realwin"
	"github.com/twocngdagz/lush-sub001/internal/database"
	"github.com/twocngdagz/lush-sub001/internal/logging"
	"github.com/twocngdagz/lush-sub001/internal/sync"
)

func main() {
	logging.Setup()
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	accountID := fs.Uint("account", 0, "numeric account id")
	_ = fs.Parse(os.Args[2:])

	if *accountID == 0 {
		fmt.Fprintln(os.Stderr, "error: -account is required")
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.DBPassword == "" {
		fmt.Fprintln(os.Stderr, "error: DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	vendorClient := &http.Client{Timeout: cfg.VendorTimeout}
	conn, err := connector.New(cfg.ConnectorID, vendorClient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (known connectors: %s)\n",
			err, strings.Join(connector.Identifiers(), ", "))
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: database connection failed: %v\n", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: migration failed: %v\n", err)
		os.Exit(1)
	}

	store := sync.NewStore(database.DB)
	syncer := sync.NewSyncer(store, conn, stdinPrompter{})
	ctx := context.Background()

	switch command {
	case "sync-properties":
		err = syncer.SyncProperties(ctx, *accountID)
	case "sync-realwin":
		err = syncer.SyncRealWin(ctx, *accountID)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.Info("command completed", "command", command, "account_id", *accountID)
	fmt.Println("done")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: loyaltyctl <sync-properties|sync-realwin> -account <id>")
}

// stdinPrompter collects missing settings values from the terminal.
type stdinPrompter struct{}

func (stdinPrompter) Prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", label)
	}
	return value, nil
}
