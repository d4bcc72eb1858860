// Command tickerlens-quote prints a JSON quote for one ticker symbol.
//
// Usage: tickerlens-quote SYMBOL
//
// On success the quote is written to stdout and the exit code is 0. On failure a JSON object
// {"error": "..."} is written (stdout for usage errors, stderr for fetch errors) and the exit code is 1.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ternarybob/tickerlens/internal/yahoo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		writeJSON(stdout, map[string]string{"error": "Usage: tickerlens-quote <SYMBOL>"})
		return 1
	}
	symbol := strings.ToUpper(args[0])

	client := yahoo.NewClient(
		yahoo.WithBaseURL(os.Getenv("TICKERLENS_YAHOO_BASE_URL")),
		yahoo.WithUserAgent(os.Getenv("TICKERLENS_YAHOO_USER_AGENT")),
	)

	quote, err := client.GetQuote(ctx, symbol)
	if err != nil {
		writeJSON(stderr, map[string]string{"error": err.Error()})
		return 1
	}

	writeJSON(stdout, quote)
	return 0
}

func writeJSON(w io.Writer, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}
