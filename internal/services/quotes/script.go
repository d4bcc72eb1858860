package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/models"
)

// ScriptProvider runs an external fetcher once per lookup.
// The ticker is appended as the last argument; exit 0 with a JSON quote on stdout is success.
type ScriptProvider struct {
	command string
	args    []string
	timeout time.Duration
	logger  arbor.ILogger
}

// NewScriptProvider creates a provider running command with args
func NewScriptProvider(command string, args []string, timeout time.Duration, logger arbor.ILogger) *ScriptProvider {
	return &ScriptProvider{
		command: command,
		args:    args,
		timeout: timeout,
		logger:  logger,
	}
}

// Name identifies the provider
func (p *ScriptProvider) Name() string {
	return "script"
}

// GetQuote runs the fetcher for symbol. Cancelling ctx kills the process.
func (p *ScriptProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := append(append([]string{}, p.args...), symbol)
	cmd := exec.CommandContext(ctx, p.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// children that inherit the pipes must not hold Run open past cancellation
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()

	p.logger.Debug().
		Str("symbol", symbol).
		Str("command", p.command).
		Dur("duration", time.Since(start)).
		Msg("Quote fetcher finished")

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("quote fetcher for %s: %w", symbol, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ScriptError{
				Command:  p.command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to start quote fetcher: %w", err)
	}

	var quote models.Quote
	if err := json.Unmarshal(stdout.Bytes(), &quote); err != nil {
		return nil, fmt.Errorf("failed to parse quote fetcher output for %s: %w", symbol, err)
	}

	return &quote, nil
}
