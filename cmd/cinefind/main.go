package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/cinefind/internal/app"
	"github.com/five82/cinefind/internal/tmdb"
)

// Exit codes following Unix conventions.
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // General errors
	ExitUsageError   = 2  // Invalid arguments/usage
	ExitConfigError  = 3  // Config file or credentials
	ExitNetworkError = 11 // Catalog request failed
)

// ExitError carries the exit code of a failure.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cinefind: %v\n", err)
		return exitCode(err)
	}
	return ExitSuccess
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var configErr *app.ConfigError
	if errors.As(err, &configErr) {
		return ExitConfigError
	}
	var transportErr *tmdb.TransportError
	if errors.As(err, &transportErr) {
		return ExitNetworkError
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return ExitNetworkError
	}
	return ExitGeneralError
}
