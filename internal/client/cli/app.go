package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/lucy1234dev/server/internal/client/client"
	"github.com/lucy1234dev/server/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: client.NewHTTPClient(c),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// getStatus shows the email of the last successful login.
func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return " (" + a.email + ")"
}

// Run blocks until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the Flower Shop CLI (type 'help' for commands)")
	printlnFn("Server:", a.config.ServerURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}
