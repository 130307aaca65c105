// Package app implements the application layer for weft.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	configFile   string
	session      *session.Session
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sess *session.Session, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		configFile:   domain.WeftFileName,
		session:      sess,
		logger:       logger,
		out:          os.Stdout,
	}
}

// SetOutput redirects the app's result output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetConfigFile overrides the ruleset file the app loads.
func (a *App) SetConfigFile(path string) {
	if path != "" {
		a.configFile = path
	}
}

// Run compiles the configured rule set, invokes the executor for the
// given target and prints the captured stdout.
func (a *App) Run(ctx context.Context, target string) error {
	rs, err := a.configLoader.Load(a.configFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.session.WriteRules(rs); err != nil {
		return err
	}

	result, err := a.session.Run(ctx, target)
	if err != nil {
		return err
	}

	a.logger.Info("run succeeded: " + result.Command)
	_, _ = io.WriteString(a.out, result.Stdout)
	return nil
}

// Graph compiles the configured rule set and prints the rendered
// dependency diagram derived from the emitted rule file.
func (a *App) Graph(_ context.Context) error {
	rs, err := a.configLoader.Load(a.configFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.session.WriteRules(rs); err != nil {
		return err
	}

	text, err := a.session.Graph()
	if err != nil {
		return err
	}

	_, _ = io.WriteString(a.out, text)
	return nil
}

// Copy copies a produced artifact out of the working directory.
func (a *App) Copy(target, dest string) error {
	if msg := a.session.CopyArtifact(target, dest); msg != "" {
		return zerr.With(zerr.New("copy failed"), "reason", msg)
	}
	a.logger.Info("copied " + target + " to " + dest)
	return nil
}

// Status prints the recorded outcome of a target's most recent run.
func (a *App) Status(target string) (*domain.RunRecord, error) {
	if target == "" {
		target = domain.DefaultTarget
	}
	return a.session.LastRun(target)
}
