// Package gnumake provides the executor adapter that shells out to GNU make.
package gnumake

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.Executor by spawning one make subprocess per
// invocation and waiting for it to exit. Parallelism inside a run is
// make's business (-j); the Runner itself never runs two subprocesses
// for the same invocation.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes make with the working directory, rule file, target and
// parallelism count from the invocation. Output is silenced except for
// explicit command output (-s); stdout and stderr are appended to the
// invocation's log files and the appended portion is captured into the
// returned RunResult.
//
// On nonzero exit the RunResult is still returned alongside
// domain.ErrRunFailed so callers can record the failed run.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (*domain.RunResult, error) {
	jobs := inv.Jobs
	if jobs < 1 {
		jobs = 1
	}

	argv := []string{
		"make",
		"-C", inv.WorkDir,
		"-f", inv.RuleFile,
		"-j", strconv.Itoa(jobs),
		"-s",
		inv.Target,
	}

	result := &domain.RunResult{
		Target:   inv.Target,
		Artifact: filepath.Join(inv.WorkDir, inv.Target),
		Command:  strings.Join(argv, " "),
	}

	outLog, err := openAppend(inv.StdoutLog)
	if err != nil {
		return nil, err
	}
	defer outLog.Close() //nolint:errcheck // Best effort close in defer

	errLog, err := openAppend(inv.StderrLog)
	if err != nil {
		return nil, err
	}
	defer errLog.Close() //nolint:errcheck // Best effort close in defer

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is built from trusted session state

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to attach stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to attach stderr pipe")
	}

	r.logger.Info("invoking executor: " + result.Command)

	if err := cmd.Start(); err != nil {
		return nil, zerr.Wrap(err, "failed to start executor")
	}

	// Drain both pipes concurrently so neither stream can fill its
	// buffer and stall the subprocess. Each stream is teed into its
	// append-mode log file and an in-memory capture buffer.
	var outBuf, errBuf bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(outLog, &outBuf), stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(errLog, &errBuf), stderr)
		return err
	})

	copyErr := g.Wait()
	waitErr := cmd.Wait()

	result.Stdout = outBuf.String()
	result.Stderr = errBuf.String()

	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		result.ExitCode = exitCode
		runErr := zerr.Wrap(waitErr, "executor exited with error")
		runErr = zerr.With(runErr, "exit_code", exitCode)
		runErr = zerr.With(runErr, "stderr", result.Stderr)
		return result, errors.Join(domain.ErrRunFailed, runErr)
	}
	if copyErr != nil {
		return result, zerr.Wrap(copyErr, "failed to capture executor output")
	}

	return result, nil
}

func openAppend(path string) (*os.File, error) {
	//nolint:gosec // Log paths are derived from the session layout
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogOpenFailed.Error()), "path", path)
	}
	return f, nil
}
