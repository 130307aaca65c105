// Package session ties the rule compiler, the executor and the log
// layout together around one on-disk working area.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/weft/internal/adapters/history"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/compiler"
	"go.trai.ch/weft/internal/engine/diagram"
	"go.trai.ch/zerr"
)

// Session owns a root directory holding the executor working directory
// (rule file plus produced artifacts) and the per-target log directory.
// The rule file and logs are shared mutable files with no locking:
// concurrent Run calls on one Session are not supported, callers needing
// parallel runs use separate Sessions with distinct roots.
type Session struct {
	root     string
	jobs     int
	executor ports.Executor
	store    ports.RunStore
	logger   ports.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithJobs sets the parallelism count handed to the executor.
func WithJobs(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.jobs = n
		}
	}
}

// New creates a Session rooted at the given directory. Parallelism
// defaults to runtime.NumCPU.
func New(root string, executor ports.Executor, store ports.RunStore, logger ports.Logger, opts ...Option) *Session {
	s := &Session{
		root:     root,
		jobs:     runtime.NumCPU(),
		executor: executor,
		store:    store,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the session's root directory.
func (s *Session) Root() string {
	return s.root
}

// RuleFile returns the path of the generated rule file.
func (s *Session) RuleFile() string {
	return domain.RuleFilePath(s.root)
}

// WriteRules compiles the rule set and replaces the rule file wholesale.
// A set without the default target is compiled anyway; the resulting
// rule file has no default goal and the condition is surfaced as a
// warning only.
func (s *Session) WriteRules(rs domain.RuleSet) error {
	if !rs.HasDefault() {
		s.logger.Warn("rule set has no 'all' target; emitted rule file lacks a default goal")
	}
	text := compiler.Compile(rs)

	if err := os.MkdirAll(domain.WorkPath(s.root), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRuleWriteFailed.Error())
	}
	if err := os.WriteFile(s.RuleFile(), []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRuleWriteFailed.Error()), "path", s.RuleFile())
	}
	return nil
}

// Run invokes the executor for the given target (the default target
// when empty) and blocks until it exits. The subprocess's streams are
// appended to the target's log pair; every invocation, failed ones
// included, is recorded in the run history.
func (s *Session) Run(ctx context.Context, target string) (*domain.RunResult, error) {
	if target == "" {
		target = domain.DefaultTarget
	}

	if err := os.MkdirAll(domain.LogPath(s.root), domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLogOpenFailed.Error())
	}

	inv := domain.Invocation{
		WorkDir:   domain.WorkPath(s.root),
		RuleFile:  s.RuleFile(),
		Target:    target,
		Jobs:      s.jobs,
		StdoutLog: domain.StdoutLogPath(s.root, target),
		StderrLog: domain.StderrLogPath(s.root, target),
	}

	started := time.Now()
	result, runErr := s.executor.Run(ctx, inv)

	if result != nil {
		record := domain.RunRecord{
			Target:    target,
			RuleHash:  s.ruleFingerprint(),
			Command:   result.Command,
			ExitCode:  result.ExitCode,
			StartedAt: started,
			Duration:  time.Since(started),
		}
		if err := s.store.Put(s.root, record); err != nil {
			// History is advisory; a failed write must not mask the run outcome.
			s.logger.Warn("failed to record run: " + err.Error())
		}
	}

	return result, runErr
}

// CopyArtifact copies the target's produced file out of the working
// directory. The error is returned as a human-readable string so the
// caller decides severity; the empty string signals success. Nothing is
// written when the source artifact is missing.
func (s *Session) CopyArtifact(target, dest string) string {
	src := filepath.Join(domain.WorkPath(s.root), target)

	in, err := os.Open(src) //nolint:gosec // Artifact path is derived from the session layout
	if err != nil {
		return fmt.Sprintf("cannot open artifact %s: %v", src, err)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dest) //nolint:gosec // Destination is provided by caller
	if err != nil {
		return fmt.Sprintf("cannot create %s: %v", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Sprintf("cannot copy %s to %s: %v", src, dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Sprintf("cannot close %s: %v", dest, err)
	}
	return ""
}

// Graph reads the current rule file and renders its reversed dependency
// relation as a mermaid document.
func (s *Session) Graph() (string, error) {
	data, err := os.ReadFile(s.RuleFile()) //nolint:gosec // Rule file path is derived from the session layout
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRuleReadFailed.Error()), "path", s.RuleFile())
	}
	return diagram.Render(diagram.Extract(string(data))), nil
}

// LastRun returns the recorded outcome of the target's most recent run.
func (s *Session) LastRun(target string) (*domain.RunRecord, error) {
	record, err := s.store.Get(s.root, target)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, zerr.With(domain.ErrNoHistory, "target", target)
	}
	return record, nil
}

// ruleFingerprint digests the current rule file, empty when unreadable.
func (s *Session) ruleFingerprint() string {
	data, err := os.ReadFile(s.RuleFile()) //nolint:gosec // Rule file path is derived from the session layout
	if err != nil {
		return ""
	}
	return history.Fingerprint(string(data))
}
