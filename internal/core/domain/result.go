package domain

import "time"

// RunResult is the captured output of one executor invocation.
type RunResult struct {
	// Target is the target name the invocation was asked to build.
	Target string
	// Stdout and Stderr hold the text this invocation appended to the
	// target's log pair.
	Stdout string
	Stderr string
	// Artifact is the path under the working directory where the
	// target's produced file is expected.
	Artifact string
	// Command is the exact command line used to invoke the executor.
	Command string
	// ExitCode is the executor's exit status, 0 on success.
	ExitCode int
}

// Invocation describes one executor subprocess launch.
type Invocation struct {
	// WorkDir is the directory the executor runs in.
	WorkDir string
	// RuleFile is the rule file handed to the executor.
	RuleFile string
	// Target is the requested target name.
	Target string
	// Jobs is the parallelism count passed through to the executor.
	Jobs int
	// StdoutLog and StderrLog are the append-mode log files the
	// subprocess's output streams are redirected to.
	StdoutLog string
	StderrLog string
}

// RunRecord is the persisted trace of one executor invocation, kept in
// the run history store. Every invocation is recorded, failed ones
// included.
type RunRecord struct {
	Target    string        `json:"target,omitzero"`
	RuleHash  string        `json:"rule_hash,omitzero"`
	Command   string        `json:"command,omitzero"`
	ExitCode  int           `json:"exit_code"`
	StartedAt time.Time     `json:"started_at,omitzero"`
	Duration  time.Duration `json:"duration,omitzero"`
}
