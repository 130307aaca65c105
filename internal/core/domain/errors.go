package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingDefaultTarget is returned by the config loader when the
	// rule set lacks the "all" entry.
	ErrMissingDefaultTarget = zerr.New("rule set has no 'all' target")

	// ErrInvalidTargetName is returned when a target name contains whitespace
	// or is empty; such names cannot survive the rule file syntax.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrRuleWriteFailed is returned when the rule file cannot be persisted.
	ErrRuleWriteFailed = zerr.New("failed to write rule file")

	// ErrRuleReadFailed is returned when the rule file cannot be read back.
	ErrRuleReadFailed = zerr.New("failed to read rule file")

	// ErrRunFailed is returned when the executor exits nonzero. The
	// captured stderr text is attached as metadata.
	ErrRunFailed = zerr.New("executor run failed")

	// ErrLogOpenFailed is returned when a per-target log file cannot be
	// opened for appending.
	ErrLogOpenFailed = zerr.New("failed to open log file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHistoryReadFailed is returned when a run record cannot be read.
	ErrHistoryReadFailed = zerr.New("failed to read run record")

	// ErrHistoryWriteFailed is returned when a run record cannot be written.
	ErrHistoryWriteFailed = zerr.New("failed to write run record")

	// ErrNoHistory is returned when no run record exists for a target.
	ErrNoHistory = zerr.New("no recorded runs for target")
)
