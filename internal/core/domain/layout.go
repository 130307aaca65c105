package domain

import "path/filepath"

const (
	// WeftDirName is the name of the internal workspace directory.
	WeftDirName = ".weft"

	// WorkDirName is the name of the executor working directory. It holds
	// the rule file and every artifact the executor produces.
	WorkDirName = "work"

	// LogDirName is the name of the per-target log directory.
	LogDirName = "log"

	// HistoryDirName is the name of the run history directory.
	HistoryDirName = "history"

	// RuleFileName is the name of the generated rule file.
	RuleFileName = "Makefile"

	// WeftFileName is the name of the project configuration file.
	WeftFileName = "weft.yaml"

	// StdoutLogExt is the extension of the per-target stdout log.
	StdoutLogExt = ".out"

	// StderrLogExt is the extension of the per-target stderr log.
	StderrLogExt = ".log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// WorkPath returns the executor working directory under root.
func WorkPath(root string) string {
	return filepath.Join(root, WorkDirName)
}

// RuleFilePath returns the rule file path under root.
func RuleFilePath(root string) string {
	return filepath.Join(root, WorkDirName, RuleFileName)
}

// LogPath returns the log directory under root.
func LogPath(root string) string {
	return filepath.Join(root, LogDirName)
}

// StdoutLogPath returns the append-mode stdout log for a target.
func StdoutLogPath(root, target string) string {
	return filepath.Join(root, LogDirName, target+StdoutLogExt)
}

// StderrLogPath returns the append-mode stderr log for a target.
func StderrLogPath(root, target string) string {
	return filepath.Join(root, LogDirName, target+StderrLogExt)
}

// HistoryPath returns the run history directory under root.
func HistoryPath(root string) string {
	return filepath.Join(root, HistoryDirName)
}
