// Package log is the logging seam used by the modelpost packages.
//
// Library code logs through the Logger interface so callers can plug in
// their own backend. Two implementations ship with the package: a zerolog
// adapter used by the CLI, and a no-op logger for tests and embedding.
//
//	logger := log.NewZerolog(zerolog.New(os.Stderr))
//	logger.Info("uploaded", log.Int("status", 200))
package log
