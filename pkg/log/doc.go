// Package log provides structured dispatch logging for opent2t.
//
// This package defines the Logger interface and Event type for
// capturing dispatch-level events: every property get/set, method
// invocation, and listener registration the accessor performs, with
// the convention that served it and its outcome. It is separate from
// operational logging (slog) - dispatch capture provides a complete
// machine-readable trace for debugging heterogeneous device behavior.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	acc := access.New(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/opent2t/dispatch.tlog")
//	acc := access.New(fl)
//
//	// Both: use MultiLogger
//	acc := access.New(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Log files use CBOR encoding with integer keys and a .tlog extension.
// Reader streams events back out of a file, optionally filtered.
package log
