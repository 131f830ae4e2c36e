// Package logging provides structured logging for snapdump built on zap.
//
// Logging is silent by default so the tool's only output is the canonical
// dump and the one-line success notice. Set SNAPDUMP_LOG_LEVEL to "debug",
// "info", "warn" or "error" to see pipeline diagnostics on stderr.
package logging
