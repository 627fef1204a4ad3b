// Package log provides structured logging for plzero.
//
// Package: log
// Title: plzero Structured Logging
// Description: Leveled, field-based logging with JSON, text and console
//              formats. Lexer sessions attach their session id as the
//              correlation id so all entries of one scan can be grouped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Synchronous writer only, deterministic field order, Discard logger
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("lexer").
//		WithCorrelationID(sessionID)
//
//	logger.Debug("token", log.Fields{"kind": "identsym", "line": 3})
//
//	timer := logger.StartTimer("tokenize")
//	// ... scan the file
//	timer.Stop()
package log
