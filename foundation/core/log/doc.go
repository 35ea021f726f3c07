// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Structured log entries with context fields, four output
//              formats, level filtering and integration with the textkit
//              error system.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Synchronous writer, lipgloss console colors
//
// Usage:
//
//	import mdwlog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatConsole,
//	}).WithCorrelationID(id)
//
//	logger.Info("decoded payload", mdwlog.Field("bytes", len(data)))
//
//	timer := logger.StartTimer("hex_decode")
//	data, err := encodingx.DecodeHex(input, encodingx.ReturnError)
//	if err != nil {
//		timer.StopWithError(err)
//		return err
//	}
//	timer.Stop()
//
// LogError picks the level from the severity of a *mdwerror.Error: low is
// info, medium is warn, everything above is error.
package log
