// Package logging provides structured logging for termfolio.
//
// This package wraps a zap logger with package-level helpers so the rest of
// the program never has to pass a logger around. Because the terminal UI owns
// stdout, log output is written to a file instead.
//
// # Log Levels
//
//   - Debug: Scroll ticks, hook invocations, indicator syncs
//   - Info: Panel transitions, resizes, theme changes, resume saves
//   - Warn: Recoverable user-facing failures (missing resume, clipboard)
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent unless TERMFOLIO_LOG_LEVEL is set:
//
//	TERMFOLIO_LOG_LEVEL=debug TERMFOLIO_LOG_FILE=/tmp/termfolio.log termfolio
//
// Both variables may also come from a .env file in the working directory.
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
