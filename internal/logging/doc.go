// Package logging provides structured logging for the koagen CLI using slog.
//
// Output is either a colorized, TTY-friendly text format or JSON. A logger
// travels with the command context so packages below the CLI never reach for
// the global default.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Tests should use [ForTest], which routes records to t.Log.
package logging
