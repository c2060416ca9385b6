// Package logging provides structured logging for confplan.
//
// It wraps Go's log/slog to write JSON lines, either to a log file inside a
// directory chosen by configuration or to stderr. The planner core does not
// log; the terminal UI and the commands log each user action and the
// resulting totals at DEBUG so a session can be replayed from the log.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("catalog loaded", "entries", 14)
//
// # Child Loggers
//
//	tuiLog := logger.WithComponent("tui")
//	tuiLog.WithSection("venue").Debug("increment", "index", 1)
//
// Child loggers share the parent's output; closing the parent closes the
// file for all of them.
package logging
