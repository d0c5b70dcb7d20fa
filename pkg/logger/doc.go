/*
Package logger wraps uber-go/zap behind a small leveled interface used
by every component of the line counter.

Levels map to the -v flag: the default shows info, warn and error; -v
adds debug; -vv adds trace. Trace is not a zap level, so trace entries
appear as debug entries with a "TRACE: " prefix.

	log := logger.NewLogger(logger.Config{Verbosity: 1})

	log.Info("scan started")
	log.Debug("matched file")
	log.Trace("read chunk")

Context travels with the logger rather than the call:

	fileLog := log.WithFields(logger.Fields{
	    "path":  "src/main.go",
	    "lines": 120,
	})
	fileLog.Info("file counted")

Each entry is one JSON line:

	{"level":"info","ts":"2026-08-23T15:04:05.000Z","message":"file counted","path":"src/main.go","lines":120}

Logs go to stderr unless Config.Output says otherwise, keeping stdout
reserved for the report so it can be piped or redirected. Per-file
failures surface here at warn or error and are visible at every
verbosity.

Loggers are safe for concurrent use; WithFields returns a new Logger
and never mutates its receiver.
*/
package logger
