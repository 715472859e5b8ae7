/*
Package console provides small leveled logging helpers for command-line
programs.

Lines carry a styled severity tag and an optional timestamp. The package
keeps a default logger on stderr, so the common case is just:

	console.Info("cache loaded")
	console.Warnf("retrying in %s", delay)

Custom loggers can write anywhere:

	log := console.New(file)
	log.SetLevel(console.LevelDebug)
	log.SetTimestamps(false)
	log.Debug("verbose detail")

Styling degrades gracefully on non-color terminals.
*/
package console
