// Package logtail reads the end of the dashboard's own log file for the
// in-app log overlay.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries and scans the file once, so
// memory stays at O(maxLines) no matter how large the log grows. A missing
// file is reported as no lines rather than an error; the log is created
// lazily on first write.
//
//	lines, err := logtail.Read(cfg.LogPath, 200)
//
// # Levels
//
// The log is written by log/slog's text handler:
//
//	time=2024-05-01T12:00:00.000+09:00 level=WARN msg="weather refresh failed" failures=1 class=timeout
//
// LevelOf pulls the level field out of such a line and Filter drops lines
// below a minimum level. The UI uses both to colour and narrow the overlay.
package logtail
