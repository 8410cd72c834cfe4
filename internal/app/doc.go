// Package app is the composition root for weatherframe.
//
// # Overview
//
// Run loads configuration, points log/slog at the log file, builds the
// dashboard and runs the Bubble Tea program until the user quits or the
// process receives SIGINT/SIGTERM.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─> config.Load()          .env, TOML, environment
//	       ├─> setupLogging()         tea.LogToFile + slog text handler
//	       ├─> prefs.Load()           saved theme
//	       ├─> newDashboard()
//	       │     openweather.Client → weather.Fetcher
//	       │     taskqueue.Queue → refresh.CronTrigger
//	       │     ui.Model → refresh.Scheduler
//	       └─> errgroup
//	             ├─ program.Run()
//	             └─ quit on context cancel
//
// # Error Handling
//
// Configuration errors, including a missing API key, are returned from Run
// before the terminal is touched, and main exits with status 1. Refresh
// failures never reach this package; the scheduler logs them and retries.
//
// # Shutdown
//
// The scheduler is shut down after the program exits. In-flight fetches are
// cancelled but not awaited, so quitting is immediate even when the provider
// is hanging.
package app
