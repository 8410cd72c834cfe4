// Package ui implements the dashboard as a Bubble Tea program.
//
// # Overview
//
// Model is both the interactive loop and the refresh scheduler's Presenter.
// Everything that changes what is on screen happens inside Update:
//
//   - a 100ms drain tick runs every task waiting on the taskqueue.Queue,
//     which is how refresh outcomes reach the model
//   - a 1s clock tick updates the date and time line
//   - key presses drive manual refresh, overlays and theme changes
//
// Both ticks re-arm themselves unconditionally, so an empty queue or a
// panicking task never stops the loop.
//
// # Layout
//
//	2024년 05월 06일 월
//	02:07 PM
//
//	☀  21°C  맑음
//	대기질: 좋음
//
//	    월         화         수         목         금
//	    ☔         ☁          ☀          ☀          ⛅
//	 ↓15° ↑24°  ↓12° ↑20°  ...
//
//	Seoul · 업데이트 14:07 · r Refresh now • h/? Toggle help • esc Quit
//
// Low temperatures are blue and highs red in every theme. The air quality
// text takes the colour of its AQI band.
//
// # Failures
//
// The dashboard never shows an error state. When refreshes fail the last
// snapshot stays up; after two failures in a row the "updated" time in the
// footer is dimmed. The log overlay (l) shows why.
//
// # Keys
//
//   - esc, ctrl+c: quit (closes an open overlay first)
//   - r: refresh now, subject to the in-flight and backoff rules
//   - l: toggle the log overlay
//   - T: cycle theme, saved to prefs
//   - h, ?: toggle help
package ui
