// Package config loads the dashboard's startup configuration.
//
// # Configuration Discovery
//
// Load resolves values in this order, later sources winning:
//
//  1. Built-in defaults
//  2. ~/.config/weatherframe/config.toml, or the path passed with -config
//  3. Environment variables, including any set by a .env file in the
//     working directory
//
// A missing config file or .env file is not an error.
//
// # Environment
//
//   - OPENWEATHER_API_KEY: provider key (required)
//   - CITY: city name sent to the provider
//   - LANGUAGE: "kr" or "en"; gettext values such as "en_US:en" are accepted
//   - WEATHERFRAME_<KEY>: any config file key in upper case, for example
//     WEATHERFRAME_REFRESH_INTERVAL=10m
//
// # Default Values
//
//   - City: Seoul
//   - Language: kr
//   - Refresh interval: 5m
//   - Connect timeout: 3s
//   - Read timeout: 5s
//   - Log file: ~/.local/state/weatherframe/weatherframe.log
//
// # TOML Format
//
//	api_key = "..."
//	city = "Seoul"
//	language = "kr"
//	refresh_interval = "5m"
//	connect_timeout = "3s"
//	read_timeout = "5s"
//	log_path = "~/.local/state/weatherframe/weatherframe.log"
//
// # Error Handling
//
// Load returns ErrMissingAPIKey when no key is configured and an error for an
// unsupported language or an unreadable config file. The dashboard does not
// start in either case.
package config
