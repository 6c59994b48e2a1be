// Package app is the composition root of cinefind.
//
// It loads the config file, builds the slog logger on its rotating file,
// creates the TMDB client and then either starts the TUI (Run) or drives a
// single nav.Session against a plain text renderer for the command line
// (Print, Search, Credits). Logs reads the log file back.
//
// Failures caused by the config file or missing credentials are returned as
// *ConfigError so the command line can map them to their own exit code.
// Catalog failures keep their *tmdb.TransportError type.
package app
