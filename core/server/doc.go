// Package server holds the HTTP server configuration.
//
// It is intentionally small: the Fiber application itself is assembled in the
// start command, this package only carries the settings (port, API key) that
// the config loader binds from the environment.
package server
