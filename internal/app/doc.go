// Package app loads configuration and wires application dependencies for the
// heroes CLI and the development API server.
//
// It builds the transport, message feed and hero gateway from Config,
// exposing them via the Wire struct for commands to use, and assembles the
// HTTP server for cmd/heroapi.
package app
