// Package commands defines the heroes CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list                List every hero
//   - get <id>            Show one hero
//   - search <term>       Find heroes whose name contains term
//   - add <name>          Create a hero
//   - update <id> <name>  Rename a hero
//   - delete <id>         Remove a hero
//
// # Implementation
//
// The root command loads configuration, builds a logger and the dependency
// graph (transport, message feed, gateway) before any subcommand runs. Each
// subcommand makes one gateway call, prints its result as JSON and then the
// message feed. Backend failures do not fail the command: the gateway reports
// them in the feed and the result is empty.
package commands
