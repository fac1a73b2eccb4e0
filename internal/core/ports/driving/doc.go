// Package driving declares what the CLI, TUI and MCP adapters may ask of the
// core: build a chart, place one body, walk a transit, browse history and
// change settings. internal/core/services implements every interface here.
package driving
