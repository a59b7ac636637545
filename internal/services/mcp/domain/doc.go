// Package domain defines the MCP tool inputs, outputs, and handlers for
// the Monty Hall simulation service.
package domain
