// Package service wires protocol transport to the simulation domain.
//
// It is the transport adapter layer: the package knows how to run MCP
// over stdio and delegates business meaning to domain handlers.
package service
