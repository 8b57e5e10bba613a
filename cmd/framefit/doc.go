// Package main hosts the framefit CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the export decision engine: content classification, platform
// ranking, preset selection, quality validation, and report history
// maintenance. It centralizes configuration resolution, catalog loading, and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
