// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles and the
// background workers, including startup, signal handling, and graceful
// shutdown of everything that was started.
package server
