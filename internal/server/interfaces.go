package server

// Server runs the configured listeners and background workers.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown stops the listeners, then the workers.
	Shutdown()
}
