package server

// Server is the lifecycle contract of the transport server managed by this
// package: [Server.RunServer] blocks until shutdown is requested,
// [Server.Shutdown] releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
