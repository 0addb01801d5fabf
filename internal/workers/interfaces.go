// Package workers runs the application's background jobs through a single
// Worker contract, so process wiring can start them uniformly.
package workers

// Worker is a runnable background job. Run either blocks for the duration
// of the work or spawns its goroutines internally and returns.
type Worker interface {
	Run()
}
