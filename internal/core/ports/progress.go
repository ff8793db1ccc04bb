package ports

// Progress records long-running steps of an operation.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Record starts recording a named step.
	Record(name string) Vertex
}

// Vertex is a single recorded step.
type Vertex interface {
	// Tick reports that the step is still running.
	Tick()
	// Complete marks the step as finished, successfully or with an error.
	Complete(err error)
}
