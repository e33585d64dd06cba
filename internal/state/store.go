// Package state records solve-run history in a local SQLite database so
// past runs can be listed and compared without re-solving.
package state

import "time"

// RunStatus is the lifecycle state of a recorded solve run.
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// Run is one recorded solve invocation.
type Run struct {
	ID        string
	InputFile string
	Status    RunStatus

	// Problem dimensions captured at ingestion time.
	Constraints int
	Variables   int
	NonZeros    int
	MIP         bool

	// Solve outcome; zero values until the run completes.
	Objective float64
	SolveTime time.Duration
	Error     string

	StartedAt   time.Time
	CompletedAt time.Time
}

// Store is the persistence surface the CLI depends on.
type Store interface {
	Open(path string) error
	Close() error
	Migrate() error

	CreateRun(run *Run) error
	CompleteRun(id string, status RunStatus, objective float64, solveTime time.Duration, errMsg string) error
	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]*Run, error)
}
