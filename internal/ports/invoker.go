package ports

import "context"

// Invoker runs one external program to completion and returns its stdout.
type Invoker interface {
	Run(ctx context.Context, program string, args ...string) (string, error)
	LookPath(program string) (string, error)
}
