package pdf

import (
	"context"
	"os/exec"
)

// CommandRunner executes external commands.
// This interface allows for testing without real binaries.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the production CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes the command and returns its combined output.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
