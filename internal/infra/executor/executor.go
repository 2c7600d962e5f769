// Package executor provides command execution functionality.
package executor

import (
	"context"
	"io"
	"os/exec"

	"github.com/scattering-central/pawsdoc/internal/domain"
)

// Client implements domain.CommandRunner.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandRunner.
var _ domain.CommandRunner = (*Client)(nil)

// Run executes the command with stdout/stderr attached to the given
// writers. The error returned by the process is passed through
// unchanged so the caller can propagate its exit status.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	return execCmd.Run()
}
