// Package local implements a reference ports.Backend that runs a target's
// opaque spec as a shell command on the local machine.
package local

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"go.trai.ch/zerr"
)

// Backend runs each submitted target's Spec via `sh -c` and tracks its
// liveness in memory. It is fire-and-forget from Submit's point of view:
// the shell command runs on its own goroutine, and Liveness reports
// whatever that goroutine has observed so far.
type Backend struct {
	logger ports.Logger

	mu    sync.Mutex
	state map[string]*submission
}

type submission struct {
	liveness ports.Liveness
	err      error
}

// NewBackend creates a local Backend that logs submitted commands' output
// through logger.
func NewBackend(logger ports.Logger) *Backend {
	return &Backend{
		logger: logger,
		state:  make(map[string]*submission),
	}
}

// OptionDefaults reports the options this backend understands. "cores" is
// accepted for compatibility with workflow files but otherwise unused: the
// local backend always runs a target's command with the caller's own
// resource limits.
func (b *Backend) OptionDefaults() map[string]any {
	return map[string]any{"cores": 1}
}

// Submit runs target.Spec as `sh -c <spec>` in target.WorkingDir. It returns
// without waiting for the command: the process is started and waited on by
// its own goroutine, and liveness is queried separately via Liveness. A
// target whose Spec is blank is neither run nor recorded, so Liveness keeps
// reporting LivenessAbsent for it.
func (b *Backend) Submit(ctx context.Context, target *domain.Target, dependencies []*domain.Target) error {
	if strings.TrimSpace(target.Spec) == "" {
		return nil
	}

	sub := &submission{liveness: ports.LivenessQueued}
	b.mu.Lock()
	b.state[target.Name] = sub
	b.mu.Unlock()

	cmd := exec.CommandContext(ctx, "sh", "-c", target.Spec) //nolint:gosec // target.Spec is operator-authored workflow content
	if target.WorkingDir != "" {
		cmd.Dir = target.WorkingDir
	}
	cmd.Stdout = &logWriter{logger: b.logger, errLevel: false}
	cmd.Stderr = &logWriter{logger: b.logger, errLevel: true}

	b.setLiveness(target.Name, ports.LivenessRunning, nil)

	go func() {
		err := cmd.Run()
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "command failed"), "target", target.Name)
		}
		b.setLiveness(target.Name, ports.LivenessDone, err)
	}()

	return nil
}

func (b *Backend) setLiveness(targetName string, liveness ports.Liveness, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.state[targetName]
	if !ok {
		sub = &submission{}
		b.state[targetName] = sub
	}
	sub.liveness = liveness
	sub.err = err
}

// Liveness reports the current state of target's most recent submission, or
// LivenessAbsent if it was never submitted.
func (b *Backend) Liveness(ctx context.Context, target *domain.Target) (ports.Liveness, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sub, ok := b.state[target.Name]
	if !ok {
		return ports.LivenessAbsent, nil
	}
	return sub.liveness, sub.err
}

// Close is a no-op: the backend holds no external handle, and in-flight
// commands are left running rather than killed.
func (b *Backend) Close() error { return nil }

type logWriter struct {
	logger   ports.Logger
	errLevel bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.errLevel {
			w.logger.Error(zerr.New(line))
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
