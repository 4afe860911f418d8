// Package process runs a step sequence as an external program speaking
// newline-delimited JSON.
//
// Protocol, from the child's point of view: print one JSON value per
// suspension on stdout (either a bare partial result, or an object with
// "progress" and "result" fields when the instrument tracks progress), then
// read one line from stdin before continuing. That line is the injected
// pacing multiplier, or "null" when none is available. Exiting with status 0
// completes the sequence; the last printed line carries the final result.
package process

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"github.com/aretw0/breakpoint/pkg/ports"
)

// Option configures the spawned process.
type Option func(*definition)

// WithDir sets the working directory of the child process.
func WithDir(dir string) Option {
	return func(d *definition) {
		d.dir = dir
	}
}

// WithEnv appends environment entries ("KEY=value") to the child process.
func WithEnv(env ...string) Option {
	return func(d *definition) {
		d.env = append(d.env, env...)
	}
}

// WithStderr forwards the child's stderr to w instead of discarding it.
func WithStderr(w io.Writer) Option {
	return func(d *definition) {
		d.stderr = w
	}
}

type definition struct {
	command string
	args    []string
	dir     string
	env     []string
	stderr  io.Writer
}

// Definition returns a step-sequence definition that spawns the command
// fresh for each call. Call arguments are appended to args as strings via
// fmt.Sprint, mirroring how the wrapped callable was invoked.
func Definition(command string, args []string, opts ...Option) ports.Definition {
	d := &definition{command: command, args: args}
	for _, opt := range opts {
		opt(d)
	}

	return func(callArgs ...any) (ports.StepSequence, error) {
		argv := make([]string, 0, len(d.args)+len(callArgs))
		argv = append(argv, d.args...)
		for _, a := range callArgs {
			argv = append(argv, fmt.Sprint(a))
		}
		return &sequence{def: d, argv: argv}, nil
	}
}

type sequence struct {
	def  *definition
	argv []string

	cmd     *exec.Cmd
	stdin   io.WriteCloser
	scanner *bufio.Scanner
	started bool
}

func (s *sequence) Resume(ctx context.Context, signal *float64) (any, bool, error) {
	if !s.started {
		if err := s.start(ctx); err != nil {
			return nil, false, err
		}
	} else {
		// The child may legitimately exit right after its final yield
		// without reading the last signal, so a failed write is not an
		// error here; completion is decided by the read side below.
		_ = s.send(signal)
	}

	if s.scanner.Scan() {
		var value any
		if err := json.Unmarshal(s.scanner.Bytes(), &value); err != nil {
			s.abort()
			return nil, false, fmt.Errorf("parse yield line %q: %w", s.scanner.Text(), err)
		}
		return value, false, nil
	}

	if err := s.scanner.Err(); err != nil {
		s.abort()
		return nil, false, fmt.Errorf("read yield: %w", err)
	}

	// EOF: the sequence completed. A non-zero exit is a sequence failure.
	_ = s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return nil, false, fmt.Errorf("process sequence: %w", err)
	}
	return nil, true, nil
}

func (s *sequence) start(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.def.command, s.argv...)
	cmd.Dir = s.def.dir
	if len(s.def.env) > 0 {
		cmd.Env = append(cmd.Environ(), s.def.env...)
	}
	if s.def.stderr != nil {
		cmd.Stderr = s.def.stderr
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.def.command, err)
	}

	s.cmd = cmd
	s.stdin = stdin
	s.scanner = bufio.NewScanner(stdout)
	s.started = true
	return nil
}

func (s *sequence) send(signal *float64) error {
	line := "null\n"
	if signal != nil {
		data, err := json.Marshal(*signal)
		if err != nil {
			return err
		}
		line = string(data) + "\n"
	}
	_, err := io.WriteString(s.stdin, line)
	return err
}

// abort tears the child down after a protocol failure so Wait cannot block
// on a process still holding its pipes.
func (s *sequence) abort() {
	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
}
