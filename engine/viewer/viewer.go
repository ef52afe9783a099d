package viewer

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spaghettifunk/anima-bridge/engine/core"
)

var ErrNoCommand = errors.New("no viewer command configured")

type options struct {
	dir   string
	start func(cmd *exec.Cmd) error
}

type Option func(*options)

// WithDir runs the viewer from dir.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithStarter replaces the function that starts the viewer process.
func WithStarter(start func(cmd *exec.Cmd) error) Option {
	return func(o *options) {
		o.start = start
	}
}

// Launcher opens files in an external program without waiting for it.
type Launcher struct {
	command string
	opts    options
}

func New(command string, opts ...Option) *Launcher {
	l := &Launcher{
		command: command,
		opts:    options{start: startDetached},
	}
	for _, o := range opts {
		o(&l.opts)
	}
	return l
}

// Open starts the viewer with path appended to its command line.
func (l *Launcher) Open(path string) error {
	cmd, err := l.Command(path)
	if err != nil {
		return err
	}
	core.LogDebug("Executing: %s", strings.Join(cmd.Args, " "))
	if err := l.opts.start(cmd); err != nil {
		return fmt.Errorf("error executing %s: %w", cmd.Args[0], err)
	}
	return nil
}

// Command builds the process that Open would start.
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	args, err := shellwords.Parse(l.command)
	if err != nil {
		return nil, fmt.Errorf("viewer command %q: %w", l.command, err)
	}
	if len(args) == 0 {
		return nil, ErrNoCommand
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	if l.opts.dir != "" {
		cmd.Dir = l.opts.dir
	}
	return cmd, nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
