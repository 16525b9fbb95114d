// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container detects and drives a local container runtime. The pandoc
// conversion backend uses it to pipe HTML through a pandoc image.
// See docs/ARCHITECTURE § Conversion.
package container

import (
	"fmt"
	"io"
	"os/exec"
)

// Runtime provides the container operations the conversion backend needs:
// verifying an image is present and running it with piped stdin/stdout.
type Runtime interface {
	// Name returns the runtime binary name ("docker" or "podman").
	Name() string

	// ImageExists returns nil when the named image is available locally.
	ImageExists(image string) error

	// Run executes the image with the given command arguments, connecting
	// stdin and stdout to the container process.
	Run(image string, args []string, stdin io.Reader, stdout io.Writer) error
}

// executor abstracts command execution so tests can avoid real binaries.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// engine describes one supported runtime binary. Docker and podman differ
// only in the subcommand that checks image existence.
type engine struct {
	bin        string
	imageCheck []string
}

// engines lists supported runtimes in detection-preference order.
var engines = []engine{
	{bin: "docker", imageCheck: []string{"image", "inspect"}},
	{bin: "podman", imageCheck: []string{"image", "exists"}},
}

// runtime implements Runtime for one engine.
type runtime struct {
	engine
	exec executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) ImageExists(image string) error {
	args := append(append([]string{}, r.imageCheck...), image)
	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Run(image string, args []string, stdin io.Reader, stdout io.Writer) error {
	full := append([]string{"run", "--rm", "-i", image}, args...)
	if err := r.exec.RunPiped(r.bin, full, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", r.bin, image, err)
	}
	return nil
}

// available reports whether the runtime binary exists on PATH and responds
// to an info command.
func (r *runtime) available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

var defaultExec executor = osExecutor{}

// Detect returns the first operational runtime, preferring docker over
// podman. It fails when neither binary works.
func Detect() (Runtime, error) {
	return detect(defaultExec)
}

func detect(exec executor) (Runtime, error) {
	for _, e := range engines {
		rt := &runtime{engine: e, exec: exec}
		if rt.available() {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither docker nor podman found or operational")
}
