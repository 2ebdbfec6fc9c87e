package hashers

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/util"
)

// DefaultSumCommand streams content through coreutils sha256sum.
var DefaultSumCommand = []string{"sha256sum", "-"}

// ExecHasher delegates digesting to an external program. Content is piped on
// stdin and the first whitespace delimited token of stdout is the digest.
type ExecHasher struct {
	name    string
	program string
	args    []string
	stderr  io.Writer
}

// NewExec resolves command[0] on PATH. A missing program is reported here so
// the run fails at startup instead of skipping every file.
func NewExec(command ...string) (*ExecHasher, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrHasherFailed)
	}
	program, err := exec.LookPath(command[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHasherFailed, err)
	}
	return &ExecHasher{
		name:    filepath.Base(command[0]),
		program: program,
		args:    command[1:],
		stderr:  util.NewLogWriter("hasher", util.WarnLevel),
	}, nil
}

func (h *ExecHasher) Name() string {
	return h.name
}

func (h *ExecHasher) Digest(r io.Reader) (dedupe.Fingerprint, error) {
	var stdout bytes.Buffer
	cmd := exec.Command(h.program, h.args...)
	cmd.Stdin = r
	cmd.Stdout = &stdout
	cmd.Stderr = h.stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrHasherFailed, h.program, err)
	}
	fields := strings.Fields(stdout.String())
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: %s: empty output", ErrHasherFailed, h.program)
	}
	return dedupe.Fingerprint(strings.ToLower(fields[0])), nil
}
