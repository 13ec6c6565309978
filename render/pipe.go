package render

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/revelaction/randsent/tree"
)

// PipeRenderer writes the bracketed tree and then hands it to an external
// pretty printer, which gets the tree line on its standard input.
type PipeRenderer struct {
	W   io.Writer
	Err io.Writer

	// Command is the printer executable followed by its arguments
	Command []string
}

// NewPipeRenderer splits command on whitespace.
func NewPipeRenderer(command string, w, errw io.Writer) (*PipeRenderer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errors.New("empty pretty print command")
	}
	return &PipeRenderer{W: w, Err: errw, Command: fields}, nil
}

func (r *PipeRenderer) Render(n *tree.Node) error {
	line := Bracketed(n)
	if _, err := fmt.Fprintln(r.W, line); err != nil {
		return err
	}

	cmd := exec.Command(r.Command[0], r.Command[1:]...)
	cmd.Stdin = strings.NewReader(line + "\n")
	cmd.Stdout = r.W
	cmd.Stderr = r.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "pretty print %s", r.Command[0])
	}
	return nil
}

// compile-time interface check
var _ Renderer = (*PipeRenderer)(nil)
