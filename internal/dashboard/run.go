package dashboard

import (
	"context"
	"io"
	"os"

	"emperror.dev/errors"
	"github.com/c2h5oh/datasize"
	tea "github.com/charmbracelet/bubbletea"
	averrors "github.com/rileyhilliard/allocview/internal/errors"
	"golang.org/x/term"
)

// Options configures a dashboard run.
type Options struct {
	FrameRate int               // ticks per second, DefaultFrameRate when out of range
	Step      datasize.ByteSize // size bound to the '1' key
	Source    string            // shown in the header
	Input     io.Reader         // defaults to stdin
	Output    *os.File          // defaults to stdout; must be a terminal
}

// Run takes over the terminal and drives ctrl until the user quits, ctx is
// cancelled or a tick fails. The terminal is restored before Run returns.
func Run(ctx context.Context, ctrl *Controller, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !term.IsTerminal(int(out.Fd())) {
		return averrors.New(averrors.ErrTerminal,
			"Output is not a terminal",
			"Run allocview in an interactive terminal, or use 'allocview metrics' to list metrics.")
	}

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}

	final, err := tea.NewProgram(NewModel(ctrl, opts), progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return averrors.Wrap(err, averrors.ErrRender, "Dashboard stopped unexpectedly")
	}

	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
