package quiz

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizsheet/internal/session"
)

// Run launches the interactive quiz on stdout and blocks until the user quits.
func Run(ctx context.Context, ctrl *session.Controller, stdout io.Writer, opts Options) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	model := NewModel(ctx, ctrl, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
