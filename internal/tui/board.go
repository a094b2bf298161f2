package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfehric/gamify/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
