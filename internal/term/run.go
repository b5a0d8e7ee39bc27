package term

import (
	"lifeloop/internal/config"
	"lifeloop/internal/core"
	"lifeloop/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives sim in the terminal until the user quits.
func Run(cfg config.Config, sim core.Stepper) error {
	canvas := NewCanvas()
	s, err := session.New(cfg, sim, canvas, nil)
	if err != nil {
		return err
	}
	defer s.Close()
	program := tea.NewProgram(New(s, canvas), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}
