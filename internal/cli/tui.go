package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/scheduler"
	"github.com/julianstephens/dawg/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	sink := engine.NewChannelSink(32)
	eng, err := ctx.OpenEngine(scheduler.New(), sink)
	if err != nil {
		return err
	}
	// pending day transitions are cancelled here and resumed by the next start
	defer eng.Close()

	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(eng, sink, ctx.Settings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
