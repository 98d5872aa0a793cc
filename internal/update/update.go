package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/LofiStudio/internal/models"
)

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, env Env) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, env)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case spinner.TickMsg:
		return HandleSpinnerTick(appModel, msg)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	case ClipboardResultMsg:
		return HandleClipboardResult(appModel, msg)
	case CopyExpiredMsg:
		appModel.ExpireCopied(msg.Token)
		return nil
	}
	return nil
}
