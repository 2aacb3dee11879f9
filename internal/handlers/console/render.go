package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/liarsdice/internal/services/game"
)

// screenClearLines is how many blank lines push the previous player's dice
// off a typical terminal
const screenClearLines = 40

var (
	// TitleStyle renders the game banner
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	bidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	dieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

// renderTurnHeader prints the per-turn summary: the round number, the
// standing bid, and the active player's remaining dice
func (h *Handler) renderTurnHeader(info *game.GetGameInfoOutput, active *game.GetActivePlayerOutput) {
	h.printfln("%s", headerStyle.Render(fmt.Sprintf("Round %d", info.RoundNumber)))

	if info.CurrentBid == nil {
		h.printfln("No bid has been placed yet.")
	} else {
		h.printfln("%s", bidStyle.Render(fmt.Sprintf(
			"Standing bid: %s claims %d dice showing %d",
			info.CurrentBid.AuthorName(), info.CurrentBid.Quantity(), info.CurrentBid.FaceValue())))
	}

	h.printfln("You have %d dice.", active.DiceCount)
}

// renderRolls formats a hand of rolled values as a row of dice
func renderRolls(rolls []int) string {
	faces := make([]string, 0, len(rolls))
	for _, roll := range rolls {
		faces = append(faces, dieStyle.Render(fmt.Sprintf("%d", roll)))
	}
	return strings.Join(faces, " ")
}
