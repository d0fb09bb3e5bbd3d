package ui

import (
	"fmt"
	"strings"

	"cinemaguess/internal/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleClue     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleFinished = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleStatus   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	stylePoster   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleBarFill  = lipgloss.NewStyle().Background(lipgloss.Color("10")).SetString(" ")
	styleBarEmpty = lipgloss.NewStyle().Background(lipgloss.Color("0")).SetString(" ")
)

const (
	posterWidth  = 24
	posterHeight = 4
	barWidth     = 30
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render("CINEMAGUESS") + styleSubtle.Render("  daily movie riddle"))
	b.WriteString("\n\n")

	switch m.snap.State {
	case game.StateLoading:
		b.WriteString("Loading today's game...\n")
		if m.snap.Status != "" {
			b.WriteString(styleStatus.Render(m.snap.Status) + "\n")
			b.WriteString(styleSubtle.Render("press enter to retry") + "\n")
		}
	default:
		b.WriteString(m.viewSession())
	}

	return b.String()
}

func (m Model) viewSession() string {
	var b strings.Builder

	b.WriteString(styleSubtle.Render(m.snap.GameDate) + "\n\n")
	b.WriteString(renderPoster(m.snap) + "\n\n")

	for _, clue := range m.snap.PreviousClues {
		b.WriteString(styleSubtle.Render("  "+clue) + "\n")
	}

	if m.snap.Finished {
		if m.snap.RevealedTitle != "" {
			b.WriteString(styleFinished.Render("  "+m.snap.RevealedTitle) + "\n")
		}
	} else {
		b.WriteString(styleClue.Render("> "+m.snap.CurrentClueText) + "\n")
	}

	b.WriteString("\n" + renderProgress(m.snap) + "\n")

	if m.snap.Status != "" {
		b.WriteString("\n" + styleStatus.Render(m.snap.Status) + "\n")
	}

	if !m.snap.Finished {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	b.WriteString("\n" + styleSubtle.Render("enter: guess · ctrl+n: different movie · esc: quit") + "\n")
	return b.String()
}

// renderPoster draws the poster as a character mosaic whose coarseness
// follows the blur intensity; at blur 0 the poster URL is shown sharp.
func renderPoster(snap game.Snapshot) string {
	if snap.PosterURL == "" {
		return stylePoster.Render("(no poster)")
	}

	if snap.Blur == 0 {
		return stylePoster.Render("Poster: " + snap.PosterURL)
	}

	shade := mosaicRune(snap.Blur)
	row := strings.Repeat(string(shade), posterWidth)
	rows := make([]string, posterHeight)
	for i := range rows {
		rows[i] = row
	}
	return stylePoster.Render(strings.Join(rows, "\n"))
}

// mosaicRune maps the blur range onto increasingly dense shade blocks.
func mosaicRune(blur float64) rune {
	ratio := (blur - game.MinBlur) / (game.MaxBlur - game.MinBlur)
	switch {
	case ratio > 0.66:
		return '█'
	case ratio > 0.33:
		return '▓'
	case ratio > 0:
		return '▒'
	default:
		return '░'
	}
}

func renderProgress(snap game.Snapshot) string {
	filled := int(snap.ProgressPercent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		b.WriteString(styleBarFill.String())
	}
	for i := filled; i < barWidth; i++ {
		b.WriteString(styleBarEmpty.String())
	}
	b.WriteString(styleSubtle.Render(fmt.Sprintf("  clue %d/%d", snap.CurrentClueIndex+1, snap.TotalClues)))
	return b.String()
}
