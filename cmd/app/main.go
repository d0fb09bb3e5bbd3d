package main

import (
	"cinemaguess/internal/api"
	"cinemaguess/internal/config"
	"cinemaguess/internal/game"
	"cinemaguess/internal/logger"
	"cinemaguess/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	ctrl := game.NewController(game.NewLoader(client), game.NewEvaluator(client))

	logger.Info("starting client", "api", cfg.APIBaseURL)

	p := tea.NewProgram(ui.NewModel(ctrl))
	if _, err := p.Run(); err != nil {
		logger.Fatal("program failed", "err", err)
	}
}
