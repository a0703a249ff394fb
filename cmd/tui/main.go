package main

import (
	"log"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/limbo/stepcount/internal/client"
	"github.com/limbo/stepcount/internal/tui"
	"github.com/limbo/stepcount/pkg/config"
)

func main() {
	cfg := config.New()
	c := client.New(cfg.GetStringOr("STEPS_API_URL", "http://localhost:8080"), http.DefaultClient)
	p := tea.NewProgram(tui.NewApp(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("tui error: " + err.Error())
	}
}
