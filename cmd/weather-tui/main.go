package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-panel/internal/config"
	"github.com/i474232898/weather-panel/internal/panel"
	"github.com/i474232898/weather-panel/internal/tui"
	"github.com/i474232898/weather-panel/internal/weather/providers"
)

func main() {
	// Log lines would tear the alternate screen, so they go to a file.
	f, err := tea.LogToFile("weather-tui.log", "weather-tui ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	prov := providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, cfg.ProviderOptions())
	p := panel.New(prov, cfg.PanelOptions())

	if _, err := tea.NewProgram(tui.New(p), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "weather-tui: %v\n", err)
		os.Exit(1)
	}
}
