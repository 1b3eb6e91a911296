package main

import (
	"context"
	"fmt"
	"strings"

	"ai-lifecoach-be/internal/config"
	"ai-lifecoach-be/internal/pkg/logger"
	"ai-lifecoach-be/internal/repository/implementation"
	"ai-lifecoach-be/internal/service"

	"github.com/fatih/color"
	"github.com/jomei/notionapi"
)

// Prints the 10 most recent reflections straight from the remote store.
// Handy for checking what the reader flow will render without running the
// server.
func main() {
	cfg := config.Load()
	client := notionapi.NewClient(notionapi.Token(cfg.Notion.Token))

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	reflectionRepo := implementation.NewReflectionRepository(client, cfg.Notion.ReflectionDBId)
	themeRepo := implementation.NewThemeRepository(client, cfg.Notion.ThemeDBId)
	themeService := service.NewThemeService(themeRepo, sysLogger)

	ctx := context.Background()

	reflections, err := reflectionRepo.FindRecent(ctx, 10)
	if err != nil {
		color.Red("Failed to fetch reflections: %v", err)
		return
	}

	if len(reflections) == 0 {
		color.Yellow("No reflections found. Add some entries to get started.")
		return
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	labelColor := color.New(color.FgWhite, color.Bold)

	for _, r := range reflections {
		title := r.Title
		if title == "" {
			title = "Untitled"
		}
		titleColor.Printf("\n%s\n", title)
		labelColor.Print("  Date: ")
		fmt.Println(r.Date)
		labelColor.Print("  Mood: ")
		fmt.Println(r.Mood)
		if r.Intensity != nil {
			labelColor.Print("  Intensity: ")
			fmt.Println(*r.Intensity)
		}

		names, warnings := themeService.DisplayNames(ctx, r.ThemeIds)
		for _, w := range warnings {
			color.Yellow("  Warning: %s", w)
		}
		labelColor.Print("  Themes: ")
		fmt.Println(strings.Join(names, ", "))

		if r.Summary != "" {
			labelColor.Print("  Summary: ")
			fmt.Println(r.Summary)
		}
		for _, insight := range r.Insights {
			fmt.Printf("    - %s\n", insight)
		}
	}
}
