package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"orbit-assistant/internal/di"
	"orbit-assistant/internal/domain/entity"
	"orbit-assistant/internal/infrastructure/env"
	"orbit-assistant/internal/infrastructure/userinteraction"
)

const exitCommand = "/exit"

func main() {
	envService := env.NewEnvService()

	ctx := context.Background()

	container, err := di.NewContainer(ctx, di.Config{
		LogName:       "orbit",
		LogLevel:      envService.GetWithDefault(env.KeyLogLevel, "info"),
		SearchTimeout: envService.SearchTimeout(),
	})
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	defer container.Close()

	console := userinteraction.NewConsoleUserInteraction()
	fmt.Printf("Orbit is ready. Type %s to quit.\n", exitCommand)

	var history []entity.Message
	for {
		question, err := console.AskQuestion(ctx, "You:")
		if err != nil {
			if !errors.Is(err, userinteraction.ErrInputClosed) {
				container.Logger.Error("Reading input failed", "error", err)
			}
			return
		}

		question = strings.TrimSpace(question)
		if question == "" {
			continue
		}
		if question == exitCommand {
			return
		}

		history = append(history, entity.UserMessage(question))

		// Settings are re-read every turn, like the settings screen they stand in for.
		result := container.Chat.Chat(ctx, history, envService.ChatConfig())
		if result.Failed() {
			console.ShowError(ctx, result.Error)
			history = history[:len(history)-1]
			continue
		}

		console.ShowAnswer(ctx, result.Content)
		history = append(history, entity.AssistantMessage(result.Content))
	}
}
