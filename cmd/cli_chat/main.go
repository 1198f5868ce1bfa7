package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/teefisher2k20/langchain/internal/client"
	"github.com/teefisher2k20/langchain/internal/config"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	api := client.NewHTTPClient(cfg.ServerURL, &http.Client{Timeout: cfg.Timeout}, logger)

	if health, err := api.Health(ctx); err != nil {
		fmt.Printf("Servidor no disponible en %s: %v\n", cfg.ServerURL, err)
	} else {
		fmt.Printf("Conectado a %s (langchain %s)\n", cfg.ServerURL, health.LangChainVersion)
	}

	for {
		fmt.Println("\n===== LangChain Studio =====")
		fmt.Println("[1] Chatear")
		fmt.Println("[2] Ver modelos")
		fmt.Println("[3] Health check")
		fmt.Println("[4] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			if err := chatFlow(ctx, reader, api); err != nil && !errors.Is(err, io.EOF) {
				fmt.Printf("Error en chat: %v\n", err)
			}
		case "2":
			if err := listModels(ctx, api); err != nil {
				fmt.Printf("Error listando modelos: %v\n", err)
			}
		case "3":
			health, err := api.Health(ctx)
			if err != nil {
				fmt.Printf("Health check fallo: %v\n", err)
				continue
			}
			fmt.Printf("Estado: %s (%s)\n", health.Status, health.Timestamp)
		case "4":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func chatFlow(ctx context.Context, reader *bufio.Reader, api *client.HTTPClient) error {
	fmt.Println("---- Modo Chat (escribe 'salir' para terminar chat) ----")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, "salir") {
			return nil
		}
		if text == "" {
			continue
		}

		resp, err := api.Chat(ctx, text)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				fmt.Printf("Servidor > [%d] %s\n", apiErr.StatusCode, apiErr.Message)
				continue
			}
			return fmt.Errorf("enviar mensaje: %w", err)
		}
		fmt.Printf("%s > %s\n", resp.Model, resp.Message)
	}
}

func listModels(ctx context.Context, api *client.HTTPClient) error {
	models, err := api.Models(ctx)
	if err != nil {
		return err
	}
	for i, m := range models {
		fmt.Printf("[%d] %s (%s) id=%s\n", i+1, m.Name, m.Provider, m.ID)
	}
	return nil
}
