package main

import (
	"context"
	"log"

	"ai-lifecoach-be/internal/bootstrap"
	"ai-lifecoach-be/internal/config"
	"ai-lifecoach-be/internal/server"
	"ai-lifecoach-be/internal/tracer"

	"github.com/jomei/notionapi"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration (fatal when the Notion credential or any
	// database id is missing)
	cfg := config.Load()

	// 3. Connect to the remote store
	client := notionapi.NewClient(notionapi.Token(cfg.Notion.Token))

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(client, cfg)
	defer container.Logger.Sync()

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
