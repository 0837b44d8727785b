package main

import (
	"context"
	"log"
	"strings"

	"github.com/kofidarko/nnwombot/internal/bot"
	"github.com/kofidarko/nnwombot/internal/bot/admin"
	"github.com/kofidarko/nnwombot/internal/bot/client"
	"github.com/kofidarko/nnwombot/internal/db"
	"github.com/kofidarko/nnwombot/internal/logger"
	"github.com/kofidarko/nnwombot/internal/redis"
	"github.com/kofidarko/nnwombot/internal/state"
	"github.com/kofidarko/nnwombot/internal/utils"
)

func main() {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN", "ADMIN_BOT_TOKEN", "ADMIN_USERNAMES"})
	if err != nil {
		log.Fatal("required env missing: ", err)
	}

	if err := db.Init(); err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}
	defer db.Close()

	cache := redis.NewManager()

	drafts := state.NewManager(cache)
	if err := drafts.Init(context.Background()); err != nil {
		log.Fatalf("failed to restore drafts: %v", err)
	}

	clientBot, err := bot.New("client", env["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to create client bot: %v", err)
	}
	adminBot, err := bot.New("admin", env["ADMIN_BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to create admin bot: %v", err)
	}

	if err := logger.Init(clientBot); err != nil {
		log.Printf("channel logging disabled: %v", err)
	}

	client.SetupHandlers(clientBot, drafts, cache)
	admin.SetupHandlers(adminBot, cache, drafts, strings.Split(env["ADMIN_USERNAMES"], ","))

	logger.Info("nnwombot started")
	select {}
}
