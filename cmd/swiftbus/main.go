package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tersoo/swiftbus/internal/adapter/api"
	"github.com/tersoo/swiftbus/internal/adapter/realtime"
	redisstore "github.com/tersoo/swiftbus/internal/adapter/repository/redis"
	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/services"
	"github.com/tersoo/swiftbus/internal/platform/config"
	"github.com/tersoo/swiftbus/internal/platform/session"
	"github.com/tersoo/swiftbus/internal/platform/storage"
)

func main() {
	config.LoadEnv(".env")
	cfg := config.Load()

	redisClient, err := storage.NewRedisClient(storage.Config{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis after retries: %v", err)
	}
	defer redisClient.Close()

	store := redisstore.NewDraftStore(redisClient)

	sess := session.New(store)
	if err := sess.Load(context.Background()); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	}

	backend := api.NewClient(nil, cfg.BackendURL, sess)
	if locations, err := backend.ListLocations(context.Background()); err != nil {
		log.Printf("Backend not reachable yet: %v", err)
	} else {
		log.Printf("Backend reachable, %d locations served", len(locations))
	}

	channel := realtime.NewChannel(cfg.SocketURL)
	notifications := services.NewNotifications(channel)

	if err := channel.Connect(context.Background(), sess.Credentials()); err != nil {
		if domain.IsAuth(err) {
			log.Println("Not signed in; realtime channel stays offline until login.")
		} else {
			log.Printf("Realtime channel unavailable: %v", err)
		}
	}

	go func() {
		for ev := range channel.Events() {
			if notifications.Apply(ev) {
				log.Printf("Notifications: %d unread", notifications.Unread())
			}
		}
	}()

	go func() {
		for state := range channel.States() {
			log.Printf("Realtime channel is %s", state)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down...")

	if err := channel.Close(); err != nil {
		log.Printf("Closing realtime channel: %v", err)
	}

	log.Println("Exited cleanly")
}
