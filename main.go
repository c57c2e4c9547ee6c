package main

import (
	"context"
	"log"
	"os"
	"time"

	httpapi "cafe-backend/internal/api/http"
	"cafe-backend/internal/config"
	"cafe-backend/internal/service"
	"cafe-backend/internal/storage"
)

func main() {
	client, db := config.MustInitMongo()
	defer client.Disconnect(context.Background())

	repo := storage.NewMongoRepository(db)

	var menuCache service.MenuCache
	if os.Getenv("REDIS_HOST") != "" {
		menuCache = storage.NewRedisCache(config.MustInitRedis(), 5*time.Minute)
	}

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("cafe.orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	cafeSvc := service.NewCafeService(repo)
	menuSvc := service.NewMenuService(repo, menuCache)
	orderSvc := service.NewOrderService(repo, repo, publisher, service.DefaultQRGenerator{BaseURL: config.BaseURL()})
	resSvc := service.NewReservationService(repo)

	handler := httpapi.NewHandler(cafeSvc, menuSvc, orderSvc, resSvc)
	router := httpapi.NewRouter(handler)

	log.Println("Cafe API wired: mongo connected, cache enabled:", menuCache != nil, "events enabled:", publisher != nil)
	httpapi.StartServer(config.ListenAddr(), router)
}
