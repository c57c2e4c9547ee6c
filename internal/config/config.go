package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func MustInitMongo() (*mongo.Client, *mongo.Database) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "cafe"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return client, client.Database(name)
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func ListenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return ":" + port
}

func BaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return base
}
