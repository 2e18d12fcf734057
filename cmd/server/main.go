package main

import (
	"context"

	"github.com/jeremiasmarinho/foodconnect-sub000/config"
	httpapi "github.com/jeremiasmarinho/foodconnect-sub000/internal/api/http"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/realtime"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/service"
	"github.com/jeremiasmarinho/foodconnect-sub000/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("engagements")
	defer writer.Close()

	reader := config.NewKafkaReader("engagements", "feed-aggregator")
	defer reader.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewFeedCache(rdb, config.FeedCacheTTL())
	publisher := storage.NewKafkaPublisher(writer)

	registry := realtime.NewRegistry()
	topics := realtime.NewTopicRouter()
	gateway := realtime.NewGateway(registry, topics)

	notifications := service.NewNotificationService(repository, registry, topics)
	profiles := service.NewProfileBuilder(repository)
	feed := service.NewFeedService(repository, cache, profiles, config.CandidateMultiplier())
	engagement := service.NewEngagementService(repository, notifications, publisher, cache)

	consumer := service.NewConsumer(reader, repository, cache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(feed, engagement, notifications,
		service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()})
	httpapi.StartServer(":8080", httpapi.NewRouter(handler, gateway))
}
