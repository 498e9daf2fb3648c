package main

import (
	"context"
	"log"
	"net/http"

	"github.com/feri-library/reservation-api/internal/config"
	"github.com/feri-library/reservation-api/internal/handlers/reservations"
	"github.com/feri-library/reservation-api/internal/middleware"
	"github.com/feri-library/reservation-api/internal/notify"
	"github.com/feri-library/reservation-api/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	st, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = st.Close(ctx) }()

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	notifier, err := notify.Dial(cfg.AMQPURL, cfg.NotifyQueue)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = notifier.Close() }()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	resH := reservations.NewHandler(st, notifier)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	r.POST("/reservations", resH.Create)
	r.GET("/reservations", resH.List)
	r.GET("/reservations/:id", resH.Get)
	r.PUT("/reservations/:id", resH.Update)
	r.DELETE("/reservations/:id", resH.Delete)
	r.GET("/reservations/user/:userId", resH.ListByUser)
	r.GET("/reservations/book/:bookId", resH.ListByBook)

	log.Printf("listening on %s", cfg.Addr)
	_ = r.Run(cfg.Addr)
}
