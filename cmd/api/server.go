package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/cozyreads/inventory-api/internal/api/middlewares"
	"github.com/cozyreads/inventory-api/internal/api/router"
	"github.com/cozyreads/inventory-api/internal/repository/sqlconnect"
	"github.com/cozyreads/inventory-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb := connectRedis()

	middlewares := []utils.Middleware{
		mw.Cors,
		mw.RequestID,
		mw.Recovery,
		mw.ResponseTimeMiddleware,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, 20, 60, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		middlewares = append(middlewares, tb.Middleware, sw.Middleware)
	}

	server := &http.Server{
		Addr:         port,
		Handler:      utils.ApplyMiddleware(router.Router(db, rdb), middlewares...),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// connectRedis is optional infrastructure: without it the rate limiters and
// the stats/filters cache are simply disabled.
func connectRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set; running without rate limiting and caching")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	if opt.TLSConfig == nil && os.Getenv("REDIS_TLS") == "1" {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 1 * time.Second
	opt.WriteTimeout = 1 * time.Second

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	return rdb
}
