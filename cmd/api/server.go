package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	adminh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/admin"
	assetsh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/assets"
	booksh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/books"
	contacth "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/contact"
	pagesh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/pages"
	searchh "github.com/AhmedAli0123/books-by-karl/internal/api/handlers/search"
	mw "github.com/AhmedAli0123/books-by-karl/internal/api/middlewares"
	"github.com/AhmedAli0123/books-by-karl/internal/api/router"
	"github.com/AhmedAli0123/books-by-karl/internal/auth"
	"github.com/AhmedAli0123/books-by-karl/internal/content"
	"github.com/AhmedAli0123/books-by-karl/internal/content/imageurl"
	"github.com/AhmedAli0123/books-by-karl/internal/relay"
	"github.com/AhmedAli0123/books-by-karl/internal/search"
	"github.com/AhmedAli0123/books-by-karl/internal/storage"
	"github.com/AhmedAli0123/books-by-karl/internal/storage/contentassets"
	s3storage "github.com/AhmedAli0123/books-by-karl/internal/storage/s3"
	storebooks "github.com/AhmedAli0123/books-by-karl/internal/store/books"
	storepages "github.com/AhmedAli0123/books-by-karl/internal/store/pages"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Content store client
	client, err := content.New(content.Config{
		ProjectID:  os.Getenv("CONTENT_PROJECT_ID"),
		Dataset:    os.Getenv("CONTENT_DATASET"),
		APIVersion: os.Getenv("CONTENT_API_VERSION"),
		Token:      os.Getenv("CONTENT_API_TOKEN"),
		BaseURL:    os.Getenv("CONTENT_BASE_URL"),
		CDNBaseURL: os.Getenv("CONTENT_CDN_URL"),
	})
	if err != nil {
		log.Fatalf("content client: %v", err)
	}

	rdb := connectRedis()

	// Stores and services
	bookStore := storebooks.New(client)
	pageStore := storepages.New(client)
	searchSvc := search.NewService(rdb, bookStore)
	images := imageurl.New(client)

	authSvc, err := auth.NewService(auth.Config{
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Secret:            []byte(os.Getenv("JWT_SECRET")),
	})
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	relayEndpoint := os.Getenv("RELAY_ENDPOINT")
	if relayEndpoint == "" {
		relayEndpoint = "https://api.web3forms.com/submit"
	}
	relayClient := relay.New(relayEndpoint, os.Getenv("RELAY_ACCESS_KEY"))

	uploader, covers := buildUploader(client)

	deps := router.Deps{
		Auth:    authSvc,
		Books:   booksh.NewHandler(bookStore, images, covers, searchSvc),
		Search:  searchh.NewHandler(searchSvc),
		Pages:   pagesh.NewHandler(pageStore),
		Contact: contacth.NewHandler(relayClient),
		Assets:  assetsh.NewHandler(uploader),
		Admin:   adminh.NewHandler(authSvc),
	}

	origins := splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	chain := []mw.Middleware{
		mw.RequestID,
		mw.Recovery,
		mw.Cors(origins),
		mw.ResponseTime,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		chain = append(chain, tb.Middleware)
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mw.Chain(router.Router(deps), chain...),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	fmt.Println("Server is running on port:", port)
	if cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY"); cert != "" && key != "" {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// connectRedis dials Redis from either a full Upstash URL or split fields.
// Redis is optional here: without it the title cache and rate limiting are
// skipped and everything else still works.
func connectRedis() *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		log.Println("no Redis configured; running without cache or rate limiting")
		return nil
	}

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	fmt.Println("Connected to Redis")
	return rdb
}

// buildUploader picks the cover-image backend. Default is the content
// platform's asset endpoint, whose references resolve through the CDN URL
// builder; STORAGE_BACKEND=s3 switches to the R2 bucket and also supplies
// the read-time resolver that presigns stored object keys.
func buildUploader(client *content.Client) (storage.Uploader, storage.URLResolver) {
	if os.Getenv("STORAGE_BACKEND") != "s3" {
		return contentassets.New(client), nil
	}
	s3c, err := s3storage.NewClient(context.Background(), s3storage.Config{
		Endpoint:        os.Getenv("R2_ENDPOINT"),
		Region:          os.Getenv("R2_REGION"),
		Bucket:          os.Getenv("R2_BUCKET"),
		AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		log.Fatalf("s3 storage: %v", err)
	}
	return s3c, s3c
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
