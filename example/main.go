package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/logward/go-logward"
	"github.com/logward/go-logward/lwlogrus"
	"github.com/sirupsen/logrus"
)

func mustGetEnv(key string) string {
	if val := os.Getenv(key); "" != val {
		return val
	}
	panic(key + " environment variable required")
}

func main() {
	cfg := logward.NewConfig(mustGetEnv("LOGWARD_API_KEY"), mustGetEnv("LOGWARD_LOG_ID"))
	cfg.Application = "example-app"
	cfg.Logger = logward.NewDebugLogger(os.Stdout)
	cfg.OnFilter = func(m *logward.Message) bool {
		// Health check noise is not worth tracking.
		return "/healthz" == m.URL
	}

	client, err := logward.NewClient(cfg)
	if nil != err {
		panic(err)
	}
	defer client.Close()

	log := logrus.New()
	log.AddHook(lwlogrus.NewHook(client))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello world"))
	})

	http.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(logrus.Fields{
			"url":         r.URL.Path,
			"method":      r.Method,
			"statusCode":  http.StatusInternalServerError,
			"queryString": r.URL.RawQuery,
			"headers":     r.Header,
			"error":       errors.New("something went wrong"),
		}).Error("request failed")
		http.Error(w, "failed", http.StatusInternalServerError)
	})

	srv := &http.Server{
		Addr:              ":8000",
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); nil != err {
		log.WithError(err).Fatal("server stopped")
	}
}
