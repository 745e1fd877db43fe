package main

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/tomz197/skyfall/internal/config"
	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/store"
	"github.com/tomz197/skyfall/internal/web"
)

const (
	defaultHost   = "0.0.0.0"
	defaultPort   = "8080"
	defaultDBPath = "/app/data/skyfall.db"
)

//go:embed index.html
var htmlPage []byte

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	dbPath := config.GetEnv("SKYFALL_DB", defaultDBPath)
	publicURL := config.GetEnv("WEB_PUBLIC_URL", fmt.Sprintf("http://localhost:%s", port))
	qrSize := config.GetEnvInt("WEB_QR_SIZE", 256)

	var best loop.BestStore
	if db, err := store.Open(dbPath); err == nil {
		best = db
		defer db.Close()
	} else {
		log.Printf("high score store unavailable: %v", err)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(htmlPage)
	})

	http.HandleFunc("/ws", web.Handler(best))

	// QR code pointing at the game page, for handing the URL to a phone.
	http.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) {
		png, err := qrcode.Encode(publicURL, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr encode failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
