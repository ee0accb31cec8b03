package main

import (
	"log"
	"os"

	"github.com/indigo-web/statico"
	"github.com/indigo-web/statico/config"
	"github.com/joho/godotenv"
)

const defaultAddr = "127.0.0.1:9000"

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(".env"); err != nil {
			log.Fatalf("loading .env: %s", err)
		}
	}

	cfg := config.Default()
	cfg.FS.Root = getenv("STATICO_ROOT", cfg.FS.Root)
	cfg.FS.Index = getenv("STATICO_INDEX", cfg.FS.Index)

	log.Fatal(statico.New(getenv("STATICO_ADDR", defaultAddr)).
		Tune(cfg).
		Serve())
}

func getenv(key, or string) string {
	if value := os.Getenv(key); len(value) > 0 {
		return value
	}

	return or
}
