package main

import (
	"log"

	"github.com/theankitdev/yogivibes/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ yogivibes failed to start: %v", err)
	}
}
