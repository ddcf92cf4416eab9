// Command seed inserts the default nights. Nights are created out-of-band;
// the HTTP service only reads them. Running the command twice is safe:
// nights whose short id already exists are skipped.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/tavolo/night-booking/internal/config"
	"github.com/tavolo/night-booking/internal/database"
	"github.com/tavolo/night-booking/internal/model"
	"github.com/tavolo/night-booking/internal/repository"
)

func active() *bool { v := true; return &v }

var nights = []model.Night{
	{ShortID: "1", Title: "Serata Uno", DateLabel: "Sabato 15 Marzo 2025", TimeLabel: "20:00", Color: "#7c3aed", HoverColor: "#6d28d9", IsActive: active()},
	{ShortID: "2", Title: "Serata Due", DateLabel: "Domenica 16 Marzo 2025", TimeLabel: "20:00", Color: "#0891b2", HoverColor: "#0e7490", IsActive: active()},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := repository.NewNightRepo(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, night := range nights {
		if _, err := repo.GetByShortID(ctx, night.ShortID); err == nil {
			log.Printf("night %s already exists; skipping", night.ShortID)
			continue
		} else if !errors.Is(err, repository.ErrNightNotFound) {
			log.Fatalf("lookup night %s: %v", night.ShortID, err)
		}
		n := night
		if err := repo.Create(ctx, &n); err != nil {
			log.Fatalf("seed night %s: %v", night.ShortID, err)
		}
		log.Printf("seeded night %s (id=%d)", n.ShortID, n.ID)
	}
}
