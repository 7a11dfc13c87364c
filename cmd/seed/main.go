package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"pracademy/internal/config"
	"pracademy/internal/db"
	"pracademy/internal/model"
	"pracademy/internal/repository"
)

// Catalog is the operator-authored seed file layout.
type Catalog struct {
	Tutorials []model.Tutorial       `json:"tutorials"`
	Apps      []model.AppGalleryItem `json:"apps"`
}

func main() {
	file := flag.String("file", "seed.json", "path to the content catalog JSON file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Tutorial{}, &model.AppGalleryItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	catalog, err := loadCatalog(*file)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d tutorials and %d apps from %s", len(catalog.Tutorials), len(catalog.Apps), *file)

	ctx := context.Background()
	tutorialRepo := repository.NewTutorialRepository(gormDB)
	appRepo := repository.NewAppRepository(gormDB)

	created, updated, err := seedTutorials(ctx, gormDB, tutorialRepo, catalog.Tutorials)
	if err != nil {
		log.Fatalf("Failed to seed tutorials: %v", err)
	}
	log.Printf("Tutorials: %d created, %d updated", created, updated)

	created, updated, err = seedApps(ctx, gormDB, appRepo, catalog.Apps)
	if err != nil {
		log.Fatalf("Failed to seed apps: %v", err)
	}
	log.Printf("Apps: %d created, %d updated", created, updated)

	log.Println("Seed completed successfully!")
}

// loadCatalog reads and parses the seed file.
func loadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &catalog, nil
}

// seedTutorials creates or updates tutorials keyed by title. Views and
// ratings of existing rows are left alone: seeding refreshes metadata,
// it never resets counters.
func seedTutorials(ctx context.Context, gormDB *gorm.DB, repo repository.TutorialRepository, tutorials []model.Tutorial) (created, updated int, err error) {
	for _, tutorial := range tutorials {
		var existing model.Tutorial
		findErr := gormDB.WithContext(ctx).Where("title = ?", tutorial.Title).First(&existing).Error
		switch findErr {
		case nil:
			existing.Description = tutorial.Description
			existing.VideoURL = tutorial.VideoURL
			existing.ThumbnailURL = tutorial.ThumbnailURL
			existing.SubtitleURL = tutorial.SubtitleURL
			existing.Category = tutorial.Category
			existing.Difficulty = tutorial.Difficulty
			existing.Duration = tutorial.Duration
			existing.Published = tutorial.Published
			if err := repo.Update(ctx, &existing); err != nil {
				return created, updated, fmt.Errorf("update tutorial %q: %w", tutorial.Title, err)
			}
			updated++
		case gorm.ErrRecordNotFound:
			tutorial := tutorial
			if err := repo.Create(ctx, &tutorial); err != nil {
				return created, updated, fmt.Errorf("create tutorial %q: %w", tutorial.Title, err)
			}
			created++
		default:
			return created, updated, fmt.Errorf("lookup tutorial %q: %w", tutorial.Title, findErr)
		}
	}
	return created, updated, nil
}

// seedApps creates or updates gallery items keyed by name.
func seedApps(ctx context.Context, gormDB *gorm.DB, repo repository.AppRepository, apps []model.AppGalleryItem) (created, updated int, err error) {
	for _, app := range apps {
		var existing model.AppGalleryItem
		findErr := gormDB.WithContext(ctx).Where("name = ?", app.Name).First(&existing).Error
		switch findErr {
		case nil:
			existing.Description = app.Description
			existing.ScreenshotURL = app.ScreenshotURL
			existing.PartyrockLink = app.PartyrockLink
			existing.Category = app.Category
			existing.Difficulty = app.Difficulty
			existing.UseCase = app.UseCase
			existing.Featured = app.Featured
			if err := repo.Update(ctx, &existing); err != nil {
				return created, updated, fmt.Errorf("update app %q: %w", app.Name, err)
			}
			updated++
		case gorm.ErrRecordNotFound:
			app := app
			if err := repo.Create(ctx, &app); err != nil {
				return created, updated, fmt.Errorf("create app %q: %w", app.Name, err)
			}
			created++
		default:
			return created, updated, fmt.Errorf("lookup app %q: %w", app.Name, findErr)
		}
	}
	return created, updated, nil
}
