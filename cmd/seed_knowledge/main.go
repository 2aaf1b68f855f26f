package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"ai-tickettriage-be/internal/config"
	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/repository/specification"
	"ai-tickettriage-be/internal/repository/unitofwork"
	"ai-tickettriage-be/pkg/database"
	"ai-tickettriage-be/pkg/embedding"

	"github.com/google/uuid"
)

type seedEntry struct {
	Complaint string   `json:"complaint"`
	Reply     string   `json:"reply"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Sector    string   `json:"sector"`
}

// Loads a JSON array of complaint/reply pairs into the knowledge base.
// Usage: go run ./cmd/seed_knowledge <entries.json>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: seed_knowledge <entries.json>")
	}

	cfg := config.Load()

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Error: failed to read %s: %v", os.Args[1], err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Error: failed to parse entries: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: failed to connect to database: %v", err)
	}

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, "text-embedding-004")
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	created, skipped, failed := 0, 0, 0
	for _, e := range entries {
		if e.Complaint == "" || e.Reply == "" {
			log.Printf("Skip: entry missing complaint or reply")
			skipped++
			continue
		}

		existing, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByComplaint{Complaint: e.Complaint})
		if err != nil {
			log.Printf("Error: duplicate check failed for %q: %v", e.Complaint, err)
			failed++
			continue
		}
		if existing != nil {
			skipped++
			continue
		}

		vec, err := provider.Embed(ctx, "customer : "+e.Complaint)
		if err != nil {
			log.Printf("Error: failed to embed %q: %v", e.Complaint, err)
			failed++
			continue
		}

		sector := e.Sector
		if sector == "" {
			sector = cfg.Ai.Sector
		}

		entry := entity.KnowledgeEntry{
			Id:        uuid.New(),
			Complaint: e.Complaint,
			Reply:     e.Reply,
			Category:  e.Category,
			Tags:      e.Tags,
			Sector:    sector,
			Embedding: vec,
			CreatedAt: time.Now(),
		}
		if err := uow.KnowledgeRepository().Create(ctx, &entry); err != nil {
			log.Printf("Error: failed to store %q: %v", e.Complaint, err)
			failed++
			continue
		}
		created++
	}

	log.Printf("✅ Seed complete: %d created, %d skipped, %d failed", created, skipped, failed)
}
