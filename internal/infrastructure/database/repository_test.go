package database

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestProductRepositorySave(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	p, err := entity.NewProduct(0, "Air Zoom Pegasus", "Nike", "Running", "42", "Negro", 120, 5, "Amortiguación reactiva")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Name != "Air Zoom Pegasus" || fetched.Price != 120 || fetched.Stock != 5 {
		t.Errorf("round trip mismatch: %+v", fetched)
	}

	// Saving with a set id replaces the row in place.
	fetched.Stock = 2
	updated, err := repo.Save(ctx, fetched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID || updated.Stock != 2 {
		t.Errorf("expected in-place update, got %+v", updated)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 product after update, got %d", len(all))
	}
}

func TestProductRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestProductRepositoryFilters(t *testing.T) {
	db := openTestDB(t)
	if err := LoadInitialData(db, quietLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := NewProductRepository(db)
	ctx := context.Background()

	byBrand, err := repo.GetByBrand(ctx, "Nike")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].Name != "Air Zoom Pegasus" {
		t.Errorf("unexpected brand filter result: %+v", byBrand)
	}

	byCategory, err := repo.GetByCategory(ctx, "Running")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCategory) != 2 {
		t.Errorf("expected 2 running shoes, got %d", len(byCategory))
	}

	empty, err := repo.GetByBrand(ctx, "Reebok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no products for unknown brand, got %d", len(empty))
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p, _ := entity.NewProduct(0, "Suede Classic", "Puma", "Casual", "40", "Azul", 80, 10, "")
	created, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Error("expected delete to report an existing row")
	}

	found, err = repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected second delete to report no row")
	}
}

func saveMessage(t *testing.T, repo domain.ChatRepository, sessionID, role, msg string, ts time.Time) *entity.ChatMessage {
	t.Helper()
	m, err := entity.NewChatMessage(0, sessionID, role, msg, ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved, err := repo.SaveMessage(context.Background(), m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return saved
}

func TestChatRepositoryHistoryOrder(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()

	// A user/assistant pair shares one timestamp; insertion order must
	// still be preserved.
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	saveMessage(t, repo, "s1", entity.RoleUser, "hola", ts)
	saveMessage(t, repo, "s1", entity.RoleAssistant, "¡Hola! ¿Qué buscas?", ts)
	saveMessage(t, repo, "s1", entity.RoleUser, "tenis de running", ts.Add(time.Minute))
	saveMessage(t, repo, "s2", entity.RoleUser, "otra sesión", ts)

	history, err := repo.GetSessionHistory(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history))
	}
	wantRoles := []string{entity.RoleUser, entity.RoleAssistant, entity.RoleUser}
	for i, want := range wantRoles {
		if history[i].Role != want {
			t.Errorf("message %d: expected role %s, got %s", i, want, history[i].Role)
		}
	}

	limited, err := repo.GetSessionHistory(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 2 || limited[0].Message != "hola" {
		t.Errorf("expected the oldest 2 messages, got %+v", limited)
	}
}

func TestChatRepositoryRecentMessages(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		role := entity.RoleUser
		if i%2 == 1 {
			role = entity.RoleAssistant
		}
		saveMessage(t, repo, "s1", role, "m"+string(rune('0'+i)), base.Add(time.Duration(i)*time.Second))
	}

	recent, err := repo.GetRecentMessages(ctx, "s1", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(recent))
	}
	// Trailing window, chronological order.
	if recent[0].Message != "m2" || recent[5].Message != "m7" {
		t.Errorf("expected m2..m7, got %s..%s", recent[0].Message, recent[5].Message)
	}

	none, err := repo.GetRecentMessages(ctx, "unknown", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty history for unknown session, got %d", len(none))
	}
}

func TestChatRepositoryDeleteSessionHistory(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()

	ts := time.Now().UTC()
	saveMessage(t, repo, "s1", entity.RoleUser, "hola", ts)
	saveMessage(t, repo, "s1", entity.RoleAssistant, "hola!", ts)
	saveMessage(t, repo, "s2", entity.RoleUser, "queda", ts)

	deleted, err := repo.DeleteSessionHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}

	deleted, err = repo.DeleteSessionHistory(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted on purged session, got %d", deleted)
	}

	other, err := repo.GetSessionHistory(ctx, "s2", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("expected other sessions untouched, got %d messages", len(other))
	}
}

func TestLoadInitialDataIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := LoadInitialData(db, quietLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := LoadInitialData(db, quietLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int64
	if err := db.Model(&ProductModel{}).Count(&count).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected exactly 3 seed products, got %d", count)
	}
}
