package service

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

type fakeEmail struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmail) SendWelcomeEmail(to, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PresignGet(key string, expiry time.Duration) (string, error) {
	return "https://signed.test/" + key, nil
}

func (f *fakeStorage) PublicURL() string {
	return "https://files.test"
}

type testEnv struct {
	db      *gorm.DB
	storage *fakeStorage
	email   *fakeEmail

	auth     *AuthService
	users    *UserService
	themes   *ThemeService
	events   *EventService
	programs *ProgramService
	contacts *ContactService
	uploads  *UploadService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "festpix_test.db")
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dbPath,
	}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.EventTheme{},
		&models.Event{},
		&models.EventProgram{},
		&models.ContactPerson{},
		&models.GuestUpload{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	themeRepo := repository.NewEventThemeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	programRepo := repository.NewEventProgramRepository(db)
	contactRepo := repository.NewContactPersonRepository(db)
	uploadRepo := repository.NewGuestUploadRepository(db)

	st := &fakeStorage{}
	em := &fakeEmail{}
	logger := zap.NewNop()

	return &testEnv{
		db:       db,
		storage:  st,
		email:    em,
		auth:     NewAuthService(userRepo, em, logger),
		users:    NewUserService(userRepo, logger),
		themes:   NewThemeService(themeRepo, eventRepo),
		events:   NewEventService(eventRepo, userRepo, nil, logger),
		programs: NewProgramService(programRepo, eventRepo),
		contacts: NewContactService(contactRepo, eventRepo),
		uploads:  NewUploadService(uploadRepo, eventRepo, userRepo, st, logger),
	}
}

func (e *testEnv) createOrganizer(t *testing.T, username string, rateLimit int) *models.User {
	t.Helper()
	user := &models.User{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "irrelevant",
		Role:            models.RoleEventOrganizer,
		IsActive:        true,
		UploadRateLimit: rateLimit,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create organizer: %v", err)
	}
	return user
}

func (e *testEnv) createEvent(t *testing.T, organizerID uint, name string) *models.Event {
	t.Helper()
	event, err := e.events.CreateEvent(organizerID, models.CreateEventRequest{
		Name:      name,
		EventDate: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

// createUploadAt inserts an upload row with an explicit creation time so the
// sliding-window boundary can be exercised.
func (e *testEnv) createUploadAt(t *testing.T, eventID uint, ip string, createdAt time.Time) *models.GuestUpload {
	t.Helper()
	upload := &models.GuestUpload{
		EventID:   eventID,
		GuestName: "Guest",
		FileURL:   "https://files.test/uploads/pic.jpg",
		FileName:  "pic.jpg",
		FileSize:  2048,
		MimeType:  "image/jpeg",
		UploadIP:  &ip,
		CreatedAt: createdAt,
	}
	if err := e.db.Create(upload).Error; err != nil {
		t.Fatalf("create upload: %v", err)
	}
	return upload
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
