package service

import (
	"errors"
	"testing"
	"time"

	"github.com/festpix/festpix-backend/internal/models"
)

func TestDeleteThemeBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	organizer := env.createOrganizer(t, "anna", 10)

	theme, err := env.themes.CreateTheme(models.CreateEventThemeRequest{Name: "Vintage"})
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}

	event, err := env.events.CreateEvent(organizer.ID, models.CreateEventRequest{
		Name:      "Styled Wedding",
		ThemeID:   &theme.ID,
		EventDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := env.themes.DeleteTheme(theme.ID); !errors.Is(err, ErrThemeInUse) {
		t.Fatalf("expected ErrThemeInUse, got %v", err)
	}

	// Clearing the reference (theme_id 0 stores NULL) unblocks the delete.
	updated, err := env.events.UpdateEvent(event.ID, organizer.ID, organizer.Role,
		models.UpdateEventRequest{ThemeID: uintPtr(0)})
	if err != nil {
		t.Fatalf("clear theme: %v", err)
	}
	if updated.ThemeID != nil {
		t.Fatalf("expected theme reference cleared")
	}

	if err := env.themes.DeleteTheme(theme.ID); err != nil {
		t.Fatalf("delete after clearing reference: %v", err)
	}
}

func TestDeleteThemeUnknown(t *testing.T) {
	env := newTestEnv(t)

	if err := env.themes.DeleteTheme(777); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandardThemesFilter(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.themes.CreateTheme(models.CreateEventThemeRequest{Name: "House Style", IsStandard: true}); err != nil {
		t.Fatalf("create standard theme: %v", err)
	}
	if _, err := env.themes.CreateTheme(models.CreateEventThemeRequest{Name: "One-Off"}); err != nil {
		t.Fatalf("create custom theme: %v", err)
	}

	standard, err := env.themes.GetStandardThemes()
	if err != nil {
		t.Fatalf("get standard themes: %v", err)
	}
	if len(standard) != 1 || standard[0].Name != "House Style" {
		t.Fatalf("expected only the standard theme, got %+v", standard)
	}

	all, err := env.themes.GetAllThemes()
	if err != nil {
		t.Fatalf("get all themes: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(all))
	}
}
