package service

import (
	"errors"
	"testing"
	"time"

	"github.com/festpix/festpix-backend/internal/models"
)

func TestUpdateUserPartialFields(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "anna", 10)

	updated, err := env.users.UpdateUser(user.ID, models.UpdateUserRequest{
		UploadRateLimit: intPtr(25),
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}

	if updated.UploadRateLimit != 25 {
		t.Fatalf("expected rate limit 25, got %d", updated.UploadRateLimit)
	}
	if updated.Username != "anna" || updated.Email != "anna@example.com" {
		t.Fatalf("unspecified fields must stay unchanged: %+v", updated)
	}
	if !updated.IsActive {
		t.Fatalf("is_active must stay unchanged")
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createOrganizer(t, "anna", 10)
	other := env.createOrganizer(t, "bora", 10)

	_, err := env.users.UpdateUser(other.ID, models.UpdateUserRequest{
		Email: strPtr("anna@example.com"),
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.createOrganizer(t, "anna", 10)
	other := env.createOrganizer(t, "bora", 10)

	_, err := env.users.UpdateUser(other.ID, models.UpdateUserRequest{
		Username: strPtr("anna"),
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Re-submitting the current username is not a conflict.
	if _, err := env.users.UpdateUser(other.ID, models.UpdateUserRequest{
		Username: strPtr("bora"),
	}); err != nil {
		t.Fatalf("same-name update: %v", err)
	}
}

func TestDeleteUserCascadesThroughEvents(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "cleo", 10)
	survivor := env.createOrganizer(t, "dana", 10)

	event := env.createEvent(t, user.ID, "Doomed Event")
	otherEvent := env.createEvent(t, survivor.ID, "Surviving Event")

	if _, err := env.programs.CreateProgram(user.ID, user.Role, models.CreateEventProgramRequest{
		EventID: event.ID, Topic: "Dinner", Time: "19:00", OrderIndex: 0,
	}); err != nil {
		t.Fatalf("create program: %v", err)
	}
	if _, err := env.contacts.CreateContact(user.ID, user.Role, models.CreateContactPersonRequest{
		EventID: event.ID, Name: "Nils",
	}); err != nil {
		t.Fatalf("create contact: %v", err)
	}
	env.createUploadAt(t, event.ID, "5.5.5.5", time.Now())
	env.createUploadAt(t, otherEvent.ID, "5.5.5.5", time.Now())

	if err := env.users.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := env.users.GetUserByID(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := env.events.GetEvent(event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected event gone, got %v", err)
	}

	var programs, contacts, uploads int64
	env.db.Model(&models.EventProgram{}).Where("event_id = ?", event.ID).Count(&programs)
	env.db.Model(&models.ContactPerson{}).Where("event_id = ?", event.ID).Count(&contacts)
	env.db.Model(&models.GuestUpload{}).Where("event_id = ?", event.ID).Count(&uploads)
	if programs != 0 || contacts != 0 || uploads != 0 {
		t.Fatalf("expected former children gone, got %d/%d/%d", programs, contacts, uploads)
	}

	// Other organizer's data is untouched.
	if _, err := env.events.GetEvent(otherEvent.ID); err != nil {
		t.Fatalf("surviving event must remain: %v", err)
	}
	var survivorUploads int64
	env.db.Model(&models.GuestUpload{}).Where("event_id = ?", otherEvent.ID).Count(&survivorUploads)
	if survivorUploads != 1 {
		t.Fatalf("expected surviving upload, got %d", survivorUploads)
	}
}

func TestDeactivateUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "eva", 10)

	deactivated, err := env.users.DeactivateUser(user.ID)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if deactivated.IsActive {
		t.Fatalf("expected is_active false")
	}

	if _, err := env.users.DeactivateUser(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
