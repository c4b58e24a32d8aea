package service

import (
	"errors"
	"testing"

	"github.com/festpix/festpix-backend/internal/models"
)

func TestGetContactsDesignatedFirstThenName(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "rita", 10)
	event := env.createEvent(t, user.ID, "Gala")

	add := func(name string, designated bool) {
		t.Helper()
		_, err := env.contacts.CreateContact(user.ID, user.Role, models.CreateContactPersonRequest{
			EventID:         event.ID,
			Name:            name,
			IsContactPerson: designated,
		})
		if err != nil {
			t.Fatalf("create contact %s: %v", name, err)
		}
	}
	add("Zoe", false)
	add("Mark", true)
	add("Anna", false)
	add("Ben", true)

	contacts, err := env.contacts.GetContactsByEvent(event.ID)
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}

	got := make([]string, 0, len(contacts))
	for _, c := range contacts {
		got = append(got, c.Name)
	}
	want := []string{"Ben", "Mark", "Anna", "Zoe"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestUpdateContactPartial(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "sven", 10)
	event := env.createEvent(t, user.ID, "Reunion")

	contact, err := env.contacts.CreateContact(user.ID, user.Role, models.CreateContactPersonRequest{
		EventID:     event.ID,
		Name:        "Tara",
		PhoneNumber: strPtr("+37060000000"),
	})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}

	updated, err := env.contacts.UpdateContact(contact.ID, user.ID, user.Role, models.UpdateContactPersonRequest{
		Email: strPtr("tara@example.com"),
	})
	if err != nil {
		t.Fatalf("update contact: %v", err)
	}

	if updated.Name != "Tara" {
		t.Fatalf("name must stay unchanged, got %q", updated.Name)
	}
	if updated.PhoneNumber == nil || *updated.PhoneNumber != "+37060000000" {
		t.Fatalf("phone must stay unchanged, got %v", updated.PhoneNumber)
	}
	if updated.Email == nil || *updated.Email != "tara@example.com" {
		t.Fatalf("email not applied, got %v", updated.Email)
	}
}

func TestContactOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createOrganizer(t, "uma", 10)
	stranger := env.createOrganizer(t, "vito", 10)
	event := env.createEvent(t, owner.ID, "Brunch")

	contact, err := env.contacts.CreateContact(owner.ID, owner.Role, models.CreateContactPersonRequest{
		EventID: event.ID,
		Name:    "Wes",
	})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}

	_, err = env.contacts.CreateContact(stranger.ID, stranger.Role, models.CreateContactPersonRequest{
		EventID: event.ID,
		Name:    "Intruder",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := env.contacts.DeleteContact(contact.ID, stranger.ID, stranger.Role); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestContactUnknownEvent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createOrganizer(t, "willa", 10)

	_, err := env.contacts.CreateContact(user.ID, user.Role, models.CreateContactPersonRequest{
		EventID: 9999,
		Name:    "Ghost",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := env.contacts.GetContactsByEvent(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
