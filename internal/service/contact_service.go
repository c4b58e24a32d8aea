package service

import (
	"errors"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"gorm.io/gorm"
)

type ContactService struct {
	contactRepo *repository.ContactPersonRepository
	eventRepo   *repository.EventRepository
}

func NewContactService(contactRepo *repository.ContactPersonRepository, eventRepo *repository.EventRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		eventRepo:   eventRepo,
	}
}

func (s *ContactService) CreateContact(userID uint, role string, req models.CreateContactPersonRequest) (*models.ContactPerson, error) {
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	contact := &models.ContactPerson{
		EventID:         req.EventID,
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		IsContactPerson: req.IsContactPerson,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *ContactService) GetContactsByEvent(eventID uint) ([]models.ContactPerson, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.contactRepo.GetByEventID(eventID)
}

func (s *ContactService) UpdateContact(id uint, userID uint, role string, req models.UpdateContactPersonRequest) (*models.ContactPerson, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	event, err := s.eventRepo.GetByID(contact.EventID)
	if err != nil {
		return nil, err
	}
	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		contact.PhoneNumber = req.PhoneNumber
	}
	if req.Email != nil {
		contact.Email = req.Email
	}
	if req.IsContactPerson != nil {
		contact.IsContactPerson = *req.IsContactPerson
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *ContactService) DeleteContact(id uint, userID uint, role string) error {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	event, err := s.eventRepo.GetByID(contact.EventID)
	if err != nil {
		return err
	}
	if !canManage(event, userID, role) {
		return ErrForbidden
	}

	return s.contactRepo.Delete(id)
}
