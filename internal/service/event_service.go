package service

import (
	"errors"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"github.com/festpix/festpix-backend/pkg/qrcode"
	"github.com/festpix/festpix-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const qrTokenLength = 16

type EventService struct {
	eventRepo *repository.EventRepository
	userRepo  *repository.UserRepository
	qrService *qrcode.QRService
	logger    *zap.Logger
}

func NewEventService(eventRepo *repository.EventRepository, userRepo *repository.UserRepository, qrService *qrcode.QRService, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		qrService: qrService,
		logger:    logger,
	}
}

// canManage: organizers manage their own events, administrators manage all.
func canManage(event *models.Event, userID uint, role string) bool {
	return event.OrganizerID == userID || role == models.RoleAdministrator
}

func (s *EventService) CreateEvent(organizerID uint, req models.CreateEventRequest) (*models.Event, error) {
	token, err := s.newQRToken()
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		OrganizerID:         organizerID,
		Name:                req.Name,
		Topic:               req.Topic,
		TextColor:           req.TextColor,
		ThemeID:             req.ThemeID,
		CustomThemeImageURL: req.CustomThemeImageURL,
		EventDate:           req.EventDate,
		EventTime:           req.EventTime,
		Address:             req.Address,
		Postcode:            req.Postcode,
		City:                req.City,
		ThankYouMessage:     req.ThankYouMessage,
		QRCodeToken:         token,
		IsActive:            true,
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.Uint("event_id", created.ID),
		zap.Uint("organizer_id", organizerID))
	return created, nil
}

// newQRToken retries until the generated token is unused. Tokens are never
// reused: deleted events keep their token out of circulation only by chance
// of the 16-char space, which is large enough in practice.
func (s *EventService) newQRToken() (string, error) {
	for {
		token := utils.GenerateRandomString(qrTokenLength)
		exists, err := s.eventRepo.TokenExists(token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEventsByOrganizer(organizerID uint) ([]models.Event, error) {
	return s.eventRepo.GetByOrganizer(organizerID)
}

func (s *EventService) GetAllEvents() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

// GetEventByToken is the guest entry point; a stale link yields ErrNotFound,
// never a hard failure.
func (s *EventService) GetEventByToken(token string) (*models.Event, error) {
	event, err := s.eventRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) UpdateEvent(id uint, userID uint, role string, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Topic != nil {
		event.Topic = req.Topic
	}
	if req.TextColor != nil {
		event.TextColor = req.TextColor
	}
	if req.ThemeID != nil {
		if *req.ThemeID == 0 {
			event.ThemeID = nil
		} else {
			event.ThemeID = req.ThemeID
		}
	}
	if req.CustomThemeImageURL != nil {
		event.CustomThemeImageURL = req.CustomThemeImageURL
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.EventTime != nil {
		event.EventTime = req.EventTime
	}
	if req.Address != nil {
		event.Address = req.Address
	}
	if req.Postcode != nil {
		event.Postcode = req.Postcode
	}
	if req.City != nil {
		event.City = req.City
	}
	if req.ThankYouMessage != nil {
		event.ThankYouMessage = req.ThankYouMessage
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) DeleteEvent(id uint, userID uint, role string) error {
	event, err := s.GetEvent(id)
	if err != nil {
		return err
	}

	if !canManage(event, userID, role) {
		return ErrForbidden
	}

	s.logger.Info("deleting event with cascade",
		zap.Uint("event_id", id),
		zap.Uint("organizer_id", event.OrganizerID))
	return s.eventRepo.DeleteCascade(id)
}

// EventQRCode renders the guest link for an event as a PNG.
func (s *EventService) EventQRCode(id uint, userID uint, role string, size int) ([]byte, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	return s.qrService.GenerateQRCode(event.QRCodeToken, size)
}
