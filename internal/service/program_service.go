package service

import (
	"errors"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"gorm.io/gorm"
)

type ProgramService struct {
	programRepo *repository.EventProgramRepository
	eventRepo   *repository.EventRepository
}

func NewProgramService(programRepo *repository.EventProgramRepository, eventRepo *repository.EventRepository) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		eventRepo:   eventRepo,
	}
}

func (s *ProgramService) CreateProgram(userID uint, role string, req models.CreateEventProgramRequest) (*models.EventProgram, error) {
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

	program := &models.EventProgram{
		EventID:    req.EventID,
		Topic:      req.Topic,
		Time:       req.Time,
		OrderIndex: req.OrderIndex,
	}

	if err := s.programRepo.Create(program); err != nil {
		return nil, err
	}

	return program, nil
}

func (s *ProgramService) GetProgramsByEvent(eventID uint) ([]models.EventProgram, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.programRepo.GetByEventID(eventID)
}

func (s *ProgramService) UpdateProgram(id uint, userID uint, role string, req models.UpdateEventProgramRequest) (*models.EventProgram, error) {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	event, err := s.eventRepo.GetByID(program.EventID)
	if err != nil {
		return nil, err
	}
	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	if req.Topic != nil {
		program.Topic = *req.Topic
	}
	if req.Time != nil {
		program.Time = *req.Time
	}
	if req.OrderIndex != nil {
		program.OrderIndex = *req.OrderIndex
	}

	if err := s.programRepo.Update(program); err != nil {
		return nil, err
	}

	return program, nil
}

func (s *ProgramService) DeleteProgram(id uint, userID uint, role string) error {
	program, err := s.programRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	event, err := s.eventRepo.GetByID(program.EventID)
	if err != nil {
		return err
	}
	if !canManage(event, userID, role) {
		return ErrForbidden
	}

	return s.programRepo.Delete(id)
}

// ReorderPrograms rewrites the display order to match the given id sequence
// and returns the programs in their new order.
func (s *ProgramService) ReorderPrograms(eventID uint, userID uint, role string, programIDs []uint) ([]models.EventProgram, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	if err := s.programRepo.Reorder(eventID, programIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.programRepo.GetByEventID(eventID)
}
