package service

import (
	"errors"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"gorm.io/gorm"
)

type ThemeService struct {
	themeRepo *repository.EventThemeRepository
	eventRepo *repository.EventRepository
}

func NewThemeService(themeRepo *repository.EventThemeRepository, eventRepo *repository.EventRepository) *ThemeService {
	return &ThemeService{
		themeRepo: themeRepo,
		eventRepo: eventRepo,
	}
}

func (s *ThemeService) CreateTheme(req models.CreateEventThemeRequest) (*models.EventTheme, error) {
	theme := &models.EventTheme{
		Name:       req.Name,
		IsStandard: req.IsStandard,
		ImageURL:   req.ImageURL,
	}

	if err := s.themeRepo.Create(theme); err != nil {
		return nil, err
	}

	return theme, nil
}

func (s *ThemeService) GetAllThemes() ([]models.EventTheme, error) {
	return s.themeRepo.GetAll()
}

func (s *ThemeService) GetStandardThemes() ([]models.EventTheme, error) {
	return s.themeRepo.GetStandard()
}

func (s *ThemeService) UpdateTheme(id uint, req models.UpdateEventThemeRequest) (*models.EventTheme, error) {
	theme, err := s.themeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		theme.Name = *req.Name
	}
	if req.IsStandard != nil {
		theme.IsStandard = *req.IsStandard
	}
	if req.ImageURL != nil {
		theme.ImageURL = req.ImageURL
	}

	if err := s.themeRepo.Update(theme); err != nil {
		return nil, err
	}

	return theme, nil
}

// DeleteTheme refuses while any event still references the theme.
func (s *ThemeService) DeleteTheme(id uint) error {
	if _, err := s.themeRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	inUse, err := s.eventRepo.CountByThemeID(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrThemeInUse
	}

	return s.themeRepo.Delete(id)
}
