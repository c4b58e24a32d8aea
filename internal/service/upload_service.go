package service

import (
	"errors"
	"strings"
	"time"

	"github.com/festpix/festpix-backend/internal/models"
	"github.com/festpix/festpix-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sliding window for the per-IP admission check
const rateLimitWindow = time.Hour

// Presigned download links stay valid this long
const downloadLinkExpiry = 15 * time.Minute

// ObjectStorage is what the upload flow needs from the bucket.
type ObjectStorage interface {
	Delete(key string) error
	PresignGet(key string, expiry time.Duration) (string, error)
	PublicURL() string
}

type UploadService struct {
	uploadRepo *repository.GuestUploadRepository
	eventRepo  *repository.EventRepository
	userRepo   *repository.UserRepository
	storage    ObjectStorage
	logger     *zap.Logger
}

func NewUploadService(
	uploadRepo *repository.GuestUploadRepository,
	eventRepo *repository.EventRepository,
	userRepo *repository.UserRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *UploadService {
	return &UploadService{
		uploadRepo: uploadRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		storage:    storage,
		logger:     logger,
	}
}

// CheckRateLimit decides whether another upload from uploadIP is admitted for
// the event, based on the organizer's hourly limit. Pure read: the caller
// records the upload separately, so two concurrent submissions can both pass
// the check. The limit is advisory, not a hard quota.
func (s *UploadService) CheckRateLimit(eventID uint, uploadIP string) (*models.RateLimitResult, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	organizer, err := s.userRepo.GetByID(event.OrganizerID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-rateLimitWindow)
	count, err := s.uploadRepo.CountRecentByEventAndIP(eventID, uploadIP, since)
	if err != nil {
		return nil, err
	}

	limit := organizer.UploadRateLimit
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &models.RateLimitResult{
		Allowed:   int(count) < limit,
		Remaining: remaining,
	}, nil
}

// CreateGuestUpload records one accepted file's metadata. The binary itself
// is already stored; is_favorited always starts false.
func (s *UploadService) CreateGuestUpload(req models.GuestUploadRequest) (*models.GuestUpload, error) {
	if _, err := s.eventRepo.GetByID(req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	upload := &models.GuestUpload{
		EventID:     req.EventID,
		GuestName:   req.GuestName,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		MimeType:    req.MimeType,
		IsFavorited: false,
		UploadIP:    req.UploadIP,
	}

	if err := s.uploadRepo.Create(upload); err != nil {
		return nil, err
	}

	return upload, nil
}

func (s *UploadService) GetUploadsByEvent(eventID uint, userID uint, role string) ([]models.GuestUpload, error) {
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

	return s.uploadRepo.GetByEventID(eventID)
}

func (s *UploadService) GetAllUploads() ([]models.GuestUpload, error) {
	return s.uploadRepo.GetAll()
}

func (s *UploadService) UpdateUpload(id uint, userID uint, role string, req models.UpdateGuestUploadRequest) (*models.GuestUpload, error) {
	upload, err := s.uploadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	event, err := s.eventRepo.GetByID(upload.EventID)
	if err != nil {
		return nil, err
	}
	if !canManage(event, userID, role) {
		return nil, ErrForbidden
	}

	if req.IsFavorited != nil {
		upload.IsFavorited = *req.IsFavorited
	}

	if err := s.uploadRepo.Update(upload); err != nil {
		return nil, err
	}

	return upload, nil
}

// DeleteUpload removes the row and, when the file lives in our bucket, the
// stored object as well. Storage failures are logged, not fatal: the record
// is already gone and the orphaned object is harmless.
func (s *UploadService) DeleteUpload(id uint, userID uint, role string) error {
	upload, err := s.uploadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	event, err := s.eventRepo.GetByID(upload.EventID)
	if err != nil {
		return err
	}
	if !canManage(event, userID, role) {
		return ErrForbidden
	}

	if err := s.uploadRepo.Delete(id); err != nil {
		return err
	}

	if key, ok := s.objectKey(upload.FileURL); ok {
		if err := s.storage.Delete(key); err != nil {
			s.logger.Warn("stored object not deleted",
				zap.Uint("upload_id", id),
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return nil
}

// Download returns where to fetch the file from. Objects in our bucket get a
// short-lived presigned link; anything else is served by its stored URL.
func (s *UploadService) Download(id uint) (*models.DownloadResponse, error) {
	upload, err := s.uploadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fileURL := upload.FileURL
	if key, ok := s.objectKey(upload.FileURL); ok {
		presigned, err := s.storage.PresignGet(key, downloadLinkExpiry)
		if err != nil {
			return nil, err
		}
		fileURL = presigned
	}

	return &models.DownloadResponse{
		FileURL:  fileURL,
		FileName: upload.FileName,
	}, nil
}

// objectKey extracts the bucket key from URLs under our public prefix.
func (s *UploadService) objectKey(fileURL string) (string, bool) {
	prefix := strings.TrimSuffix(s.storage.PublicURL(), "/") + "/"
	if prefix == "/" || !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(fileURL, prefix), true
}
