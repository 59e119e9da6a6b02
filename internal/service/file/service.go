package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Avatar uploads
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// Attendance evidence uploads
	UploadAttendanceProof(ctx context.Context, employeeID string, date string, file io.Reader, filename string, clockType string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png"}

func imageContentType(filename string) (ext, contentType string, err error) {
	ext = strings.ToLower(filepath.Ext(filename))

	isValid := false
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType = "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}
	return ext, contentType, nil
}

// UploadAvatar uploads an employee avatar
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext, contentType, err := imageContentType(filename)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s-%s%s", employeeID, uuid.New().String(), ext)
	path := filepath.Join("avatars", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return uploadedPath, nil
}

// UploadAttendanceProof uploads a check-in or check-out evidence photo.
// clockType is "check_in" or "check_out".
func (s *fileServiceImpl) UploadAttendanceProof(ctx context.Context, employeeID string, date string, file io.Reader, filename string, clockType string) (string, error) {
	ext, contentType, err := imageContentType(filename)
	if err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%s-%s-%s%s", date, clockType, uuid.New().String(), ext)
	path := filepath.Join("attendance", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile removes a stored file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFileURL resolves the public URL of a stored file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to get file URL: %w", err)
	}
	return url, nil
}
