package application

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	repo "github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
)

// MaxAvatarBytes is the upload size limit (2 MiB).
const MaxAvatarBytes = 2 << 20

// UploadService validates avatar uploads and binds the accepted asset
// to the user record. The record mutation goes through the same
// exclusive section as every other user mutation, so the avatar binding
// cannot race a concurrent profile change.
type UploadService struct {
	Users      repo.UserRepository
	UploadsDir string
	Logger     *logrus.Logger
}

func NewUploadService(users repo.UserRepository, uploadsDir string, logger *logrus.Logger) *UploadService {
	return &UploadService{Users: users, UploadsDir: uploadsDir, Logger: logger}
}

// BindAvatar validates the stream (at most 2 MiB, sniffed image/*), stores it
// under a collision-resistant name and sets the user's avatar
// reference. Returns the public URL path of the stored asset.
//
// The size check on declaredSize runs before any bytes are read, so an
// oversized upload is rejected without being stored.
func (s *UploadService) BindAvatar(userID int64, r io.Reader, declaredSize int64) (string, error) {
	if declaredSize > MaxAvatarBytes {
		return "", apperrors.NewValidation("avatar", "file exceeds the 2 MB limit")
	}

	// The declared size is client-controlled; re-check while reading.
	data, err := io.ReadAll(io.LimitReader(r, MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxAvatarBytes {
		return "", apperrors.NewValidation("avatar", "file exceeds the 2 MB limit")
	}
	if len(data) == 0 {
		return "", apperrors.NewValidation("avatar", "file is empty")
	}

	// Decide the content type from the bytes, not the declared header.
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", apperrors.NewValidation("avatar", "file must be an image")
	}

	dir := filepath.Join(s.UploadsDir, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	name := fmt.Sprintf("%d-%s%s", userID, uuid.NewString(), mt.Extension())
	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("store avatar: %w", err)
	}

	url := "/uploads/avatars/" + name
	if _, err := s.Users.Mutate(userID, func(u *entity.User) error {
		u.AvatarURL = url
		return nil
	}); err != nil {
		// Keep the invariant: a stored asset is referenced or gone.
		_ = os.Remove(fullPath)
		return "", err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "asset": name, "mime": mt.String()}).Info("avatar bound")
	}
	return url, nil
}
