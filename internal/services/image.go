package services

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/borantia/backend/internal/config"
	"github.com/borantia/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxImageSize caps uploads at 2 MiB.
const maxImageSize = 2 << 20

var ErrInvalidImage = errors.New("file must be an image up to 2MB")

// ImageService stores uploaded images on disk under generated names and
// records them in the images table.
type ImageService struct {
	db      *gorm.DB
	dir     string
	baseURL string
}

func NewImageService(db *gorm.DB, cfg *config.StorageConfig) *ImageService {
	return &ImageService{
		db:      db,
		dir:     cfg.ImageDir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

type StoredImage struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// Store saves the uploaded file and creates its database row. The original
// filename only contributes its extension; the stored name is a UUID so
// uploads cannot collide or traverse paths.
func (s *ImageService) Store(fh *multipart.FileHeader) (*StoredImage, error) {
	if fh.Size > maxImageSize {
		return nil, ErrInvalidImage
	}
	mimeType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrInvalidImage
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst := filepath.Join(s.dir, name)

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return nil, err
	}

	image := models.Image{
		FilePath: "images/" + name,
		MimeType: mimeType,
	}
	if err := s.db.Create(&image).Error; err != nil {
		os.Remove(dst)
		return nil, err
	}

	return &StoredImage{
		ID:  image.ID,
		URL: s.baseURL + "/storage/" + image.FilePath,
	}, nil
}
