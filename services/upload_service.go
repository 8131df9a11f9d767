package services

import (
	"context"
	"io"
	"mime/multipart"

	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const listingImagesFolder = "stayrooted/listings"

// ImageUploader đẩy ảnh lên kho lưu trữ và trả về URL công khai
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

type UploadService struct {
	uploader ImageUploader
	logger   logger.Logger
}

// NewUploadService nhận uploader nil khi chưa cấu hình CLOUDINARY_URL
func NewUploadService(up ImageUploader, log logger.Logger) *UploadService {
	return &UploadService{uploader: up, logger: log}
}

// UploadImages tải ảnh listing của host lên Cloudinary
func (s *UploadService) UploadImages(ctx context.Context, host *models.User, files []*multipart.FileHeader) (*dto.UploadResponse, error) {
	if err := hostOnly(host); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrCodeUnavailable, constants.MsgUploadNotConfigured, errors.ErrNotConfigured)
	}
	if len(files) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "No file provided", errors.ErrMissingRequired)
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.uploadOne(ctx, file)
		if err != nil {
			s.logger.Error("upload %s for host %s failed: %v", file.Filename, host.ID, err)
			return nil, errors.NewAppError(errors.ErrCodeUnavailable, "Upload failed", err)
		}
		urls = append(urls, url)
	}
	return &dto.UploadResponse{URLs: urls}, nil
}

func (s *UploadService) uploadOne(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.uploader.Upload(ctx, src, listingImagesFolder)
}
