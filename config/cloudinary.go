package config

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary khởi tạo client Cloudinary từ CLOUDINARY_URL
func ConnectCloudinary(cfg Config) (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromURL(cfg.CloudinaryURL)
}
