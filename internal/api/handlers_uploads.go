package api

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rsahoo0530/LifeSync-V2/internal/assets"
)

// UploadImage accepts a multipart image and returns the URL it is
// served under. Type and size are validated from the bytes, never from
// the client-supplied headers.
func (handler *Handler) UploadImage(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "no file uploaded")
	}
	if fileHeader.Size > assets.MaxUploadBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "image exceeds 5 MiB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		handler.logger.Printf("open upload: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "upload failed")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, assets.MaxUploadBytes+1))
	if err != nil {
		handler.logger.Printf("read upload: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "upload failed")
	}

	url, err := handler.uploads.Save(data)
	switch {
	case errors.Is(err, assets.ErrUploadTooLarge):
		return apiError(c, fiber.StatusRequestEntityTooLarge, "image exceeds 5 MiB")
	case errors.Is(err, assets.ErrUnsupportedImageType):
		return apiError(c, fiber.StatusBadRequest, "only JPEG and PNG images are accepted")
	case err != nil:
		handler.logger.Printf("save upload: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "upload failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
