package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nutriscan/internal/jsonlog"
	"nutriscan/internal/service"
)

// Upload godoc
// @Summary Upload a food image
// @Description The food is inferred from the file name (apple_1.jpg is "apple"). Accepts png, jpg, jpeg and gif up to 16 MiB.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} model.UploadResult
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /upload [post]
func Upload(svc service.UploadService, log *jsonlog.Logger) fiber.Handler {
	if log == nil {
		log = jsonlog.Nop()
	}
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			// Browsers send an empty filename when nothing was picked; multipart parsing
			// then files the part under values instead of files.
			if form, ferr := c.MultipartForm(); ferr == nil {
				if _, ok := form.Value["file"]; ok {
					return writeError(c, fiber.StatusBadRequest, "FILE_NOT_SELECTED", "no file selected")
				}
			}
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "no file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			log.Error("upload_open_failed", err, jsonlog.Fields{"request_id": requestIDFromCtx(c)})
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "server error")
		}
		defer f.Close()

		res, err := svc.Upload(c.UserContext(), f, fh.Filename, fh.Size)
		switch {
		case err == nil:
			return c.JSON(res)
		case errors.Is(err, service.ErrFilenameRequired):
			return writeError(c, fiber.StatusBadRequest, "FILE_NOT_SELECTED", "no file selected")
		case errors.Is(err, service.ErrInvalidFileType):
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", "invalid file type")
		case errors.Is(err, service.ErrInvalidFilename):
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "invalid file name")
		default:
			log.Error("upload_failed", err, jsonlog.Fields{
				"request_id": requestIDFromCtx(c),
				"filename":   fh.Filename,
			})
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "server error")
		}
	}
}
