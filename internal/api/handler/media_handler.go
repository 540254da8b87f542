package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/api/metrics"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

// maxUploadSize caps attachment uploads at 32 MiB.
const maxUploadSize = 32 << 20

type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload stores an encrypted attachment for a patient. Multipart form with a
// "file" part; file_type defaults to "lab_report".
//
// @Summary      Upload a media file
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      int     true   "Patient ID"
// @Param        file       formData  file    true   "File to upload"
// @Param        file_type  query     string  false  "File type"
// @Success      201        {object}  domain.MediaFile
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /patients/{id}/media [post]
func (h *MediaHandler) Upload(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}

	fileType := c.QueryParam("file_type")
	if fileType == "" {
		fileType = "lab_report"
	}

	media, err := h.mediaService.Upload(c.Request().Context(), identity, patientID, fileHeader.Filename, fileType, content)
	if err != nil {
		return err
	}
	metrics.MediaUploadBytes.Observe(float64(media.FileSize))

	return c.JSON(http.StatusCreated, media)
}

// ListForPatient returns a patient's attachments (metadata only).
//
// @Summary      List a patient's media files
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {array}   domain.MediaFile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id}/media [get]
func (h *MediaHandler) ListForPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	files, err := h.mediaService.ListForPatient(c.Request().Context(), identity, patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

// Download streams a decrypted attachment, access-controlled.
//
// @Summary      Download a media file
// @Tags         media
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id  path  int  true  "Media ID"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/media/{id} [get]
func (h *MediaHandler) Download(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	mediaID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	media, content, err := h.mediaService.Download(c.Request().Context(), identity, mediaID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, media.OriginalFilename))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, content)
}
