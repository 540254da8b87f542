package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/api/metrics"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

type RecordHandler struct {
	recordService ports.RecordService
}

func NewRecordHandler(recordService ports.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

type createRecordRequest struct {
	RecordType string `json:"record_type" validate:"required,max=64"`
	Content    string `json:"content" validate:"required"`
}

// Create stores an encrypted medical record (clinician/admin only).
//
// @Summary      Add a medical record
// @Tags         records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Patient ID"
// @Param        body  body      createRecordRequest  true  "Record"
// @Success      201   {object}  domain.MedicalRecord
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id}/records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.recordService.Add(c.Request().Context(), identity, patientID, req.RecordType, req.Content)
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(req.RecordType).Inc()

	return c.JSON(http.StatusCreated, record)
}

// ListForPatient returns a patient's records, decrypted, newest first.
//
// @Summary      List a patient's medical records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {array}   domain.MedicalRecord
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id}/records [get]
func (h *RecordHandler) ListForPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	records, err := h.recordService.ListForPatient(c.Request().Context(), identity, patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get returns a single decrypted record, access-controlled.
//
// @Summary      Get a medical record
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Record ID"
// @Success      200  {object}  domain.MedicalRecord
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/records/{id} [get]
func (h *RecordHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	recordID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.recordService.Get(c.Request().Context(), identity, recordID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}
