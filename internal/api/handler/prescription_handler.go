package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/core/ports"
)

type PrescriptionHandler struct {
	prescriptionService ports.PrescriptionService
}

func NewPrescriptionHandler(prescriptionService ports.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

type issuePrescriptionRequest struct {
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Notes          string `json:"notes"`
}

// Issue creates a prescription for a patient (clinician/admin only).
//
// @Summary      Issue a prescription
// @Tags         prescriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Patient ID"
// @Param        body  body      issuePrescriptionRequest  true  "Prescription"
// @Success      201   {object}  domain.Prescription
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id}/prescriptions [post]
func (h *PrescriptionHandler) Issue(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req issuePrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prescription, err := h.prescriptionService.Issue(c.Request().Context(), identity, patientID, ports.PrescriptionInput{
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, prescription)
}

// ListForPatient returns a patient's prescriptions, access-controlled.
//
// @Summary      List a patient's prescriptions
// @Tags         prescriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {array}   domain.Prescription
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id}/prescriptions [get]
func (h *PrescriptionHandler) ListForPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	prescriptions, err := h.prescriptionService.ListForPatient(c.Request().Context(), identity, patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prescriptions)
}

// Get returns a single prescription, access-controlled.
//
// @Summary      Get a prescription
// @Tags         prescriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Prescription ID"
// @Success      200  {object}  domain.Prescription
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/prescriptions/{id} [get]
func (h *PrescriptionHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	prescriptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	prescription, err := h.prescriptionService.Get(c.Request().Context(), identity, prescriptionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prescription)
}
