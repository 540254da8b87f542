package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/core/ports"
)

type PatientHandler struct {
	patientService ports.PatientService
}

func NewPatientHandler(patientService ports.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

type patientUpdateRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

// List returns all patient profiles (clinician/admin only).
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Patient
// @Failure      403  {object}  errorResponse
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	patients, err := h.patientService.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Get returns one patient profile, access-controlled.
//
// @Summary      Get patient profile
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {object}  domain.Patient
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	patient, err := h.patientService.Get(c.Request().Context(), identity, patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Update applies a partial profile update, access-controlled.
//
// @Summary      Update patient profile
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Patient ID"
// @Param        body  body      patientUpdateRequest  true  "Fields to update"
// @Success      200   {object}  domain.Patient
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req patientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patient, err := h.patientService.Update(c.Request().Context(), identity, patientID, ports.PatientUpdateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}
