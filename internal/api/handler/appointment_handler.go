package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/api/metrics"
	"github.com/medcore/healthcare-api/internal/core/domain"
	"github.com/medcore/healthcare-api/internal/core/ports"
)

type AppointmentHandler struct {
	appointmentService ports.AppointmentService
}

func NewAppointmentHandler(appointmentService ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

type scheduleAppointmentRequest struct {
	ClinicianID uint      `json:"clinician_id" validate:"required"`
	Date        time.Time `json:"appointment_date" validate:"required"`
	Reason      string    `json:"reason" validate:"required"`
	Notes       string    `json:"notes"`
}

type updateAppointmentRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed cancelled completed"`
	Notes  string `json:"notes"`
}

// Schedule books an appointment for a patient.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                         true  "Patient ID"
// @Param        body  body      scheduleAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id}/appointments [post]
func (h *AppointmentHandler) Schedule(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req scheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.appointmentService.Schedule(c.Request().Context(), identity, patientID, ports.ScheduleAppointmentInput{
		ClinicianID: req.ClinicianID,
		Date:        req.Date,
		Reason:      req.Reason,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.AppointmentsScheduledTotal.Inc()

	return c.JSON(http.StatusCreated, appointment)
}

// ListMine lists the appointments visible to the caller, optionally
// filtered by status.
//
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   domain.Appointment
// @Failure      400     {object}  errorResponse
// @Router       /patients/appointments [get]
func (h *AppointmentHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appointments, err := h.appointmentService.ListForActor(c.Request().Context(), identity, c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// ListForPatient lists one patient's appointments, access-controlled.
//
// @Summary      List a patient's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {array}   domain.Appointment
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id}/appointments [get]
func (h *AppointmentHandler) ListForPatient(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	patientID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	appointments, err := h.appointmentService.ListForPatient(c.Request().Context(), identity, patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// UpdateStatus moves an appointment to a new status (clinician/admin only).
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Appointment ID"
// @Param        body  body      updateAppointmentRequest  true  "New status"
// @Success      200   {object}  domain.Appointment
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /patients/appointments/{id} [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	appointmentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		return err
	}

	appointment, err := h.appointmentService.UpdateStatus(c.Request().Context(), identity, appointmentID, status, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}
