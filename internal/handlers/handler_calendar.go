package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// calendarHandler handles HTTP requests related to calendars, events and
// reminders.
type calendarHandler struct {
	calendarSvc portssvc.CalendarSvcFacade
	eventSvc    portssvc.EventSvcFacade
	reminderSvc portssvc.ReminderSvcFacade
}

// newCalendarHandler creates a new calendarHandler.
func newCalendarHandler(calendarSvc portssvc.CalendarSvcFacade, eventSvc portssvc.EventSvcFacade, reminderSvc portssvc.ReminderSvcFacade) *calendarHandler {
	return &calendarHandler{
		calendarSvc: calendarSvc,
		eventSvc:    eventSvc,
		reminderSvc: reminderSvc,
	}
}

// registerCalendarRoutes registers routes related to calendars, events and reminders.
func registerCalendarRoutes(rg *gin.RouterGroup, calendarSvc portssvc.CalendarSvcFacade, eventSvc portssvc.EventSvcFacade, reminderSvc portssvc.ReminderSvcFacade) {
	h := newCalendarHandler(calendarSvc, eventSvc, reminderSvc)

	calendars := rg.Group("/calendars")
	{
		calendars.POST("", h.createCalendar)
		calendars.GET("", h.listCalendars)
		calendars.GET("/:id", h.getCalendar)
		calendars.DELETE("/:id", h.deleteCalendar)
	}

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.GET("/:id/reminders", h.listReminders)
	}

	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.createReminder)
		reminders.PUT("/:id", h.updateReminder)
		reminders.DELETE("/:id", h.deleteReminder)
	}
}

// createCalendar godoc
// @Summary Create a calendar
// @Description Creates a household or personal calendar. Personal calendars belong to the caller.
// @Tags calendars
// @Accept json
// @Produce json
// @Param calendar body dto.CreateCalendarRequest true "Calendar details"
// @Success 201 {object} dto.CalendarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Guests cannot create calendars"
// @Security BearerAuth
// @Router /calendars [post]
func (h *calendarHandler) createCalendar(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateCalendarRequest
	if !bindJSON(c, &req) {
		return
	}

	calendar, err := h.calendarSvc.CreateCalendar(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create calendar")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCalendarResponse(calendar))
}

// listCalendars godoc
// @Summary List calendars
// @Description Lists the calendars the caller may read: all household calendars plus their own personal ones.
// @Tags calendars
// @Produce json
// @Success 200 {object} dto.ListCalendarsResponse
// @Security BearerAuth
// @Router /calendars [get]
func (h *calendarHandler) listCalendars(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	calendars, err := h.calendarSvc.ListCalendars(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to list calendars")
		return
	}

	res := make([]dto.CalendarResponse, len(calendars))
	for i := range calendars {
		res[i] = dto.ToCalendarResponse(&calendars[i])
	}
	c.JSON(http.StatusOK, dto.ListCalendarsResponse{Calendars: res})
}

// getCalendar godoc
// @Summary Get a calendar
// @Tags calendars
// @Produce json
// @Param id path string true "Calendar ID"
// @Success 200 {object} dto.CalendarResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendars/{id} [get]
func (h *calendarHandler) getCalendar(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	calendar, err := h.calendarSvc.GetCalendarByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToCalendarResponse(calendar))
}

// deleteCalendar godoc
// @Summary Delete a calendar
// @Description Deletes a calendar and all its events. The default household calendar cannot be deleted.
// @Tags calendars
// @Param id path string true "Calendar ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Cannot delete the default household calendar"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendars/{id} [delete]
func (h *calendarHandler) deleteCalendar(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.calendarSvc.DeleteCalendar(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete calendar")
		return
	}
	c.Status(http.StatusNoContent)
}

// createEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Calendar not found"
// @Security BearerAuth
// @Router /events [post]
func (h *calendarHandler) createEvent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventSvc.CreateEvent(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Description Lists events in a window across the caller's readable calendars.
// @Tags events
// @Produce json
// @Param calendar_id query string false "Restrict to one calendar"
// @Param from query string false "Window start (RFC 3339)"
// @Param to query string false "Window end (RFC 3339)"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *calendarHandler) listEvents(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.ListEventsParams
	if !bindQuery(c, &params) {
		return
	}

	events, err := h.eventSvc.ListEvents(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

// getEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *calendarHandler) getEvent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.GetEventByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *calendarHandler) updateEvent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventSvc.UpdateEvent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event and its reminders.
// @Tags events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *calendarHandler) deleteEvent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.eventSvc.DeleteEvent(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// listReminders godoc
// @Summary List reminders for an event
// @Tags reminders
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ListRemindersResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/reminders [get]
func (h *calendarHandler) listReminders(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	reminders, err := h.reminderSvc.ListRemindersByEvent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list reminders")
		return
	}

	res := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		res[i] = dto.ToReminderResponse(&reminders[i])
	}
	c.JSON(http.StatusOK, dto.ListRemindersResponse{Reminders: res})
}

// createReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body dto.CreateReminderRequest true "Reminder details"
// @Success 201 {object} dto.ReminderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /reminders [post]
func (h *calendarHandler) createReminder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateReminderRequest
	if !bindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderSvc.CreateReminder(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create reminder")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReminderResponse(reminder))
}

// updateReminder godoc
// @Summary Update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param reminder body dto.UpdateReminderRequest true "Fields to change"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reminders/{id} [put]
func (h *calendarHandler) updateReminder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateReminderRequest
	if !bindJSON(c, &req) {
		return
	}

	reminder, err := h.reminderSvc.UpdateReminder(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update reminder")
		return
	}
	c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// deleteReminder godoc
// @Summary Delete a reminder
// @Tags reminders
// @Param id path string true "Reminder ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reminders/{id} [delete]
func (h *calendarHandler) deleteReminder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.reminderSvc.DeleteReminder(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete reminder")
		return
	}
	c.Status(http.StatusNoContent)
}
