package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/pkg/calendar"
	"Recipe-Book-Backend/pkg/export"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CalendarHandler interface {
		GetWeek(c *fiber.Ctx) error
		ScheduleRecipe(c *fiber.Ctx) error
		ClearDay(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		ExportMenu(c *fiber.Ctx) error
		ExportShoppingList(c *fiber.Ctx) error
	}

	calendarHandler struct {
		calendarService calendar.CalendarService
		validator       *validator.Validate
	}
)

func NewCalendarHandler(calendarService calendar.CalendarService, validator *validator.Validate) CalendarHandler {
	return &calendarHandler{
		calendarService: calendarService,
		validator:       validator,
	}
}

func (h *calendarHandler) GetWeek(c *fiber.Ctx) error {
	day := c.Query("day", time.Now().Format("2006-01-02"))

	res, err := h.calendarService.GetWeek(c.Context(), day)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeek, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeek)
}

func (h *calendarHandler) ScheduleRecipe(c *fiber.Ctx) error {
	req := new(domain.ScheduleRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.calendarService.ScheduleRecipe(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedScheduleRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessScheduleRecipe)
}

func (h *calendarHandler) ClearDay(c *fiber.Ctx) error {
	if err := h.calendarService.ClearDay(c.Context(), c.Params("day")); err != nil {
		if errors.Is(err, domain.ErrCalendarEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedClearDay, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearDay, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearDay)
}

func (h *calendarHandler) GetShoppingList(c *fiber.Ctx) error {
	start := c.Query("start", "")
	end := c.Query("end", "")

	res, err := h.calendarService.GetShoppingList(c.Context(), start, end)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *calendarHandler) ExportMenu(c *fiber.Ctx) error {
	day := c.Query("day", time.Now().Format("2006-01-02"))

	doc, err := h.calendarService.ExportMenu(c.Context(), day)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportMenu, err)
	}
	return sendDocument(c, doc)
}

func (h *calendarHandler) ExportShoppingList(c *fiber.Ctx) error {
	start := c.Query("start", "")
	end := c.Query("end", "")

	doc, err := h.calendarService.ExportShoppingList(c.Context(), start, end)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportShoppingList, err)
	}
	return sendDocument(c, doc)
}

func sendDocument(c *fiber.Ctx, doc export.Document) error {
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Content)
}
