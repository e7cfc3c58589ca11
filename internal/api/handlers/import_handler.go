package handlers

import (
	"Recipe-Book-Backend/domain"
	"Recipe-Book-Backend/internal/api/presenters"
	"Recipe-Book-Backend/pkg/importer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImportHandler interface {
		ImportArchive(c *fiber.Ctx) error
	}

	importHandler struct {
		importerService importer.ImporterService
		validator       *validator.Validate
	}
)

func NewImportHandler(importerService importer.ImporterService, validator *validator.Validate) ImportHandler {
	return &importHandler{
		importerService: importerService,
		validator:       validator,
	}
}

func (h *importHandler) ImportArchive(c *fiber.Ctx) error {
	req := new(domain.ImportArchiveRequest)

	file, err := c.FormFile("archive")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Archive = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	opened, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportArchive, err)
	}
	defer opened.Close()

	res, err := h.importerService.ImportArchive(c.Context(), opened)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportArchive, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportArchive)
}
