package handlers

import (
	"io"
	"net/http"

	"paper-catalog/helper"
	"paper-catalog/models"
	"paper-catalog/services"
	"paper-catalog/validators"

	"github.com/gin-gonic/gin"
)

type PaperHandler struct {
	paperService services.PaperService
	helper       *helper.HTTPHelper
}

func NewPaperHandler(paperService services.PaperService) *PaperHandler {
	return &PaperHandler{
		paperService: paperService,
		helper:       helper.NewHTTPHelper(),
	}
}

func (h *PaperHandler) CreatePaper(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	input, messages := validators.ValidatePaperPayload(body)
	if len(messages) > 0 {
		h.helper.SendValidationMessages(c, messages)
		return
	}

	paper, err := h.paperService.CreatePaper(*input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, paper.ToResponse())
}

func (h *PaperHandler) GetPapers(c *gin.Context) {
	params, err := validators.ParsePaperListParams(c.Request.URL.Query())
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	papers, total, err := h.paperService.GetPapers(*params)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaperListResponse{
		Papers: models.PapersToResponse(papers),
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

func (h *PaperHandler) GetPaper(c *gin.Context) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	paper, err := h.paperService.GetPaper(id)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, paper.ToResponse())
}

func (h *PaperHandler) UpdatePaper(c *gin.Context) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	input, messages := validators.ValidatePaperPayload(body)
	if len(messages) > 0 {
		h.helper.SendValidationMessages(c, messages)
		return
	}

	paper, err := h.paperService.UpdatePaper(id, *input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, paper.ToResponse())
}

func (h *PaperHandler) DeletePaper(c *gin.Context) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	if err := h.paperService.DeletePaper(id); err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
