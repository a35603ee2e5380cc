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

type AuthorHandler struct {
	authorService services.AuthorService
	helper        *helper.HTTPHelper
}

func NewAuthorHandler(authorService services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
		helper:        helper.NewHTTPHelper(),
	}
}

func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	input, messages := validators.ValidateAuthorPayload(body)
	if len(messages) > 0 {
		h.helper.SendValidationMessages(c, messages)
		return
	}

	author, err := h.authorService.CreateAuthor(*input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, author.ToResponse())
}

func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	params, err := validators.ParseAuthorListParams(c.Request.URL.Query())
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	authors, total, err := h.authorService.GetAuthors(*params)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthorListResponse{
		Authors: models.AuthorsToResponse(authors),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
}

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	author, err := h.authorService.GetAuthor(id)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, author.ToResponse())
}

func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
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

	input, messages := validators.ValidateAuthorPayload(body)
	if len(messages) > 0 {
		h.helper.SendValidationMessages(c, messages)
		return
	}

	author, err := h.authorService.UpdateAuthor(id, *input)
	if err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, author.ToResponse())
}

func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		h.helper.SendValidationMessage(c, err.Error())
		return
	}

	if err := h.authorService.DeleteAuthor(id); err != nil {
		h.helper.SendServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
