package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanternml/cluster-core/internal/api/middleware"
	"github.com/lanternml/cluster-core/internal/application/vcadmin"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/vc"
	"github.com/lanternml/cluster-core/pkg/response"
)

// AdminHandler exposes the administrative plane: VC definitions,
// storage endpoints and ACL grants.
type AdminHandler struct {
	vcadmin *vcadmin.Service
}

func NewAdminHandler(vcadminSvc *vcadmin.Service) *AdminHandler {
	return &AdminHandler{vcadmin: vcadminSvc}
}

type vcInput struct {
	Quota    string `json:"quota"`
	Metadata string `json:"metadata"`
}

type aceInput struct {
	IdentityName string `json:"identityName" binding:"required"`
	ResourceType string `json:"resourceType" binding:"required"`
	ResourceName string `json:"resourceName"`
	Permission   int    `json:"permission"`
}

func (h *AdminHandler) AddVC(c *gin.Context) {
	var input vcInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	err := h.vcadmin.AddVC(middleware.CurrentUser(c), c.Param("name"), input.Quota, input.Metadata)
	h.reply(c, err, "vc added")
}

func (h *AdminHandler) UpdateVC(c *gin.Context) {
	var input vcInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	err := h.vcadmin.UpdateVC(middleware.CurrentUser(c), c.Param("name"), input.Quota, input.Metadata)
	h.reply(c, err, "vc updated")
}

func (h *AdminHandler) DeleteVC(c *gin.Context) {
	err := h.vcadmin.DeleteVC(middleware.CurrentUser(c), c.Param("name"))
	h.reply(c, err, "vc deleted")
}

func (h *AdminHandler) AddStorage(c *gin.Context) {
	var storage vc.Storage
	if err := c.ShouldBindJSON(&storage); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	storage.VcName = c.Param("name")
	err := h.vcadmin.AddStorage(middleware.CurrentUser(c), &storage)
	h.reply(c, err, "storage added")
}

func (h *AdminHandler) UpdateStorage(c *gin.Context) {
	var storage vc.Storage
	if err := c.ShouldBindJSON(&storage); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	storage.VcName = c.Param("name")
	err := h.vcadmin.UpdateStorage(middleware.CurrentUser(c), &storage)
	h.reply(c, err, "storage updated")
}

func (h *AdminHandler) DeleteStorage(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "url is required"})
		return
	}
	err := h.vcadmin.DeleteStorage(middleware.CurrentUser(c), c.Param("name"), url)
	h.reply(c, err, "storage deleted")
}

func (h *AdminHandler) UpdateAce(c *gin.Context) {
	input, ok := bindAce(c)
	if !ok {
		return
	}
	err := h.vcadmin.UpdateAce(middleware.CurrentUser(c), input.IdentityName,
		auth.ResourceType(input.ResourceType), input.ResourceName, auth.Permission(input.Permission))
	h.reply(c, err, "ace updated")
}

func (h *AdminHandler) DeleteAce(c *gin.Context) {
	input, ok := bindAce(c)
	if !ok {
		return
	}
	err := h.vcadmin.DeleteAce(middleware.CurrentUser(c), input.IdentityName,
		auth.ResourceType(input.ResourceType), input.ResourceName)
	h.reply(c, err, "ace deleted")
}

func bindAce(c *gin.Context) (aceInput, bool) {
	var input aceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return input, false
	}
	return input, true
}

func (h *AdminHandler) reply(c *gin.Context, err error, message string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.MessageResponse{Message: message})
	case errors.Is(err, vcadmin.ErrAccessDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, vcadmin.ErrBadQuota):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
