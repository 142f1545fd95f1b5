package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanternml/cluster-core/internal/api/middleware"
	quotasvc "github.com/lanternml/cluster-core/internal/application/quota"
	"github.com/lanternml/cluster-core/internal/application/vcadmin"
	"github.com/lanternml/cluster-core/pkg/response"
)

type VCHandler struct {
	quota   *quotasvc.Service
	vcadmin *vcadmin.Service
}

func NewVCHandler(quotaSvc *quotasvc.Service, vcadminSvc *vcadmin.Service) *VCHandler {
	return &VCHandler{quota: quotaSvc, vcadmin: vcadminSvc}
}

func (h *VCHandler) ListVCs(c *gin.Context) {
	views, err := h.quota.ListVCs(middleware.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetVC serves the capacity view. An inaccessible VC and an unknown one
// are both 404, so the listing cannot be probed.
func (h *VCHandler) GetVC(c *gin.Context) {
	view, err := h.quota.GetVC(middleware.CurrentUser(c), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "vc not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *VCHandler) GetClusterStatus(c *gin.Context) {
	status, updatedAt, err := h.quota.GetClusterStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "updatedAt": updatedAt})
}

func (h *VCHandler) ListStorages(c *gin.Context) {
	storages, err := h.vcadmin.ListStorages(middleware.CurrentUser(c), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, storages)
}
