package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lanternml/cluster-core/internal/api/middleware"
	"github.com/lanternml/cluster-core/internal/application/admission"
	"github.com/lanternml/cluster-core/internal/application/joblist"
	"github.com/lanternml/cluster-core/internal/application/lifecycle"
	"github.com/lanternml/cluster-core/internal/application/priority"
	"github.com/lanternml/cluster-core/pkg/pathutil"
	"github.com/lanternml/cluster-core/pkg/response"
)

type JobHandler struct {
	admission *admission.Service
	lifecycle *lifecycle.Service
	priority  *priority.Service
	joblist   *joblist.Service
}

func NewJobHandler(admissionSvc *admission.Service, lifecycleSvc *lifecycle.Service,
	prioritySvc *priority.Service, joblistSvc *joblist.Service) *JobHandler {
	return &JobHandler{
		admission: admissionSvc,
		lifecycle: lifecycleSvc,
		priority:  prioritySvc,
		joblist:   joblistSvc,
	}
}

// SubmitJob admits a new job. The owner always comes from the token,
// never from the payload.
func (h *JobHandler) SubmitJob(c *gin.Context) {
	var req admission.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	req.UserName = middleware.CurrentUser(c)

	jobID, err := h.admission.Submit(&req)
	if err != nil {
		c.JSON(submitStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.SubmitResponse{JobID: jobID})
}

func submitStatus(err error) int {
	switch {
	case errors.Is(err, admission.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, admission.ErrEmptyJobName),
		errors.Is(err, admission.ErrEmptyVcName),
		errors.Is(err, admission.ErrNegativeGpuRequest),
		errors.Is(err, pathutil.ErrTraversal),
		errors.Is(err, pathutil.ErrRooting):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListJobs lists a VC's jobs. jobOwner=all widens to every owner for
// collaborators.
func (h *JobHandler) ListJobs(c *gin.Context) {
	vcName := c.Query("vcName")
	if vcName == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "vcName is required"})
		return
	}
	jobOwner := c.DefaultQuery("jobOwner", middleware.CurrentUser(c))
	limit, _ := strconv.Atoi(c.DefaultQuery("num", "0"))

	jobs := h.joblist.GetJobList(middleware.CurrentUser(c), vcName, jobOwner, limit)
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJobDetail(c *gin.Context) {
	detail, err := h.joblist.GetJobDetail(middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *JobHandler) GetJobStatus(c *gin.Context) {
	summary, err := h.joblist.GetJobStatus(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *JobHandler) ApproveJob(c *gin.Context) {
	h.transition(c, h.lifecycle.ApproveJob, "job approved")
}

func (h *JobHandler) KillJob(c *gin.Context) {
	h.transition(c, h.lifecycle.KillJob, "job is being killed")
}

func (h *JobHandler) PauseJob(c *gin.Context) {
	h.transition(c, h.lifecycle.PauseJob, "job is being paused")
}

func (h *JobHandler) ResumeJob(c *gin.Context) {
	h.transition(c, h.lifecycle.ResumeJob, "job is queued for approval")
}

func (h *JobHandler) transition(c *gin.Context, op func(userName, jobID string) error, message string) {
	err := op(middleware.CurrentUser(c), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.MessageResponse{Message: message})
	case errors.Is(err, lifecycle.ErrJobNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrInvalidJobState):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrAccessDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func (h *JobHandler) GetJobPriorities(c *gin.Context) {
	priorities, err := h.priority.GetJobPriorities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, priorities)
}

// UpdateJobPriorities applies a batch of priority changes. One
// unauthorized entry rejects the whole batch.
func (h *JobHandler) UpdateJobPriorities(c *gin.Context) {
	var requested map[string]int
	if err := c.ShouldBindJSON(&requested); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.priority.UpdateJobPriorities(middleware.CurrentUser(c), requested)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.MessageResponse{Message: "job priorities updated"})
	case errors.Is(err, priority.ErrAccessDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
