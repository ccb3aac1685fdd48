package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job intake and claim operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob accepts a web-form job request. The job is persisted
// synchronously; the broadcast fan-out runs in the background so the
// customer gets their confirmation immediately.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		respondServiceError(c, err, "Failed to create job")
		return
	}

	go func() {
		if err := h.service.BroadcastJob(context.Background(), createdJob.ID); err != nil {
			log.Printf("Error broadcasting job %d: %v", createdJob.ID, err)
		}
	}()

	c.JSON(http.StatusCreated, dto.MapJobToResponse(createdJob))
}

// ListJobs returns all job requests, newest first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		respondServiceError(c, err, "Failed to list jobs")
		return
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.MapJobToResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetJobByID returns a single job request.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to get job")
		return
	}
	c.JSON(http.StatusOK, dto.MapJobToResponse(job))
}

var claimSuccessTmpl = template.Must(template.New("claimSuccess").Parse(`<!DOCTYPE html>
<html>
<head><title>Job Claimed</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>&#9989; Job #{{.JobID}} is yours!</h1>
<p><strong>{{.Location}}</strong></p>
<p>{{.IssueInfo}}</p>
<p><span style="display: inline-block; padding: 5px 12px; border-radius: 4px; font-weight: 600; color: white; background: {{.BadgeColor}};">Level {{.EmergencyLevel}}/5: {{.EmergencyLabel}}</span></p>
<p>Customer: {{.CustomerName}} &mdash; {{.CustomerPhone}}</p>
<p>Please contact the customer to arrange the visit.</p>
</body>
</html>`))

var claimConflictTmpl = template.Must(template.New("claimConflict").Parse(`<!DOCTYPE html>
<html>
<head><title>Job Unavailable</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>Sorry, job #{{.JobID}} has already been claimed.</h1>
<p>Another provider accepted it first. We'll keep you posted on new jobs.</p>
</body>
</html>`))

type claimPageData struct {
	JobID          int64
	Location       string
	IssueInfo      string
	CustomerName   string
	CustomerPhone  string
	EmergencyLevel int
	EmergencyLabel string
	BadgeColor     template.CSS
}

// badgeColor picks the background of the emergency badge on the claim
// page. Levels 4-5 are red, 3 amber, everything below green.
func badgeColor(level int) template.CSS {
	switch {
	case level >= 4:
		return "#dc3545"
	case level >= 3:
		return "#ffc107"
	default:
		return "#28a745"
	}
}

// ClaimJob is the landing page behind the claim link in the broadcast
// message. The service's atomic claim decides the winner; everyone else
// gets the conflict page.
func (h *JobHandler) ClaimJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid job ID")
		return
	}
	providerID, err := strconv.ParseInt(c.Query("providerId"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Missing or invalid providerId")
		return
	}

	job, err := h.service.ClaimJob(c.Request.Context(), jobID, providerID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyClaimed) || errors.Is(err, services.ErrNotFound) {
			c.Status(http.StatusConflict)
			c.Header("Content-Type", "text/html; charset=utf-8")
			if tmplErr := claimConflictTmpl.Execute(c.Writer, claimPageData{JobID: jobID}); tmplErr != nil {
				log.Printf("Error rendering conflict page: %v", tmplErr)
			}
			return
		}
		log.Printf("Error claiming job %d: %v", jobID, err)
		c.String(http.StatusInternalServerError, "Something went wrong, please try again.")
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	data := claimPageData{
		JobID:          job.ID,
		Location:       job.Location,
		IssueInfo:      job.IssueInfo(),
		CustomerName:   job.CustomerName(),
		CustomerPhone:  job.CustomerPhone,
		EmergencyLevel: job.EmergencyLevel,
		EmergencyLabel: models.EmergencyLabel(job.EmergencyLevel),
		BadgeColor:     badgeColor(job.EmergencyLevel),
	}
	if err := claimSuccessTmpl.Execute(c.Writer, data); err != nil {
		log.Printf("Error rendering claim page: %v", err)
	}
}
