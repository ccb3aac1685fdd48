package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/notify"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"
)

type jobService struct {
	jobRepo       storage.JobRepository
	providerRepo  storage.ProviderRepository
	broadcastRepo storage.BroadcastRepository
	notifier      notify.Notifier
	baseURL       string
}

// NewJobService creates a new instance of JobService. The notifier is
// consumed fire-and-forget: its failures are logged and never affect a
// job's state transition.
func NewJobService(
	jobRepo storage.JobRepository,
	providerRepo storage.ProviderRepository,
	broadcastRepo storage.BroadcastRepository,
	notifier notify.Notifier,
	baseURL string,
) JobService {
	return &jobService{
		jobRepo:       jobRepo,
		providerRepo:  providerRepo,
		broadcastRepo: broadcastRepo,
		notifier:      notifier,
		baseURL:       baseURL,
	}
}

func validateCreateJob(req *dto.CreateJobRequest) error {
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if req.CustomerFirstName == "" || req.CustomerLastName == "" {
		return fmt.Errorf("%w: first name and last name are required", ErrValidation)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if req.IssueType == "" {
		return fmt.Errorf("%w: issue type or description is required", ErrValidation)
	}
	if req.EmergencyLevel < 1 || req.EmergencyLevel > 5 {
		return fmt.Errorf("%w: emergency level must be between 1 and 5", ErrValidation)
	}
	return nil
}

// CreateJob persists a new PENDING job from the web form and submits the
// customer confirmation email when an address was supplied. Broadcasting
// is the caller's responsibility and happens after this returns.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.JobRequest, error) {
	if err := validateCreateJob(req); err != nil {
		return nil, err
	}

	job := &models.JobRequest{
		CustomerFirstName: req.CustomerFirstName,
		CustomerLastName:  req.CustomerLastName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
		Location:          req.Location,
		IssueType:         req.IssueType,
		IssueNotes:        req.IssueNotes,
		EmergencyLevel:    req.EmergencyLevel,
		Status:            models.JobStatusPending,
		IntakeChannel:     models.IntakeChannelWebForm,
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}

	if created.CustomerEmail != nil && *created.CustomerEmail != "" {
		subject, htmlBody, textBody := notify.ConfirmationEmail(created)
		if err := s.notifier.SendEmail(ctx, *created.CustomerEmail, subject, htmlBody, textBody); err != nil {
			log.Printf("JobService: Error sending confirmation email for job %d: %v", created.ID, err)
		}
	}

	log.Printf("New job created: %d", created.ID)
	return created, nil
}

// CreateInboundJob persists a PENDING job parsed from an inbound message.
// The sender is only known by phone, so the customer identity is a
// placeholder.
func (s *jobService) CreateInboundJob(ctx context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error) {
	if req.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: sender phone is required", ErrValidation)
	}

	job := &models.JobRequest{
		CustomerFirstName: "Messaging",
		CustomerLastName:  "Customer",
		CustomerPhone:     req.CustomerPhone,
		Location:          req.Location,
		IssueType:         req.Description,
		EmergencyLevel:    1,
		Status:            models.JobStatusPending,
		IntakeChannel:     models.IntakeChannelInboundSMS,
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("JobService: Error creating inbound job: %v", err)
		return nil, mapRepoError(err, "creating inbound job")
	}

	log.Printf("New job from inbound message: %d", created.ID)
	return created, nil
}

func (s *jobService) GetJobByID(ctx context.Context, id int64) (*models.JobRequest, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("JobService: Error getting job %d: %v", id, err)
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.JobRequest, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

// BroadcastJob fans a job out to every currently active provider: one
// tracking row and one WhatsApp message per provider. With no active
// providers the job is left untouched. Per-provider failures are logged
// and never block the remaining providers.
func (s *jobService) BroadcastJob(ctx context.Context, jobID int64) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		log.Printf("BroadcastJob: Error fetching job %d: %v", jobID, err)
		return mapRepoError(err, "fetching job for broadcast")
	}

	providers, err := s.providerRepo.ListActive(ctx)
	if err != nil {
		log.Printf("BroadcastJob: Error listing active providers: %v", err)
		return mapRepoError(err, "listing active providers")
	}
	if len(providers) == 0 {
		log.Printf("BroadcastJob: No active providers to broadcast job %d to.", jobID)
		return nil
	}

	broadcastable, err := s.jobRepo.MarkBroadcasting(ctx, jobID)
	if err != nil {
		log.Printf("BroadcastJob: Error marking job %d broadcasting: %v", jobID, err)
		return mapRepoError(err, "marking job broadcasting")
	}
	if !broadcastable {
		// Already ACCEPTED; a claimed job is never re-offered.
		log.Printf("BroadcastJob: Job %d is not in a broadcastable state, skipping.", jobID)
		return nil
	}

	log.Printf("Broadcasting job %d to %d providers.", jobID, len(providers))

	for _, provider := range providers {
		if _, err := s.broadcastRepo.Create(ctx, jobID, provider.ID); err != nil {
			log.Printf("BroadcastJob: Error recording broadcast for job %d, provider %d: %v", jobID, provider.ID, err)
			continue
		}

		claimURL := fmt.Sprintf("%s/jobs/%d/claim?providerId=%d", s.baseURL, jobID, provider.ID)
		body := notify.BroadcastMessage(job, claimURL)

		phone := ""
		if provider.User != nil {
			phone = provider.User.PhoneNumber
		}
		if err := s.notifier.SendChatMessage(ctx, phone, body); err != nil {
			log.Printf("BroadcastJob: Error sending message to provider %d: %v", provider.ID, err)
		}
	}

	log.Printf("Broadcast complete for job %d", jobID)
	return nil
}

// ClaimJob resolves the first-provider-wins race. The store's conditional
// update is the sole arbiter: zero affected rows means this caller lost
// (or the job was never claimable) and nothing is mutated. On a win the
// broadcast rows and notifications follow, all best-effort.
func (s *jobService) ClaimJob(ctx context.Context, jobID, providerID int64) (*models.JobRequest, error) {
	claimed, err := s.jobRepo.Claim(ctx, jobID, providerID)
	if err != nil {
		log.Printf("ClaimJob: Error claiming job %d for provider %d: %v", jobID, providerID, err)
		return nil, mapRepoError(err, "claiming job")
	}
	if !claimed {
		return nil, ErrAlreadyClaimed
	}

	log.Printf("Job %d claimed by provider %d", jobID, providerID)

	respondedAt := time.Now()
	if _, err := s.broadcastRepo.MarkResponse(ctx, jobID, providerID, models.ResponseStatusAccepted, respondedAt); err != nil {
		log.Printf("ClaimJob: Error marking winner broadcast for job %d: %v", jobID, err)
	}
	if err := s.broadcastRepo.MarkOthersTooLate(ctx, jobID, providerID, respondedAt); err != nil {
		log.Printf("ClaimJob: Error marking other broadcasts too late for job %d: %v", jobID, err)
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		// The claim itself landed; only the read-back failed.
		log.Printf("ClaimJob: Error fetching claimed job %d: %v", jobID, err)
		return nil, mapRepoError(err, "fetching claimed job")
	}

	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		log.Printf("ClaimJob: Error fetching accepted provider %d: %v", providerID, err)
		provider = nil
	}

	if job.CustomerEmail != nil && *job.CustomerEmail != "" {
		subject, htmlBody, textBody := notify.AcceptanceEmail(job, provider)
		if err := s.notifier.SendEmail(ctx, *job.CustomerEmail, subject, htmlBody, textBody); err != nil {
			log.Printf("ClaimJob: Error sending acceptance email for job %d: %v", jobID, err)
		}
	}

	s.notifyJobTaken(ctx, job, provider)

	return job, nil
}

// notifyJobTaken tells every other broadcast recipient the job is gone.
func (s *jobService) notifyJobTaken(ctx context.Context, job *models.JobRequest, winner *models.Provider) {
	winnerID := int64(0)
	winnerName := "Another provider"
	if winner != nil {
		winnerID = winner.ID
		if winner.User != nil {
			winnerName = winner.User.Name
		}
	}

	recipients, err := s.broadcastRepo.ListRecipients(ctx, job.ID, winnerID)
	if err != nil {
		log.Printf("ClaimJob: Error listing broadcast recipients for job %d: %v", job.ID, err)
		return
	}
	if len(recipients) == 0 {
		log.Printf("No other providers to notify for job %d", job.ID)
		return
	}

	body := notify.JobTakenMessage(job, winnerName)
	for _, recipient := range recipients {
		if recipient.User == nil || recipient.User.PhoneNumber == "" {
			continue
		}
		if err := s.notifier.SendChatMessage(ctx, recipient.User.PhoneNumber, body); err != nil {
			log.Printf("ClaimJob: Error notifying provider %d about job %d: %v", recipient.ID, job.ID, err)
		}
	}
}

// DeclineJob records a provider's pass on their own broadcast row. Job
// status is never touched and no one else is notified.
func (s *jobService) DeclineJob(ctx context.Context, jobID, providerID int64) error {
	updated, err := s.broadcastRepo.MarkResponse(ctx, jobID, providerID, models.ResponseStatusRejected, time.Now())
	if err != nil {
		log.Printf("DeclineJob: Error declining job %d for provider %d: %v", jobID, providerID, err)
		return mapRepoError(err, "declining job")
	}
	if !updated {
		log.Printf("DeclineJob: No broadcast row for job %d, provider %d", jobID, providerID)
	}
	return nil
}
