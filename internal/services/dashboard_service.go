package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

type dashboardService struct {
	jobRepo       storage.JobRepository
	providerRepo  storage.ProviderRepository
	broadcastRepo storage.BroadcastRepository
	redisClient   *redis.Client
}

func NewDashboardService(
	jobRepo storage.JobRepository,
	providerRepo storage.ProviderRepository,
	broadcastRepo storage.BroadcastRepository,
	redisClient *redis.Client,
) DashboardService {
	return &dashboardService{
		jobRepo:       jobRepo,
		providerRepo:  providerRepo,
		broadcastRepo: broadcastRepo,
		redisClient:   redisClient,
	}
}

// Stats returns the dashboard counters, served from a short Redis cache.
// Cache failures fall through to the database.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats dto.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			log.Printf("DashboardService: Error decoding cached stats: %v", err)
		} else if err != redis.Nil {
			log.Printf("DashboardService: Error reading stats cache: %v", err)
		}
	}

	jobCounts, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		log.Printf("DashboardService: Error counting jobs: %v", err)
		return nil, mapRepoError(err, "counting jobs")
	}

	providerCounts, err := s.providerRepo.Count(ctx)
	if err != nil {
		log.Printf("DashboardService: Error counting providers: %v", err)
		return nil, mapRepoError(err, "counting providers")
	}

	stats := &dto.DashboardStats{
		Jobs:      *jobCounts,
		Providers: *providerCounts,
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.redisClient.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				log.Printf("DashboardService: Error writing stats cache: %v", err)
			}
		}
	}

	return stats, nil
}

// Jobs returns every job with its broadcast history attached, newest
// first, for the dashboard table.
func (s *dashboardService) Jobs(ctx context.Context) ([]dto.DashboardJob, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		log.Printf("DashboardService: Error listing jobs: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}

	broadcasts, err := s.broadcastRepo.ListAll(ctx)
	if err != nil {
		log.Printf("DashboardService: Error listing broadcasts: %v", err)
		return nil, mapRepoError(err, "listing broadcasts")
	}

	byJob := make(map[int64][]dto.DashboardBroadcast, len(jobs))
	for _, b := range broadcasts {
		entry := dto.DashboardBroadcast{
			ID:             b.ID,
			ProviderID:     b.ProviderID,
			ResponseStatus: string(b.ResponseStatus),
			SentAt:         b.SentAt,
			RespondedAt:    b.RespondedAt,
		}
		if b.Provider != nil && b.Provider.User != nil {
			entry.ProviderName = b.Provider.User.Name
			entry.ProviderPhone = b.Provider.User.PhoneNumber
		}
		byJob[b.JobRequestID] = append(byJob[b.JobRequestID], entry)
	}

	result := make([]dto.DashboardJob, 0, len(jobs))
	for i := range jobs {
		result = append(result, buildDashboardJob(&jobs[i], byJob[jobs[i].ID]))
	}
	return result, nil
}

func buildDashboardJob(job *models.JobRequest, broadcasts []dto.DashboardBroadcast) dto.DashboardJob {
	var accepted *dto.DashboardProviderRef
	if job.AcceptedProviderID != nil {
		accepted = &dto.DashboardProviderRef{ID: *job.AcceptedProviderID}
		for _, b := range broadcasts {
			if b.ProviderID == *job.AcceptedProviderID {
				accepted.Name = b.ProviderName
				accepted.Phone = b.ProviderPhone
				break
			}
		}
	}

	return dto.DashboardJob{
		ID:               job.ID,
		CustomerName:     job.CustomerName(),
		CustomerPhone:    job.CustomerPhone,
		Location:         job.Location,
		IssueInfo:        job.IssueInfo(),
		EmergencyLevel:   job.EmergencyLevel,
		EmergencyLabel:   models.EmergencyLabel(job.EmergencyLevel),
		Status:           string(job.Status),
		IntakeChannel:    string(job.IntakeChannel),
		AcceptedProvider: accepted,
		Broadcasts:       broadcasts,
		BroadcastCount:   len(broadcasts),
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
}
