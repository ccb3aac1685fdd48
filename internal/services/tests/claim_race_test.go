package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	mock_storage "dispatch-engine/internal/mocks"
	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memJobRepo is an in-memory JobRepository holding a single job. Claim
// performs the same compare-and-set the SQL conditional UPDATE does,
// under a mutex, so the race between concurrent claimers is real.
type memJobRepo struct {
	mu  sync.Mutex
	job models.JobRequest
}

var _ storage.JobRepository = (*memJobRepo)(nil)

func (r *memJobRepo) Create(ctx context.Context, job *models.JobRequest) (*models.JobRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.job = *job
	copied := r.job
	return &copied, nil
}

func (r *memJobRepo) GetByID(ctx context.Context, id int64) (*models.JobRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.job.ID != id {
		return nil, storage.ErrNotFound
	}
	copied := r.job
	return &copied, nil
}

func (r *memJobRepo) List(ctx context.Context) ([]models.JobRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return []models.JobRequest{r.job}, nil
}

func (r *memJobRepo) MarkBroadcasting(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.job.ID != id || r.job.Status == models.JobStatusAccepted {
		return false, nil
	}
	r.job.Status = models.JobStatusBroadcasting
	return true, nil
}

func (r *memJobRepo) Claim(ctx context.Context, jobID, providerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.job.ID != jobID || r.job.Status != models.JobStatusBroadcasting || r.job.AcceptedProviderID != nil {
		return false, nil
	}
	r.job.Status = models.JobStatusAccepted
	r.job.AcceptedProviderID = &providerID
	return true, nil
}

func (r *memJobRepo) CountByStatus(ctx context.Context) (*dto.JobCounts, error) {
	return &dto.JobCounts{}, nil
}

func TestJobService_ClaimJob_ConcurrentClaimersExactlyOneWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobRepo := &memJobRepo{job: models.JobRequest{
		ID:                42,
		CustomerFirstName: "Maria",
		CustomerLastName:  "Silva",
		CustomerPhone:     "+15550001111",
		Location:          "District 2",
		IssueType:         "Leak",
		EmergencyLevel:    4,
		Status:            models.JobStatusBroadcasting,
	}}

	mockProviderRepo := mock_storage.NewMockProviderRepository(ctrl)
	mockBroadcastRepo := mock_storage.NewMockBroadcastRepository(ctrl)
	mockNotifier := mock_storage.NewMockNotifier(ctrl)

	// Only the winner reaches the post-claim bookkeeping, but which
	// provider wins is nondeterministic, so match any arguments.
	mockProviderRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (*models.Provider, error) {
			p := testProvider(id, "+15550009999")
			return &p, nil
		}).Times(1)
	mockBroadcastRepo.EXPECT().MarkResponse(gomock.Any(), int64(42), gomock.Any(), models.ResponseStatusAccepted, gomock.Any()).Return(true, nil).Times(1)
	mockBroadcastRepo.EXPECT().MarkOthersTooLate(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockBroadcastRepo.EXPECT().ListRecipients(gomock.Any(), int64(42), gomock.Any()).Return([]models.Provider{}, nil).Times(1)

	jobService := services.NewJobService(jobRepo, mockProviderRepo, mockBroadcastRepo, mockNotifier, testBaseURL)
	ctx := context.Background()

	const claimers = 32
	results := make(chan error, claimers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 1; i <= claimers; i++ {
		wg.Add(1)
		go func(providerID int64) {
			defer wg.Done()
			<-start
			_, err := jobService.ClaimJob(ctx, 42, providerID)
			results <- err
		}(int64(i))
	}
	close(start)
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, services.ErrAlreadyClaimed):
			losses++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one claimer must win")
	assert.Equal(t, claimers-1, losses, "every other claimer must lose with ErrAlreadyClaimed")

	final, err := jobRepo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAccepted, final.Status)
	require.NotNil(t, final.AcceptedProviderID)
	assert.GreaterOrEqual(t, *final.AcceptedProviderID, int64(1))
	assert.LessOrEqual(t, *final.AcceptedProviderID, int64(claimers))
}
