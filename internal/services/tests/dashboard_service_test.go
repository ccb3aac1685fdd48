package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_storage "dispatch-engine/internal/mocks"
	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/transport/dto"
)

func setupDashboardServiceTest(t *testing.T) (context.Context, services.DashboardService, *mock_storage.MockJobRepository, *mock_storage.MockProviderRepository, *mock_storage.MockBroadcastRepository, *miniredis.Miniredis, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockProviderRepo := mock_storage.NewMockProviderRepository(ctrl)
	mockBroadcastRepo := mock_storage.NewMockBroadcastRepository(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	dashboard := services.NewDashboardService(mockJobRepo, mockProviderRepo, mockBroadcastRepo, client)
	ctx := context.Background()
	return ctx, dashboard, mockJobRepo, mockProviderRepo, mockBroadcastRepo, mr, ctrl
}

func TestDashboardService_Stats_CachesResult(t *testing.T) {
	ctx, dashboard, mockJobRepo, mockProviderRepo, _, _, ctrl := setupDashboardServiceTest(t)
	defer ctrl.Finish()

	jobCounts := &dto.JobCounts{Total: 10, Pending: 2, Broadcasting: 3, Accepted: 5}
	providerCounts := &dto.ProviderCounts{Total: 4, Active: 3}

	// The repos are hit exactly once; the second call is served from Redis.
	mockJobRepo.EXPECT().CountByStatus(ctx).Return(jobCounts, nil).Times(1)
	mockProviderRepo.EXPECT().Count(ctx).Return(providerCounts, nil).Times(1)

	first, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.Jobs.Total)
	assert.Equal(t, int64(3), first.Providers.Active)

	second, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDashboardService_Stats_CacheExpires(t *testing.T) {
	ctx, dashboard, mockJobRepo, mockProviderRepo, _, mr, ctrl := setupDashboardServiceTest(t)
	defer ctrl.Finish()

	jobCounts := &dto.JobCounts{Total: 1}
	providerCounts := &dto.ProviderCounts{Total: 1, Active: 1}

	mockJobRepo.EXPECT().CountByStatus(ctx).Return(jobCounts, nil).Times(2)
	mockProviderRepo.EXPECT().Count(ctx).Return(providerCounts, nil).Times(2)

	_, err := dashboard.Stats(ctx)
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)

	_, err = dashboard.Stats(ctx)
	require.NoError(t, err)
}

func TestDashboardService_Jobs_GroupsBroadcastsByJob(t *testing.T) {
	ctx, dashboard, mockJobRepo, _, mockBroadcastRepo, _, ctrl := setupDashboardServiceTest(t)
	defer ctrl.Finish()

	winnerID := int64(2)
	jobs := []models.JobRequest{
		{ID: 5, CustomerFirstName: "Maria", CustomerLastName: "Silva", Location: "District 2", IssueType: "Leak", EmergencyLevel: 4, Status: models.JobStatusAccepted, IntakeChannel: models.IntakeChannelWebForm, AcceptedProviderID: &winnerID},
		{ID: 4, CustomerFirstName: "Joao", CustomerLastName: "Souza", Location: "District 9", IssueType: "Clog", EmergencyLevel: 2, Status: models.JobStatusPending, IntakeChannel: models.IntakeChannelInboundSMS},
	}

	p1 := testProvider(1, "+15550000001")
	p2 := testProvider(2, "+15550000002")
	p2.User.Name = "Ana"
	broadcasts := []models.JobBroadcast{
		{ID: 11, JobRequestID: 5, ProviderID: 1, ResponseStatus: models.ResponseStatusTooLate, SentAt: time.Now(), Provider: &p1},
		{ID: 12, JobRequestID: 5, ProviderID: 2, ResponseStatus: models.ResponseStatusAccepted, SentAt: time.Now(), Provider: &p2},
	}

	mockJobRepo.EXPECT().List(ctx).Return(jobs, nil).Times(1)
	mockBroadcastRepo.EXPECT().ListAll(ctx).Return(broadcasts, nil).Times(1)

	result, err := dashboard.Jobs(ctx)

	require.NoError(t, err)
	require.Len(t, result, 2)

	claimed := result[0]
	assert.Equal(t, int64(5), claimed.ID)
	assert.Equal(t, "Maria Silva", claimed.CustomerName)
	assert.Equal(t, 2, claimed.BroadcastCount)
	require.NotNil(t, claimed.AcceptedProvider)
	assert.Equal(t, int64(2), claimed.AcceptedProvider.ID)
	assert.Equal(t, "Ana", claimed.AcceptedProvider.Name)

	pending := result[1]
	assert.Equal(t, int64(4), pending.ID)
	assert.Equal(t, 0, pending.BroadcastCount)
	assert.Nil(t, pending.AcceptedProvider)
	assert.Equal(t, "INBOUND_SMS", pending.IntakeChannel)
}
