package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "dispatch-engine/internal/mocks"
	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInboundServiceTest(t *testing.T) (context.Context, services.InboundService, *mock_storage.MockJobService, *mock_storage.MockProviderService, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockJobService := mock_storage.NewMockJobService(ctrl)
	mockProviderSvc := mock_storage.NewMockProviderService(ctrl)
	inbound := services.NewInboundService(mockJobService, mockProviderSvc)
	ctx := context.Background()
	return ctx, inbound, mockJobService, mockProviderSvc, ctrl
}

func TestInboundService_AcceptCommand_Wins(t *testing.T) {
	ctx, inbound, mockJobService, mockProviderSvc, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	provider := testProvider(3, "+15550000003")
	mockProviderSvc.EXPECT().FindByPhone(ctx, "+15550000003").Return(&provider, nil).Times(1)
	mockJobService.EXPECT().ClaimJob(ctx, int64(12), int64(3)).Return(&models.JobRequest{ID: 12}, nil).Times(1)

	result, err := inbound.HandleMessage(ctx, "whatsapp:+15550000003", "ACCEPT 12")

	require.NoError(t, err)
	assert.Equal(t, "You have successfully claimed job #12.", result.Reply)
	assert.Nil(t, result.Job)
}

func TestInboundService_AcceptCommand_AlreadyClaimed(t *testing.T) {
	ctx, inbound, mockJobService, mockProviderSvc, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	provider := testProvider(3, "+15550000003")
	mockProviderSvc.EXPECT().FindByPhone(ctx, "+15550000003").Return(&provider, nil).Times(1)
	mockJobService.EXPECT().ClaimJob(ctx, int64(12), int64(3)).Return(nil, services.ErrAlreadyClaimed).Times(1)

	result, err := inbound.HandleMessage(ctx, "whatsapp:+15550000003", "ACCEPT 12")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, this job has already been claimed.", result.Reply)
}

func TestInboundService_AcceptCommand_CaseInsensitive(t *testing.T) {
	ctx, inbound, mockJobService, mockProviderSvc, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	provider := testProvider(3, "+15550000003")
	mockProviderSvc.EXPECT().FindByPhone(ctx, "+15550000003").Return(&provider, nil).Times(1)
	mockJobService.EXPECT().ClaimJob(ctx, int64(12), int64(3)).Return(&models.JobRequest{ID: 12}, nil).Times(1)

	result, err := inbound.HandleMessage(ctx, "+15550000003", "  accept 12  ")

	require.NoError(t, err)
	assert.Equal(t, "You have successfully claimed job #12.", result.Reply)
}

func TestInboundService_CommandFromUnknownSender(t *testing.T) {
	ctx, inbound, _, mockProviderSvc, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockProviderSvc.EXPECT().FindByPhone(ctx, "+15559999999").Return(nil, services.ErrNotFound).Times(1)

	result, err := inbound.HandleMessage(ctx, "whatsapp:+15559999999", "ACCEPT 12")

	require.NoError(t, err)
	assert.Equal(t, "We couldn't match your number to a provider account.", result.Reply)
	assert.Nil(t, result.Job)
}

func TestInboundService_DeclineCommand(t *testing.T) {
	ctx, inbound, mockJobService, mockProviderSvc, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	provider := testProvider(3, "+15550000003")
	mockProviderSvc.EXPECT().FindByPhone(ctx, "+15550000003").Return(&provider, nil).Times(1)
	mockJobService.EXPECT().DeclineJob(ctx, int64(12), int64(3)).Return(nil).Times(1)

	result, err := inbound.HandleMessage(ctx, "whatsapp:+15550000003", "DECLINE 12")

	require.NoError(t, err)
	assert.Equal(t, "You have declined job #12. We'll notify others.", result.Reply)
	assert.Nil(t, result.Job)
}

func TestInboundService_FreeText_LocationAndDescription(t *testing.T) {
	ctx, inbound, mockJobService, _, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockJobService.EXPECT().CreateInboundJob(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error) {
			assert.Equal(t, "+15550004444", req.CustomerPhone)
			assert.Equal(t, "District 2", req.Location)
			assert.Equal(t, "burst pipe", req.Description)
			return &models.JobRequest{ID: 21}, nil
		}).Times(1)

	result, err := inbound.HandleMessage(ctx, "whatsapp:+15550004444", "District 2 - burst pipe")

	require.NoError(t, err)
	assert.Contains(t, result.Reply, "#21")
	require.NotNil(t, result.Job)
	assert.Equal(t, int64(21), result.Job.ID)
}

func TestInboundService_FreeText_SplitsOnFirstDashOnly(t *testing.T) {
	ctx, inbound, mockJobService, _, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockJobService.EXPECT().CreateInboundJob(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error) {
			assert.Equal(t, "District 2", req.Location)
			assert.Equal(t, "leak - bathroom sink", req.Description)
			return &models.JobRequest{ID: 22}, nil
		}).Times(1)

	_, err := inbound.HandleMessage(ctx, "+15550004444", "District 2 - leak - bathroom sink")
	require.NoError(t, err)
}

func TestInboundService_FreeText_NoDash(t *testing.T) {
	ctx, inbound, mockJobService, _, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockJobService.EXPECT().CreateInboundJob(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error) {
			assert.Equal(t, "Unknown location", req.Location)
			assert.Equal(t, "toilet keeps running", req.Description)
			return &models.JobRequest{ID: 23}, nil
		}).Times(1)

	_, err := inbound.HandleMessage(ctx, "+15550004444", "toilet keeps running")
	require.NoError(t, err)
}

func TestInboundService_FreeText_EmptyBody(t *testing.T) {
	ctx, inbound, mockJobService, _, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockJobService.EXPECT().CreateInboundJob(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error) {
			assert.Equal(t, "Unknown location", req.Location)
			assert.Equal(t, "No description", req.Description)
			return &models.JobRequest{ID: 24}, nil
		}).Times(1)

	_, err := inbound.HandleMessage(ctx, "+15550004444", "   ")
	require.NoError(t, err)
}

func TestInboundService_FreeText_CreateError(t *testing.T) {
	ctx, inbound, mockJobService, _, ctrl := setupInboundServiceTest(t)
	defer ctrl.Finish()

	mockJobService.EXPECT().CreateInboundJob(ctx, gomock.Any()).Return(nil, errors.New("db gone")).Times(1)

	_, err := inbound.HandleMessage(ctx, "+15550004444", "District 2 - burst pipe")
	require.Error(t, err)
}
