package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch-engine/internal/api/handlers"
	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardService is a mock type for the services.DashboardService interface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*dto.DashboardStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDashboardService) Jobs(ctx context.Context) ([]dto.DashboardJob, error) {
	args := m.Called(ctx)
	if jobs, ok := args.Get(0).([]dto.DashboardJob); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.DashboardService = (*MockDashboardService)(nil)

// MockProviderService is a mock type for the services.ProviderService interface
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) ListProviders(ctx context.Context) ([]dto.ProviderResponse, error) {
	args := m.Called(ctx)
	if providers, ok := args.Get(0).([]dto.ProviderResponse); ok {
		return providers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderService) UpdateProvider(ctx context.Context, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	args := m.Called(ctx, req)
	if provider, ok := args.Get(0).(*dto.ProviderResponse); ok {
		return provider, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderService) FindByPhone(ctx context.Context, phone string) (*models.Provider, error) {
	args := m.Called(ctx, phone)
	if provider, ok := args.Get(0).(*models.Provider); ok {
		return provider, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.ProviderService = (*MockProviderService)(nil)

func setupDashboardRouter(dashboard services.DashboardService, providers services.ProviderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewDashboardHandler(dashboard, providers, validator.New())
	group := router.Group("/api/dashboard")
	group.GET("/stats", handler.Stats)
	group.GET("/jobs", handler.Jobs)
	group.GET("/providers", handler.ListProviders)
	group.PUT("/providers/:id", handler.UpdateProvider)
	return router
}

func TestDashboardHandler_Stats(t *testing.T) {
	mockDashboard := &MockDashboardService{}
	router := setupDashboardRouter(mockDashboard, &MockProviderService{})

	stats := &dto.DashboardStats{
		Jobs:      dto.JobCounts{Total: 10, Accepted: 5},
		Providers: dto.ProviderCounts{Total: 4, Active: 3},
	}
	mockDashboard.On("Stats", mock.Anything).Return(stats, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Jobs.Total)
	assert.Equal(t, int64(3), resp.Providers.Active)
	mockDashboard.AssertExpectations(t)
}

func TestDashboardHandler_Jobs(t *testing.T) {
	mockDashboard := &MockDashboardService{}
	router := setupDashboardRouter(mockDashboard, &MockProviderService{})

	jobs := []dto.DashboardJob{
		{ID: 5, CustomerName: "Maria Silva", Status: "ACCEPTED", BroadcastCount: 2},
	}
	mockDashboard.On("Jobs", mock.Anything).Return(jobs, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/jobs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.DashboardJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Maria Silva", resp[0].CustomerName)
	mockDashboard.AssertExpectations(t)
}

func TestDashboardHandler_UpdateProvider(t *testing.T) {
	mockProviders := &MockProviderService{}
	router := setupDashboardRouter(&MockDashboardService{}, mockProviders)

	updated := &dto.ProviderResponse{ID: 2, Name: "Ana", IsActive: false}
	mockProviders.On("UpdateProvider", mock.Anything, mock.MatchedBy(func(req *dto.UpdateProviderRequest) bool {
		return req.ID == 2 && req.IsActive != nil && !*req.IsActive
	})).Return(updated, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{"is_active": false})
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/providers/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProviderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
	mockProviders.AssertExpectations(t)
}

func TestDashboardHandler_UpdateProvider_Conflict(t *testing.T) {
	mockProviders := &MockProviderService{}
	router := setupDashboardRouter(&MockDashboardService{}, mockProviders)

	mockProviders.On("UpdateProvider", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

	body, _ := json.Marshal(map[string]interface{}{"phone": "+15550000001"})
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/providers/2", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockProviders.AssertExpectations(t)
}

func TestDashboardHandler_UpdateProvider_InvalidID(t *testing.T) {
	mockProviders := &MockProviderService{}
	router := setupDashboardRouter(&MockDashboardService{}, mockProviders)

	body, _ := json.Marshal(map[string]interface{}{"is_active": false})
	req := httptest.NewRequest(http.MethodPut, "/api/dashboard/providers/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProviders.AssertNotCalled(t, "UpdateProvider")
}
