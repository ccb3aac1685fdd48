package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"dispatch-engine/internal/api/handlers"
	"dispatch-engine/internal/models"
	"dispatch-engine/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInboundService is a mock type for the services.InboundService interface
type MockInboundService struct {
	mock.Mock
}

func (m *MockInboundService) HandleMessage(ctx context.Context, from, body string) (*services.InboundResult, error) {
	args := m.Called(ctx, from, body)
	if result, ok := args.Get(0).(*services.InboundResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.InboundService = (*MockInboundService)(nil)

func setupWebhookRouter(inbound services.InboundService, jobService services.JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewWebhookHandler(inbound, jobService)
	router.POST("/webhooks/twilio/sms-incoming", handler.SMSIncoming)
	router.POST("/webhooks/twilio/voice", handler.VoiceIncoming)
	return router
}

func postTwilioForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_SMSIncoming_CommandReply(t *testing.T) {
	mockInbound := &MockInboundService{}
	mockJobService := &MockJobService{}
	router := setupWebhookRouter(mockInbound, mockJobService)

	mockInbound.On("HandleMessage", mock.Anything, "whatsapp:+15550000003", "ACCEPT 12").
		Return(&services.InboundResult{Reply: "You have successfully claimed job #12."}, nil).Once()

	w := postTwilioForm(router, "/webhooks/twilio/sms-incoming", url.Values{
		"From": {"whatsapp:+15550000003"},
		"Body": {"ACCEPT 12"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "xml")
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "<Message>You have successfully claimed job #12.</Message>")

	// No new job, so no broadcast.
	mockJobService.AssertNotCalled(t, "BroadcastJob")
	mockInbound.AssertExpectations(t)
}

func TestWebhookHandler_SMSIncoming_NewJobFiresBroadcast(t *testing.T) {
	mockInbound := &MockInboundService{}
	mockJobService := &MockJobService{broadcastDone: make(chan int64, 1)}
	router := setupWebhookRouter(mockInbound, mockJobService)

	job := &models.JobRequest{ID: 21}
	mockInbound.On("HandleMessage", mock.Anything, "whatsapp:+15550004444", "District 2 - burst pipe").
		Return(&services.InboundResult{Reply: "Thanks! Your request #21 has been received.", Job: job}, nil).Once()
	mockJobService.On("BroadcastJob", mock.Anything, int64(21)).Return(nil).Once()

	w := postTwilioForm(router, "/webhooks/twilio/sms-incoming", url.Values{
		"From": {"whatsapp:+15550004444"},
		"Body": {"District 2 - burst pipe"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "request #21")

	select {
	case jobID := <-mockJobService.broadcastDone:
		assert.Equal(t, int64(21), jobID)
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast was never fired")
	}

	mockInbound.AssertExpectations(t)
	mockJobService.AssertExpectations(t)
}

func TestWebhookHandler_SMSIncoming_ErrorStillReplies200(t *testing.T) {
	mockInbound := &MockInboundService{}
	mockJobService := &MockJobService{}
	router := setupWebhookRouter(mockInbound, mockJobService)

	mockInbound.On("HandleMessage", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db gone")).Once()

	w := postTwilioForm(router, "/webhooks/twilio/sms-incoming", url.Values{
		"From": {"whatsapp:+15550004444"},
		"Body": {"District 2 - burst pipe"},
	})

	// Twilio relays whatever we send back; an error must still produce
	// a friendly TwiML reply.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Message>")
	assert.Contains(t, w.Body.String(), "something went wrong")
	mockInbound.AssertExpectations(t)
}

func TestWebhookHandler_VoiceIncoming(t *testing.T) {
	router := setupWebhookRouter(&MockInboundService{}, &MockJobService{})

	w := postTwilioForm(router, "/webhooks/twilio/voice", url.Values{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Say")
	assert.Contains(t, w.Body.String(), "<Hangup")
}
