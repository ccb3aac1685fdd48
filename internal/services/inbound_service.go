package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/transport/dto"
)

var (
	acceptPattern  = regexp.MustCompile(`^ACCEPT\s+(\d+)`)
	declinePattern = regexp.MustCompile(`^DECLINE\s+(\d+)`)
)

type inboundService struct {
	jobService JobService
	providers  ProviderService
}

// NewInboundService creates the interpreter for inbound WhatsApp/SMS
// messages. Command messages are routed to the sender's provider account;
// anything else becomes a new job request.
func NewInboundService(jobService JobService, providers ProviderService) InboundService {
	return &inboundService{
		jobService: jobService,
		providers:  providers,
	}
}

// HandleMessage interprets one inbound message and returns the reply to
// send back. Result.Job is non-nil when the message created a new job
// that still needs to be broadcast.
func (s *inboundService) HandleMessage(ctx context.Context, from, body string) (*InboundResult, error) {
	phone := strings.TrimPrefix(from, "whatsapp:")
	text := strings.TrimSpace(body)
	upper := strings.ToUpper(text)

	log.Printf("Inbound message from %s: %q", phone, text)

	if match := acceptPattern.FindStringSubmatch(upper); match != nil {
		jobID, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid job id in command", ErrValidation)
		}
		return s.handleAccept(ctx, phone, jobID)
	}

	if match := declinePattern.FindStringSubmatch(upper); match != nil {
		jobID, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid job id in command", ErrValidation)
		}
		return s.handleDecline(ctx, phone, jobID)
	}

	return s.handleNewRequest(ctx, phone, text)
}

// lookupSender resolves the sender's phone to a provider account.
func (s *inboundService) lookupSender(ctx context.Context, phone string) (*models.Provider, error) {
	provider, err := s.providers.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSender, phone)
		}
		return nil, err
	}
	return provider, nil
}

func (s *inboundService) handleAccept(ctx context.Context, phone string, jobID int64) (*InboundResult, error) {
	provider, err := s.lookupSender(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrUnknownSender) {
			return &InboundResult{Reply: "We couldn't match your number to a provider account."}, nil
		}
		return nil, err
	}

	_, err = s.jobService.ClaimJob(ctx, jobID, provider.ID)
	if err != nil {
		if errors.Is(err, ErrAlreadyClaimed) || errors.Is(err, ErrNotFound) {
			return &InboundResult{Reply: "Sorry, this job has already been claimed."}, nil
		}
		return nil, err
	}

	return &InboundResult{Reply: fmt.Sprintf("You have successfully claimed job #%d.", jobID)}, nil
}

func (s *inboundService) handleDecline(ctx context.Context, phone string, jobID int64) (*InboundResult, error) {
	provider, err := s.lookupSender(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrUnknownSender) {
			return &InboundResult{Reply: "We couldn't match your number to a provider account."}, nil
		}
		return nil, err
	}

	if err := s.jobService.DeclineJob(ctx, jobID, provider.ID); err != nil {
		return nil, err
	}

	return &InboundResult{Reply: fmt.Sprintf("You have declined job #%d. We'll notify others.", jobID)}, nil
}

// handleNewRequest treats free-form text as "location - description",
// split on the first dash.
func (s *inboundService) handleNewRequest(ctx context.Context, phone, text string) (*InboundResult, error) {
	location := "Unknown location"
	description := "No description"

	if text != "" {
		parts := strings.SplitN(text, "-", 2)
		if len(parts) == 2 {
			if loc := strings.TrimSpace(parts[0]); loc != "" {
				location = loc
			}
			if desc := strings.TrimSpace(parts[1]); desc != "" {
				description = desc
			}
		} else {
			description = text
		}
	}

	job, err := s.jobService.CreateInboundJob(ctx, &dto.CreateInboundJobRequest{
		CustomerPhone: phone,
		Location:      location,
		Description:   description,
	})
	if err != nil {
		return nil, err
	}

	reply := fmt.Sprintf("Thanks! Your request #%d has been received. We're contacting available plumbers now.", job.ID)
	return &InboundResult{Reply: reply, Job: job}, nil
}
