package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusPending      JobStatus = "PENDING"
	JobStatusBroadcasting JobStatus = "BROADCASTING"
	JobStatusAccepted     JobStatus = "ACCEPTED"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusPending, JobStatusBroadcasting, JobStatusAccepted:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Intake Channel Enum ---
type IntakeChannel string

const (
	IntakeChannelWebForm    IntakeChannel = "WEB_FORM"
	IntakeChannelInboundSMS IntakeChannel = "INBOUND_SMS"
)

// Scan implements the sql.Scanner interface for IntakeChannel
func (ic *IntakeChannel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan IntakeChannel: value is not string or []byte")
		}
	}
	v := IntakeChannel(strVal)
	switch v {
	case IntakeChannelWebForm, IntakeChannelInboundSMS:
		*ic = v
		return nil
	default:
		return fmt.Errorf("invalid IntakeChannel value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for IntakeChannel
func (ic IntakeChannel) Value() (driver.Value, error) {
	return string(ic), nil
}

// --- Broadcast Response Status Enum ---
type ResponseStatus string

const (
	ResponseStatusNone     ResponseStatus = "NONE"
	ResponseStatusAccepted ResponseStatus = "ACCEPTED"
	ResponseStatusRejected ResponseStatus = "REJECTED"
	ResponseStatusTooLate  ResponseStatus = "TOO_LATE"
)

// Scan implements the sql.Scanner interface for ResponseStatus
func (rs *ResponseStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ResponseStatus: value is not string or []byte")
		}
	}
	v := ResponseStatus(strVal)
	switch v {
	case ResponseStatusNone, ResponseStatusAccepted, ResponseStatusRejected, ResponseStatusTooLate:
		*rs = v
		return nil
	default:
		return fmt.Errorf("invalid ResponseStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ResponseStatus
func (rs ResponseStatus) Value() (driver.Value, error) {
	return string(rs), nil
}

// User holds the contact identity behind a provider. The phone number is
// unique and doubles as the messaging address.
type User struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Provider represents a plumber who can receive job broadcasts. Each
// provider owns exactly one User record.
type Provider struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ServiceArea string    `json:"service_area" db:"service_area"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// User is populated by queries that join the users table.
	User *User `json:"user,omitempty" db:"-"`
}

// JobRequest is a customer's service request moving through
// PENDING -> BROADCASTING -> ACCEPTED. AcceptedProviderID is set exactly
// once, by the claim update, and is non-nil iff Status is ACCEPTED.
type JobRequest struct {
	ID                 int64         `json:"id" db:"id"`
	CustomerFirstName  string        `json:"customer_first_name" db:"customer_first_name"`
	CustomerLastName   string        `json:"customer_last_name" db:"customer_last_name"`
	CustomerPhone      string        `json:"customer_phone" db:"customer_phone"`
	CustomerEmail      *string       `json:"customer_email,omitempty" db:"customer_email"`
	Location           string        `json:"location" db:"location"`
	IssueType          string        `json:"issue_type" db:"issue_type"`
	IssueNotes         *string       `json:"issue_notes,omitempty" db:"issue_notes"`
	EmergencyLevel     int           `json:"emergency_level" db:"emergency_level"`
	Status             JobStatus     `json:"status" db:"status"`
	IntakeChannel      IntakeChannel `json:"intake_channel" db:"intake_channel"`
	AcceptedProviderID *int64        `json:"accepted_provider_id,omitempty" db:"accepted_provider_id"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// CustomerName returns the customer's display name.
func (j *JobRequest) CustomerName() string {
	name := j.CustomerFirstName + " " + j.CustomerLastName
	return name
}

// IssueInfo composes the issue category with its optional free-text notes.
func (j *JobRequest) IssueInfo() string {
	if j.IssueNotes != nil && *j.IssueNotes != "" {
		if j.IssueType == "Other" {
			return *j.IssueNotes
		}
		return j.IssueType + ": " + *j.IssueNotes
	}
	return j.IssueType
}

// JobBroadcast is one job x provider tracking row created at broadcast
// time. At most one row per job ever reaches ACCEPTED; sibling rows of the
// winner become TOO_LATE.
type JobBroadcast struct {
	ID             int64          `json:"id" db:"id"`
	JobRequestID   int64          `json:"job_request_id" db:"job_request_id"`
	ProviderID     int64          `json:"provider_id" db:"provider_id"`
	ResponseStatus ResponseStatus `json:"response_status" db:"response_status"`
	SentAt         time.Time      `json:"sent_at" db:"sent_at"`
	RespondedAt    *time.Time     `json:"responded_at,omitempty" db:"responded_at"`

	// Provider is populated by queries that join providers and users.
	Provider *Provider `json:"provider,omitempty" db:"-"`
}

// Five-point emergency scale, index 0 = level 1.
var (
	emergencyLabels = [5]string{"Not Critical", "Low", "Moderate", "High", "Critical"}
	emergencyEmojis = [5]string{"⚪", "🟢", "🟡", "🟠", "🔴"}
)

func clampEmergencyLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

// EmergencyLabel returns the display label for an emergency level,
// clamping out-of-range values to the nearest defined level.
func EmergencyLabel(level int) string {
	return emergencyLabels[clampEmergencyLevel(level)-1]
}

// EmergencyEmoji returns the marker used in chat messages for an emergency
// level, with the same clamping as EmergencyLabel.
func EmergencyEmoji(level int) string {
	return emergencyEmojis[clampEmergencyLevel(level)-1]
}
