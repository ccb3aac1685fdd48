package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmergencyLabel(t *testing.T) {
	cases := []struct {
		level int
		label string
	}{
		{1, "Not Critical"},
		{2, "Low"},
		{3, "Moderate"},
		{4, "High"},
		{5, "Critical"},
		// Out-of-range levels clamp to the nearest bound.
		{0, "Not Critical"},
		{-3, "Not Critical"},
		{6, "Critical"},
		{100, "Critical"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.label, EmergencyLabel(tc.level), "level %d", tc.level)
	}
}

func TestEmergencyEmoji_Clamps(t *testing.T) {
	assert.Equal(t, "⚪", EmergencyEmoji(0))
	assert.Equal(t, "🔴", EmergencyEmoji(9))
	assert.Equal(t, "🟡", EmergencyEmoji(3))
}

func TestJobRequest_CustomerName(t *testing.T) {
	job := JobRequest{CustomerFirstName: "Maria", CustomerLastName: "Silva"}
	assert.Equal(t, "Maria Silva", job.CustomerName())
}

func TestJobRequest_IssueInfo(t *testing.T) {
	notes := "kitchen sink"

	job := JobRequest{IssueType: "Leak"}
	assert.Equal(t, "Leak", job.IssueInfo())

	job.IssueNotes = &notes
	assert.Equal(t, "Leak: kitchen sink", job.IssueInfo())

	job.IssueType = "Other"
	assert.Equal(t, "kitchen sink", job.IssueInfo())

	empty := ""
	job.IssueNotes = &empty
	assert.Equal(t, "Other", job.IssueInfo())
}

func TestJobStatus_Scan(t *testing.T) {
	var status JobStatus
	require.NoError(t, status.Scan("BROADCASTING"))
	assert.Equal(t, JobStatusBroadcasting, status)

	require.NoError(t, status.Scan([]byte("ACCEPTED")))
	assert.Equal(t, JobStatusAccepted, status)

	assert.Error(t, status.Scan("CANCELLED"))
	assert.Error(t, status.Scan(42))
}

func TestResponseStatus_Scan(t *testing.T) {
	var status ResponseStatus
	require.NoError(t, status.Scan("TOO_LATE"))
	assert.Equal(t, ResponseStatusTooLate, status)

	assert.Error(t, status.Scan("MAYBE"))
}

func TestIntakeChannel_Value(t *testing.T) {
	v, err := IntakeChannelInboundSMS.Value()
	require.NoError(t, err)
	assert.Equal(t, "INBOUND_SMS", v)
}
