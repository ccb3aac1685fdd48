package notify

import (
	"fmt"
	"strings"

	"dispatch-engine/internal/models"
)

// BroadcastMessage builds the WhatsApp message offering a job to one
// provider, including the claim link and the textual reply commands.
func BroadcastMessage(job *models.JobRequest, claimURL string) string {
	lines := []string{
		fmt.Sprintf("🛠 *NEW PLUMBING JOB #%d*", job.ID),
		"",
		fmt.Sprintf("👤 *Customer:* %s", job.CustomerName()),
		fmt.Sprintf("📞 *Phone:* %s", job.CustomerPhone),
		"",
		"📍 *Location:*",
		job.Location,
		"",
		fmt.Sprintf("🔧 *Issue:* %s", job.IssueInfo()),
		"",
		fmt.Sprintf("%s *Emergency Level: %d/5 (%s)*",
			models.EmergencyEmoji(job.EmergencyLevel), job.EmergencyLevel, models.EmergencyLabel(job.EmergencyLevel)),
		"",
		"━━━━━━━━━━━━━━━━━━━━",
		"👉 *Tap to claim:*",
		claimURL,
		"",
		"Or reply:",
		fmt.Sprintf("✅ \"ACCEPT %d\" to claim", job.ID),
		fmt.Sprintf("❌ \"DECLINE %d\" to pass", job.ID),
	}
	return strings.Join(lines, "\n")
}

// JobTakenMessage builds the notice sent to every provider who did not win
// a job once it has been claimed.
func JobTakenMessage(job *models.JobRequest, acceptedProviderName string) string {
	lines := []string{
		fmt.Sprintf("📢 *Job Update: Job #%d has been accepted*", job.ID),
		"",
		fmt.Sprintf("📍 Location: %s", job.Location),
		fmt.Sprintf("🔧 Issue: %s", job.IssueInfo()),
		"",
		fmt.Sprintf("✅ Accepted by: %s", acceptedProviderName),
		"",
		"This job is no longer available. Thank you for your interest!",
	}
	return strings.Join(lines, "\n")
}

// ConfirmationEmail builds the subject, HTML and text bodies for the
// email confirming a new service request to the customer.
func ConfirmationEmail(job *models.JobRequest) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Service Request Confirmation - Job #%d", job.ID)

	details := fmt.Sprintf("Job ID: #%d\nLocation: %s\nIssue: %s\nEmergency Level: %d/5 (%s)",
		job.ID, job.Location, job.IssueInfo(), job.EmergencyLevel, models.EmergencyLabel(job.EmergencyLevel))

	textBody = fmt.Sprintf(`Service Request Confirmation - Job #%d

Dear %s,

Thank you for submitting your service request. We've received your request and are connecting you with qualified service providers in your area.

Job Details:
%s

Our service providers have been notified and the first available provider will contact you shortly.
You will receive another email once a provider accepts your job request.

This is an automated message. Please do not reply to this email.
`, job.ID, job.CustomerName(), details)

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #667eea;">Service Request Received</h1>
    <p>Dear %s,</p>
    <p>Thank you for submitting your service request. We've received your request and are connecting you with qualified service providers in your area.</p>
    <div style="background: #f8f9fa; padding: 15px; border-left: 4px solid #667eea;">
      <strong>Job Details:</strong><br>
      Job ID: #%d<br>
      Location: %s<br>
      Issue: %s<br>
      Emergency Level: %d/5 (%s)
    </div>
    <p>Our service providers have been notified and the first available provider will contact you shortly.</p>
    <p>You will receive another email once a provider accepts your job request.</p>
    <p style="color: #666; font-size: 12px;">This is an automated message. Please do not reply to this email.</p>
  </div>
</body>
</html>`, job.CustomerName(), job.ID, job.Location, job.IssueInfo(), job.EmergencyLevel, models.EmergencyLabel(job.EmergencyLevel))

	return subject, htmlBody, textBody
}

// AcceptanceEmail builds the subject, HTML and text bodies for the email
// telling the customer which provider accepted their job.
func AcceptanceEmail(job *models.JobRequest, provider *models.Provider) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Service Provider Assigned - Job #%d", job.ID)

	providerName := "Service Provider"
	providerPhone := "N/A"
	if provider != nil && provider.User != nil {
		providerName = provider.User.Name
		providerPhone = provider.User.PhoneNumber
	}

	textBody = fmt.Sprintf(`Service Provider Assigned - Job #%d

Dear %s,

Great news! A service provider has accepted your job request and will be contacting you shortly.

Your Service Provider:
- Name: %s
- Phone: %s

Job Details:
- Job ID: #%d
- Location: %s
- Issue: %s

What's Next?
Your service provider will contact you at %s to schedule a convenient time for service.
If you have any questions, please contact your provider directly using the phone number above.

This is an automated message. Please do not reply to this email.
`, job.ID, job.CustomerName(), providerName, providerPhone, job.ID, job.Location, job.IssueInfo(), job.CustomerPhone)

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #28a745;">✅ Service Provider Assigned!</h1>
    <p>Dear %s,</p>
    <p>Great news! A service provider has accepted your job request and will be contacting you shortly.</p>
    <div style="background: #d4edda; padding: 15px; border: 2px solid #28a745;">
      <strong>Your Service Provider:</strong><br>
      Name: %s<br>
      Phone: %s
    </div>
    <div style="background: #f8f9fa; padding: 15px; border-left: 4px solid #28a745;">
      <strong>Job Details:</strong><br>
      Job ID: #%d<br>
      Location: %s<br>
      Issue: %s
    </div>
    <p><strong>What's Next?</strong></p>
    <p>Your service provider will contact you at %s to schedule a convenient time for service.</p>
    <p style="color: #666; font-size: 12px;">This is an automated message. Please do not reply to this email.</p>
  </div>
</body>
</html>`, job.CustomerName(), providerName, providerPhone, job.ID, job.Location, job.IssueInfo(), job.CustomerPhone)

	return subject, htmlBody, textBody
}
