package mail

import (
	"fmt"
	"time"

	"github.com/osteele/liquid"
)

// Templates renders the transactional email bodies with Liquid.
type Templates struct {
	engine *liquid.Engine
}

// NewTemplates creates the template renderer.
func NewTemplates() *Templates {
	return &Templates{engine: liquid.NewEngine()}
}

const newsletterWelcomeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; background-color: #f9fafb; padding: 24px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
    <h1 style="color: #111827;">Welcome to PayHive Newsletter!</h1>
    <p>Thank you for joining our community. You'll now receive our weekly
    newsletter packed with bookkeeping tips for UK sole traders, PayHive
    product updates, and early access to webinars and events.</p>
    <table style="margin: 16px 0;">
      <tr><td style="color: #6b7280; padding-right: 12px;">Email:</td><td>{{ subscriber_email }}</td></tr>
      <tr><td style="color: #6b7280; padding-right: 12px;">Subscribed:</td><td>{{ subscribed_at }}</td></tr>
    </table>
    <p style="color: #6b7280; font-size: 12px;">You're receiving this email
    because you subscribed to the PayHive Newsletter.</p>
  </div>
</body>
</html>`

const newsletterNotificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; padding: 24px;">
  <h2>New newsletter subscription</h2>
  <p><strong>Email:</strong> {{ subscriber_email }}</p>
  <p><strong>Reference number:</strong> {{ ref_number }}</p>
  <p><strong>Subscribed at:</strong> {{ subscribed_at }}</p>
</body>
</html>`

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; padding: 24px;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> {{ first_name }} {{ last_name }}</p>
  <p><strong>Email:</strong> {{ email }}</p>
  {% if company != "" %}<p><strong>Company:</strong> {{ company }}</p>{% endif %}
  {% if telephone != "" %}<p><strong>Telephone:</strong> {{ telephone }}</p>{% endif %}
  {% if subject != "" %}<p><strong>Subject:</strong> {{ subject }}</p>{% endif %}
  {% if linked_to_user %}<p><strong>Linked to existing user account.</strong></p>{% endif %}
  <blockquote style="border-left: 3px solid #d1d5db; margin: 12px 0; padding-left: 12px;">{{ message }}</blockquote>
</body>
</html>`

// NewsletterWelcome renders the subscriber welcome email body.
func (t *Templates) NewsletterWelcome(subscriberEmail string, subscribedAt time.Time) (string, error) {
	out, err := t.engine.ParseAndRenderString(newsletterWelcomeTemplate, liquid.Bindings{
		"subscriber_email": subscriberEmail,
		"subscribed_at":    subscribedAt.Format("02 Jan 2006 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("render newsletter welcome: %w", err)
	}
	return out, nil
}

// NewsletterNotification renders the internal notification naming the
// subscription reference number.
func (t *Templates) NewsletterNotification(subscriberEmail string, refNumber int64, subscribedAt time.Time) (string, error) {
	out, err := t.engine.ParseAndRenderString(newsletterNotificationTemplate, liquid.Bindings{
		"subscriber_email": subscriberEmail,
		"ref_number":       refNumber,
		"subscribed_at":    subscribedAt.Format("02 Jan 2006 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("render newsletter notification: %w", err)
	}
	return out, nil
}

// ContactNotificationData carries the fields the contact notification renders.
type ContactNotificationData struct {
	FirstName    string
	LastName     string
	Email        string
	Company      string
	Telephone    string
	Subject      string
	Message      string
	LinkedToUser bool
}

// ContactNotification renders the internal notification describing a
// contact form submission.
func (t *Templates) ContactNotification(data ContactNotificationData) (string, error) {
	out, err := t.engine.ParseAndRenderString(contactNotificationTemplate, liquid.Bindings{
		"first_name":     data.FirstName,
		"last_name":      data.LastName,
		"email":          data.Email,
		"company":        data.Company,
		"telephone":      data.Telephone,
		"subject":        data.Subject,
		"message":        data.Message,
		"linked_to_user": data.LinkedToUser,
	})
	if err != nil {
		return "", fmt.Errorf("render contact notification: %w", err)
	}
	return out, nil
}
