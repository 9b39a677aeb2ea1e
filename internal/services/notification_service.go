package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/quantumhotel/hotel-service/internal/interval"
	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

/*
NotificationService is the engine's notification sink. Every call is
fire-and-forget: delivery failures are logged and swallowed, never surfaced,
because a reservation's durability is independent of notification success.
*/
type NotificationService interface {
	ReservationConfirmed(ctx context.Context, guest *models.User, r *models.Reservation)
	ReservationRejected(ctx context.Context, guest *models.User, r *models.Reservation, reason *string)
	ReservationUpdated(ctx context.Context, guest *models.User, r *models.Reservation)
}

type notificationService struct {
	sgClient  *sendgrid.Client
	twClient  *twilio.RestClient
	fromEmail string
	fromPhone string
	orgName   string
	sandbox   bool
}

func NewNotificationService(
	sgClient *sendgrid.Client,
	twClient *twilio.RestClient,
	fromEmail string,
	fromPhone string,
	orgName string,
	sandbox bool,
) NotificationService {
	return &notificationService{
		sgClient:  sgClient,
		twClient:  twClient,
		fromEmail: fromEmail,
		fromPhone: fromPhone,
		orgName:   orgName,
		sandbox:   sandbox,
	}
}

func stayLine(r *models.Reservation) string {
	nights := interval.Nights(r.DateFrom, r.DateTo)
	return fmt.Sprintf("%s to %s (%d night(s))",
		r.DateFrom.Format("2006-01-02"), r.DateTo.Format("2006-01-02"), nights)
}

func (n *notificationService) ReservationConfirmed(ctx context.Context, guest *models.User, r *models.Reservation) {
	subject := fmt.Sprintf("%s: your reservation is confirmed", n.orgName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation %s has been confirmed.\nStay: %s\n\nWe look forward to welcoming you.",
		guest.Name, r.ID, stayLine(r),
	)
	n.send(guest, subject, body)
}

func (n *notificationService) ReservationRejected(ctx context.Context, guest *models.User, r *models.Reservation, reason *string) {
	subject := fmt.Sprintf("%s: your reservation was rejected", n.orgName)
	body := fmt.Sprintf(
		"Hello %s,\n\nUnfortunately your reservation %s for %s could not be accepted.",
		guest.Name, r.ID, stayLine(r),
	)
	if reason != nil && *reason != "" {
		body += "\nReason: " + *reason
	}
	n.send(guest, subject, body)
}

func (n *notificationService) ReservationUpdated(ctx context.Context, guest *models.User, r *models.Reservation) {
	subject := fmt.Sprintf("%s: your reservation was updated", n.orgName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation %s was updated by our staff.\nNew stay: %s",
		guest.Name, r.ID, stayLine(r),
	)
	n.send(guest, subject, body)
}

func (n *notificationService) send(guest *models.User, subject, plainTextBody string) {
	// ---------- SendGrid Email ----------
	if n.sgClient != nil {
		from := mail.NewEmail(n.orgName, n.fromEmail)
		to := mail.NewEmail(guest.Name, guest.Email)
		htmlBody := "<p>" + plainTextBody + "</p>"
		msg := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)
		if n.sandbox {
			enabled := true
			msg.MailSettings = &mail.MailSettings{
				SandboxMode: &mail.Setting{Enable: &enabled},
			}
		}
		if _, err := n.sgClient.Send(msg); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to send reservation email to guest %s", guest.ID)
		}
	} else {
		utils.Logger.Warnf("SendGrid client is nil, skipping email to guest %s", guest.ID)
	}

	// ---------- Twilio SMS ----------
	if n.twClient != nil && guest.PhoneNumber != nil && *guest.PhoneNumber != "" {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(*guest.PhoneNumber)
		params.SetFrom(n.fromPhone)
		params.SetBody(subject)
		if _, err := n.twClient.Api.CreateMessage(params); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to send reservation SMS to guest %s", guest.ID)
		}
	}
}
