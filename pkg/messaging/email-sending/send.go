package emailsending

import (
	"errors"
	"log/slog"

	messagingDB "github.com/parthoooo/story-teller/pkg/db/messaging"
	"github.com/parthoooo/story-teller/pkg/messaging/templates"
	messagingTypes "github.com/parthoooo/story-teller/pkg/messaging/types"
	smtpclient "github.com/parthoooo/story-teller/pkg/smtp-client"
)

var (
	smtpClients      *smtpclient.SmtpClients
	messageDBService *messagingDB.MessagingDBService

	GlobalTemplateInfos = map[string]string{}
)

func InitMessageSendingVariables(
	clients *smtpclient.SmtpClients,
	globalTemplateInfos map[string]string,
	mdb *messagingDB.MessagingDBService,
) {
	smtpClients = clients
	GlobalTemplateInfos = globalTemplateInfos
	messageDBService = mdb
}

func SendOutgoingEmail(
	outgoing *messagingTypes.OutgoingEmail,
) error {
	if smtpClients == nil {
		return errors.New("smtp clients not initialized")
	}
	return smtpClients.SendMail(
		outgoing.To,
		outgoing.Subject,
		outgoing.Content,
		outgoing.HeaderOverrides,
	)
}

// sendOrPark attempts delivery; when the transport fails, the message is
// stored in the outgoing collection instead of being lost. Successful sends
// are recorded (without content) in the sent collection.
func sendOrPark(outgoing *messagingTypes.OutgoingEmail) error {
	err := SendOutgoingEmail(outgoing)
	if err != nil {
		slog.Debug("error while sending email", slog.String("error", err.Error()))
		if messageDBService != nil {
			if _, errS := messageDBService.AddToOutgoingEmails(*outgoing); errS != nil {
				slog.Error("failed to save outgoing email", slog.String("error", errS.Error()))
				return errS
			}
			slog.Debug("failed to send email but saved to outgoing")
		}
		return err
	}

	if messageDBService != nil {
		if _, err := messageDBService.AddToSentEmails(*outgoing); err != nil {
			slog.Error("failed to save sent email", slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

func mergedPayload(payload map[string]string) map[string]string {
	if payload == nil {
		payload = map[string]string{}
	}
	for k, v := range GlobalTemplateInfos {
		payload[k] = v
	}
	return payload
}

// SendSubmissionConfirmationEmail sends the intake confirmation message.
// Callers treat failures as non-fatal.
func SendSubmissionConfirmationEmail(to string, payload map[string]string) error {
	payload = mergedPayload(payload)

	subject, content, err := templates.GetSubmissionConfirmationEmail(payload)
	if err != nil {
		return err
	}

	outgoing := messagingTypes.OutgoingEmail{
		MessageType: messagingTypes.EMAIL_TYPE_SUBMISSION_CONFIRMATION,
		To:          []string{to},
		Subject:     subject,
		Content:     content,
		HighPrio:    false,
	}
	return sendOrPark(&outgoing)
}

// SendStatusUpdateEmail notifies a submitter that their story was approved
// or rejected.
func SendStatusUpdateEmail(to string, status string, payload map[string]string) error {
	payload = mergedPayload(payload)

	subject, content, err := templates.GetStatusUpdateEmail(status, payload)
	if err != nil {
		return err
	}

	outgoing := messagingTypes.OutgoingEmail{
		MessageType: messagingTypes.EMAIL_TYPE_STATUS_UPDATE,
		To:          []string{to},
		Subject:     subject,
		Content:     content,
		HighPrio:    false,
	}
	return sendOrPark(&outgoing)
}
