package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ResolveTemplate parses and executes a template definition with the given
// content infos.
func ResolveTemplate(tempName string, templateDef string, contentInfos map[string]string) (content string, err error) {
	if strings.TrimSpace(templateDef) == "" {
		return "", errors.New("empty template `" + tempName + "`")
	}
	tmpl, err := template.New(tempName).Parse(templateDef)
	if err != nil {
		err = fmt.Errorf("error when parsing template %s: %v", tempName, err)
		return "", err
	}
	var tpl bytes.Buffer

	err = tmpl.Execute(&tpl, contentInfos)
	if err != nil {
		err = fmt.Errorf("error during executing template %s: %v", tempName, err)
		return "", err
	}
	return tpl.String(), nil
}

const submissionConfirmationSubject = "Thank you for your submission"

const submissionConfirmationTemplate = `<p>Dear {{.firstName}} {{.lastName}},</p>
<p>Thank you for submitting your story. We have received your submission and will review it shortly.</p>
<p>Submission details:</p>
<ul>
	<li>Name: {{.firstName}} {{.lastName}}</li>
	<li>Email: {{.email}}</li>
	<li>Zip code: {{.zipCode}}</li>
	<li>Submission type: {{.submissionType}}</li>
	<li>Submitted at: {{.submittedAt}}</li>
	<li>Consent agreed: {{.consentAgreed}}</li>
	<li>Continued engagement: {{.continuedEngagement}}</li>
</ul>
{{if .procQuestion1}}<p>Response 1: {{.procQuestion1}}</p>{{end}}
{{if .procQuestion2}}<p>Response 2: {{.procQuestion2}}</p>{{end}}
<p>Our team will review your submission and get back to you within 2-3 business days.</p>
<p>Best regards,<br>The {{.teamName}} team</p>`

const statusApprovedTemplate = `<p>Dear participant,</p>
<p>Your submission (ID: {{.submissionId}}) has been approved.</p>
<p>Congratulations! Your story has been approved and may be featured in our upcoming project.</p>
<p>Next steps:</p>
<ul>
	<li>You may be contacted for additional information</li>
	<li>Check your email for updates on the project timeline</li>
</ul>
<p>Best regards,<br>The {{.teamName}} team</p>`

const statusRejectedTemplate = `<p>Dear participant,</p>
<p>Your submission (ID: {{.submissionId}}) has been reviewed.</p>
<p>Thank you for your submission. While we cannot use your story for this project, we appreciate your participation.</p>
<p>Best regards,<br>The {{.teamName}} team</p>`

// GetSubmissionConfirmationEmail renders the confirmation message sent right
// after intake.
func GetSubmissionConfirmationEmail(payload map[string]string) (subject string, content string, err error) {
	content, err = ResolveTemplate("submission-confirmation", submissionConfirmationTemplate, payload)
	if err != nil {
		return "", "", err
	}
	return submissionConfirmationSubject, content, nil
}

// GetStatusUpdateEmail renders the message for an approved or rejected
// submission.
func GetStatusUpdateEmail(status string, payload map[string]string) (subject string, content string, err error) {
	templateDef := statusRejectedTemplate
	if status == "approved" {
		templateDef = statusApprovedTemplate
	}

	content, err = ResolveTemplate("status-update-"+status, templateDef, payload)
	if err != nil {
		return "", "", err
	}
	subject = "Submission " + strings.ToUpper(status[:1]) + status[1:]
	return subject, content, nil
}
