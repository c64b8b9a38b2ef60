package types

type MessagingConfigs struct {
	// Path to the yaml file with the SMTP server pool definition
	SmtpServerConfigPath string `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`

	// Values available to every email template (e.g. team name, site URL)
	GlobalEmailTemplateConstants map[string]string `json:"global_email_template_constants" yaml:"global_email_template_constants"`
}
