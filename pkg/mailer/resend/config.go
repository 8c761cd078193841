package resend

// MaxBatchSize is the number of emails the Resend batch endpoint accepts per call.
// https://resend.com/docs/api-reference/emails/send-batch-emails
const MaxBatchSize = 100

// Config holds Resend email provider configuration.
type Config struct {
	APIKey string `env:"API_KEY_RESEND"`
	// BaseURL overrides the API endpoint; empty means the SDK default.
	BaseURL string `env:"RESEND_BASE_URL"`
	// From is used when an email does not set its own sender.
	From string `env:"MAIL_FROM"`
}
