package ses

// Config holds Amazon SES provider configuration.
// Static keys are optional; without them the default AWS credential chain is used.
type Config struct {
	Region          string `env:"AWS_REGION" envDefault:"eu-west-2"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	// ConfigurationSet is attached to every message when set.
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
	From             string `env:"MAIL_FROM"`
}
