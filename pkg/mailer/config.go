package mailer

// Config holds the settings shared by every provider.
type Config struct {
	From     string `env:"MAIL_FROM" envDefault:"NN1 Dev Club <club@nn1.dev>"`
	Layout   string `env:"MAIL_LAYOUT" envDefault:"base.html"`
	Provider string `env:"MAIL_PROVIDER" envDefault:"resend"`
}
