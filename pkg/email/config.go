package email

// Config holds email delivery configuration.
// Postmark tokens are optional so development environments can run with the
// log sender; SenderEmail establishes the sender identity for outbound mail.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@yettapastries.com"`
}
