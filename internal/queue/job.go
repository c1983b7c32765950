// Package queue moves outbound email off the request path. Auth flows
// publish jobs to a durable RabbitMQ queue; a background consumer delivers
// them through a delegate mailer.
package queue

const EmailQueueName = "email.outbound"

const (
	EmailKindVerification  = "verification"
	EmailKindPasswordReset = "password_reset"
)

// EmailJob is the message payload for the email.outbound queue. It carries
// everything a consumer needs to render and deliver the mail without
// querying the primary database.
type EmailJob struct {
	Kind      string `json:"kind"`
	To        string `json:"to"`
	OTP       string `json:"otp,omitempty"`
	MagicLink string `json:"magic_link,omitempty"`
	ResetLink string `json:"reset_link,omitempty"`
}
