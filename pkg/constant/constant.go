package constant

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleClient = "client"
)

const (
	// AccessTokenExpirySeconds is echoed to clients as expires_in.
	AccessTokenExpirySeconds = 900

	VerificationTokenTTLMinutes = 15
	ResetTokenTTLMinutes        = 60
)

// Generic response messages. Enumeration-sensitive flows must return the
// same message on every internal branch.
const (
	MsgSignupSuccess      = "account created, please verify your email"
	MsgLogoutSuccess      = "logged out"
	MsgForgotPassword     = "if the email is registered, a password reset link has been sent"
	MsgResetSuccess       = "password has been reset"
	MsgVerifySuccess      = "email verified"
	MsgResendVerification = "if the email is registered, a verification email has been sent"
)
