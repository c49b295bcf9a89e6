package utils

// environment variables
const (
	PORT           = "PORT"
	MONGO_URI      = "MONGO_URI"
	MONGO_DB       = "MONGO_DB"
	ADMIN_USERNAME = "ADMIN_USERNAME"
	ADMIN_PASSWORD = "ADMIN_PASSWORD"
	SESSION_KEY    = "SESSION_KEY"
	SMTP_HOST      = "SMTP_HOST"
	SMTP_PORT      = "SMTP_PORT"
	SMTP_USER      = "SMTP_USER"
	SMTP_PASS      = "SMTP_PASS"
	SMTP_FROM      = "SMTP_FROM"
)

// user-facing messages
const (
	MSG_USER_REGISTERED       = "User registered successfully"
	MSG_USER_EXISTS           = "User already exists"
	MSG_EMAIL_REGISTERED      = "Email already registered"
	MSG_CANNOT_REGISTER_ADMIN = "Cannot register as admin"
	MSG_INVALID_CREDENTIALS   = "Invalid username or password"
	MSG_LOGIN_REQUIRED        = "Login required"
	MSG_ADMIN_ONLY_QUIZ       = "Unauthorized: Only admin can create quiz"
	MSG_UNAUTHORIZED          = "Unauthorized"
	MSG_LOGGED_OUT            = "Logged out successfully"
	MSG_EMAIL_REQUIRED        = "Email is required"
	MSG_NO_ACCOUNT_FOR_EMAIL  = "No account found with this email address"
	MSG_OTP_SENT              = "OTP sent to your email address"
	MSG_OTP_VERIFIED          = "OTP verified successfully"
	MSG_OTP_INVALID           = "Invalid or expired OTP"
	MSG_PASSWORD_RESET        = "Password reset successfully"
	MSG_USER_NOT_FOUND        = "User not found"
	MSG_QUIZ_CREATED          = "Quiz created successfully"
	MSG_QUIZ_NOT_FOUND        = "Quiz not found"
	MSG_RESULT_SUBMITTED      = "Result submitted successfully"
	MSG_PROFILE_SAVED         = "Profile saved successfully"
	MSG_PROFILE_UPDATED       = "Profile updated successfully"
	MSG_INVALID_BODY          = "Invalid request body"
	MSG_TOO_MANY_REQUESTS     = "Too many requests. Please try again later."
)
