package handler

// Log messages
const (
	LogMsgPackStatusFailed = "Pack status failed"
	LogMsgClientGone       = "Client went away before the open completed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgValidationFailed = "Invalid request"
)
