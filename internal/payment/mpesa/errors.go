package mpesa

import "errors"

var (
	// ErrInvalidConfig is returned when the client is constructed with
	// incomplete credentials.
	ErrInvalidConfig = errors.New("invalid mpesa configuration")

	// ErrTokenRequestFailed is returned when the OAuth token fetch fails.
	ErrTokenRequestFailed = errors.New("failed to obtain mpesa access token")

	// ErrPushRejected is returned when the gateway rejects the STK push.
	ErrPushRejected = errors.New("stk push rejected by gateway")

	// ErrGatewayUnavailable is returned on transport-level failures.
	ErrGatewayUnavailable = errors.New("mpesa gateway unavailable")
)
