package response

// Business status codes.
const (
	CodeSuccess = 0
	CodeError   = 1

	// Business/account module errors 100xx
	ErrBusinessExists   = 10001
	ErrBusinessNotFound = 10002
	ErrAuthFailed       = 10003
	ErrTokenInvalid     = 10004
	ErrNoPermission     = 10005

	// Promotion module errors 200xx
	ErrPromotionNotFound = 20001
	ErrPromotionRedeemed = 20002
	ErrBoostInvalid      = 20003

	// Generic entity errors 300xx
	ErrRecordNotFound = 30001

	// System errors 500xx
	ErrServerInternal   = 50001
	ErrInvalidParam     = 50002
	ErrTooManyRequests  = 50003
	ErrStorageUnhealthy = 50004
)
