package common

// Default mount points of the account and product APIs. Both the server
// and the CLI client start from these values.
const (
	AccountsMount = "/signup"
	ProductsMount = "/product"
)

// RetryAfterHeader carries the remaining cooldown on throttled replies.
const RetryAfterHeader = "Retry-After"
