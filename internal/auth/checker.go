package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	LoggedCustomer(ctx context.Context, token string) (int, error)
}
