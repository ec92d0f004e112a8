package auth

import "context"

// LoginTestChecker is a Checker test double, sessions held in a plain map.
type LoginTestChecker struct {
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) LoggedCustomer(_ context.Context, token string) (int, error) {
	customerID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrNotLoggedIn
	}
	return customerID, nil
}
