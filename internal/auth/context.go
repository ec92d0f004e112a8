package auth

import "context"

type customerIDCtxKey struct{}

func ContextWithCustomerID(ctx context.Context, customerID int) context.Context {
	return context.WithValue(ctx, customerIDCtxKey{}, customerID)
}

func CustomerIDFromContext(ctx context.Context) (int, bool) {
	customerID, ok := ctx.Value(customerIDCtxKey{}).(int)
	return customerID, ok
}
