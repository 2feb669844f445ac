package middleware

import (
	"context"
	"errors"
)

var ErrCompanyIDRequired = errors.New("company ID is required")

type companyIDKey struct{}

// GetCompanyID returns the company every request is scoped to
func GetCompanyID(ctx context.Context) (string, error) {
	companyID, ok := ctx.Value(companyIDKey{}).(string)
	if !ok || companyID == "" {
		return "", ErrCompanyIDRequired
	}
	return companyID, nil
}

// WithCompanyID returns ctx scoped to companyID
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey{}, companyID)
}
