package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/carwash/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// CustomerIDKey is the context key for storing the authenticated customer ID.
	CustomerIDKey contextKey = "customer_id"
	// CompanyIDKey is the context key for storing the company (tenant) ID.
	CompanyIDKey contextKey = "company_id"
)

// GetCustomerID extracts the customer ID from the context.
// Returns empty string if not found.
func GetCustomerID(ctx context.Context) string {
	customerID, _ := ctx.Value(CustomerIDKey).(string)
	return customerID
}

// GetCompanyID extracts the company ID from the context.
// Returns empty string if not found, which selects the default catalog.
func GetCompanyID(ctx context.Context) string {
	companyID, _ := ctx.Value(CompanyIDKey).(string)
	return companyID
}

// WithIdentity returns a context carrying the customer and company IDs.
func WithIdentity(ctx context.Context, customerID, companyID string) context.Context {
	ctx = context.WithValue(ctx, CustomerIDKey, customerID)
	return context.WithValue(ctx, CompanyIDKey, companyID)
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns an interceptor that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the customer and company IDs to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				slog.Warn("Token rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithIdentity(ctx, claims.CustomerID, claims.CompanyID), req)
		}
	}
}

// OptionalAuth returns an interceptor that validates JWT tokens if present, but allows
// requests without authentication. Anonymous callers price against the default catalog.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = WithIdentity(ctx, claims.CustomerID, claims.CompanyID)
				}
			}

			return next(ctx, req)
		}
	}
}
