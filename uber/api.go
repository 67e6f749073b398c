package uber

import (
	"context"
)

// API defines the interface for Uber operations.
type API interface {
	// Products lists the products available at a location
	Products(ctx context.Context, latitude, longitude float64) (Result, error)

	// PriceEstimate returns the fare estimate between two coordinates
	PriceEstimate(ctx context.Context, startLat, startLng, endLat, endLng float64) (Result, error)

	// TimeEstimate returns pickup ETAs for a location
	TimeEstimate(ctx context.Context, startLat, startLng float64, opt TimeEstimateParams) (Result, error)

	// Promotions returns promotions available for a trip
	Promotions(ctx context.Context, startLat, startLng, endLat, endLng float64) (Result, error)

	// AuthorizeURL builds the OAuth authorization redirect URL
	AuthorizeURL(scopes []string, state, responseType string) string

	// AccessToken exchanges an authorization code for an access token
	AccessToken(ctx context.Context, code string) (Result, error)

	// RefreshToken exchanges a refresh token for a new access token
	RefreshToken(ctx context.Context, refreshToken string) (Result, error)

	// RevokeToken revokes an access or refresh token
	RevokeToken(ctx context.Context, token string) (Result, error)
}

// compile-time interface check
var _ API = (*Client)(nil)
