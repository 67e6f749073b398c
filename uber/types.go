package uber

import "encoding/json"

// Credentials holds the application credentials issued by Uber. All fields
// are copied into the Client at construction and never mutated afterwards.
type Credentials struct {
	// ClientID identifies the registered application.
	ClientID string
	// ServerToken authenticates server-side requests to the ride data
	// endpoints (products, estimates, promotions).
	ServerToken string
	// ClientSecret authenticates the application on the OAuth token
	// endpoints. Required only for AccessToken, RefreshToken and
	// RevokeToken.
	ClientSecret string
	// RedirectURI is the callback registered for the OAuth flow. Its base
	// must match the redirect_uri used when the application was registered.
	RedirectURI string
}

// Result is the decoded JSON returned by an API call. The client validates
// that the body is well-formed JSON but does not interpret its shape; it is
// passed through to the caller as-is.
type Result = json.RawMessage

// TimeEstimateParams holds the optional parameters accepted by the
// estimates/time endpoint. Empty fields are omitted from the request; when
// both are set, both are sent.
type TimeEstimateParams struct {
	// CustomerUUID restricts the estimate to a specific rider.
	CustomerUUID string
	// ProductID restricts the estimate to a specific product type.
	ProductID string
}
