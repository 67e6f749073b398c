// Package uber provides a client for the Uber v1 REST API.
//
// The client covers the ride data endpoints (products, price estimates,
// time estimates, promotions) and the OAuth authorization-code flow
// (authorize URL, token exchange, token refresh, token revocation).
//
// # Usage
//
// Create a client with your application credentials:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := uber.NewClient(uber.Credentials{
//		ClientID:     "your-client-id",
//		ServerToken:  "your-server-token",
//		ClientSecret: "your-client-secret",
//		RedirectURI:  "https://example.com/callback",
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	products, err := client.Products(ctx, 37.7759, -122.4194)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Results are returned as raw JSON; the client validates the body but does
// not interpret its shape.
//
// # Wire format
//
// GET requests carry their parameters as a URL query string. POST requests
// to the OAuth endpoints carry the same mapping as an
// application/x-www-form-urlencoded body with HTTP Basic application
// credentials. Ride data GETs authenticate with the server token in a
// "Token" authorization header.
//
// # Error handling
//
// Failures map onto three error types:
//
//   - TransportError: network or connection failure
//   - StatusError: non-2xx response, carries the status code and raw body
//   - DecodeError: response body is not valid JSON
//
// StatusError includes helper methods for classification:
//
//	var statusErr *uber.StatusError
//	if errors.As(err, &statusErr) && statusErr.IsUnauthorized() {
//		// Handle auth failure
//	}
//
// Missing credentials are reported by sentinel errors (ErrMissingClientID
// and friends) before any network call is attempted. The client never
// retries and does not interpret provider error bodies.
package uber
