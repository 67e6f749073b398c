package uber

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultAPIURL  = "https://api.uber.com/v1"
	defaultAuthURL = "https://login.uber.com/oauth"

	// The upstream v1 token endpoint accepts the same grant type for code
	// exchange and refresh; the wire contract is preserved here.
	grantTypeAuthorizationCode = "authorization_code"

	defaultResponseType = "code"
)

// Client wraps the Uber API. All state is set at construction; a Client is
// safe for concurrent use.
type Client struct {
	creds      Credentials
	apiURL     string
	authURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Uber client. The client ID and server token are
// required; the client secret and redirect URI are validated by the OAuth
// operations that need them.
func NewClient(creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if creds.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if creds.ServerToken == "" {
		return nil, ErrMissingServerToken
	}

	client := &Client{
		creds:      creds,
		apiURL:     defaultAPIURL,
		authURL:    defaultAuthURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.apiURL = strings.TrimRight(client.apiURL, "/")
	client.authURL = strings.TrimRight(client.authURL, "/")

	return client, nil
}

// Products lists the products available at the given location.
func (c *Client) Products(ctx context.Context, latitude, longitude float64) (Result, error) {
	params := url.Values{
		"latitude":  {coord(latitude)},
		"longitude": {coord(longitude)},
	}
	return c.getJSON(ctx, "products", params)
}

// PriceEstimate returns the fare estimate between two sets of coordinates.
func (c *Client) PriceEstimate(ctx context.Context, startLat, startLng, endLat, endLng float64) (Result, error) {
	params := url.Values{
		"start_latitude":  {coord(startLat)},
		"start_longitude": {coord(startLng)},
		"end_latitude":    {coord(endLat)},
		"end_longitude":   {coord(endLng)},
	}
	return c.getJSON(ctx, "estimates/price", params)
}

// TimeEstimate returns pickup ETAs for the given location. The optional
// customer UUID and product ID are attached only when set; supplying both
// sends both.
func (c *Client) TimeEstimate(ctx context.Context, startLat, startLng float64, opt TimeEstimateParams) (Result, error) {
	params := url.Values{
		"start_latitude":  {coord(startLat)},
		"start_longitude": {coord(startLng)},
	}
	if opt.CustomerUUID != "" {
		params.Set("customer_uuid", opt.CustomerUUID)
	}
	if opt.ProductID != "" {
		params.Set("product_id", opt.ProductID)
	}
	return c.getJSON(ctx, "estimates/time", params)
}

// Promotions returns the promotions available to a new user for a trip
// between the given coordinates.
func (c *Client) Promotions(ctx context.Context, startLat, startLng, endLat, endLng float64) (Result, error) {
	params := url.Values{
		"start_latitude":  {coord(startLat)},
		"start_longitude": {coord(startLng)},
		"end_latitude":    {coord(endLat)},
		"end_longitude":   {coord(endLng)},
	}
	return c.getJSON(ctx, "promotions", params)
}

// AuthorizeURL returns the URL to redirect a user to in order to begin the
// OAuth login flow. Scopes are comma-joined in the given order; state is
// omitted when empty; responseType defaults to "code". No HTTP call is made.
func (c *Client) AuthorizeURL(scopes []string, state, responseType string) string {
	if responseType == "" {
		responseType = defaultResponseType
	}
	params := url.Values{
		"client_id":     {c.creds.ClientID},
		"response_type": {responseType},
		"scopes":        {strings.Join(scopes, ",")},
	}
	if state != "" {
		params.Set("state", state)
	}
	return buildURL(c.authURL, "authorize", params)
}

// AccessToken exchanges the code from an OAuth callback to the redirect URI
// for an access token usable on behalf of the authorized user.
func (c *Client) AccessToken(ctx context.Context, code string) (Result, error) {
	if err := c.requireOAuthCreds(true); err != nil {
		return nil, err
	}
	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"grant_type":    {grantTypeAuthorizationCode},
		"redirect_uri":  {c.creds.RedirectURI},
		"code":          {code},
	}
	return c.postForm(ctx, "token", form)
}

// RefreshToken exchanges a refresh token from a previous AccessToken
// response for a new access token with a later expiration.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (Result, error) {
	if err := c.requireOAuthCreds(true); err != nil {
		return nil, err
	}
	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"grant_type":    {grantTypeAuthorizationCode},
		"redirect_uri":  {c.creds.RedirectURI},
		"refresh_token": {refreshToken},
	}
	return c.postForm(ctx, "token", form)
}

// RevokeToken revokes an access or refresh token.
func (c *Client) RevokeToken(ctx context.Context, token string) (Result, error) {
	if err := c.requireOAuthCreds(false); err != nil {
		return nil, err
	}
	form := url.Values{
		"client_id":     {c.creds.ClientID},
		"client_secret": {c.creds.ClientSecret},
		"token":         {token},
	}
	return c.postForm(ctx, "revoke", form)
}

// requireOAuthCreds validates the credentials needed by the OAuth
// operations before any network I/O.
func (c *Client) requireOAuthCreds(needRedirect bool) error {
	if c.creds.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	if needRedirect && c.creds.RedirectURI == "" {
		return ErrMissingRedirectURI
	}
	return nil
}

// getJSON performs a GET against a ride data endpoint, authenticated with
// the server token, and returns the decoded body.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values) (Result, error) {
	rs := requestSpec{endpoint: endpoint, method: http.MethodGet, params: params}
	requestURL := rs.url(c.apiURL)

	req, err := http.NewRequestWithContext(ctx, rs.method, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.creds.ServerToken)

	c.logger.Debug().Str("method", http.MethodGet).Str("url", requestURL).Msg("Making Uber API request")

	return c.do(req)
}

// postForm performs a POST against an OAuth endpoint with a form-encoded
// body and HTTP Basic application credentials.
func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) (Result, error) {
	rs := requestSpec{endpoint: endpoint, method: http.MethodPost, params: form}
	requestURL := rs.url(c.authURL)

	req, err := http.NewRequestWithContext(ctx, rs.method, requestURL, strings.NewReader(rs.body()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)

	c.logger.Debug().Str("method", http.MethodPost).Str("url", requestURL).Msg("Making Uber OAuth request")

	return c.do(req)
}

// do sends the request and maps the outcome onto the error taxonomy:
// connection failures become TransportError, non-2xx responses become
// StatusError, malformed bodies become DecodeError.
func (c *Client) do(req *http.Request) (Result, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{Err: err, Body: string(body)}
	}

	return result, nil
}
