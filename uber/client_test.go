package uber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Credentials {
	return Credentials{
		ClientID:     "test-client-id",
		ServerToken:  "test-server-token",
		ClientSecret: "test-client-secret",
		RedirectURI:  "https://example.com/callback",
	}
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		creds   Credentials
		wantErr error
	}{
		{
			name:  "valid credentials",
			creds: testCreds(),
		},
		{
			name: "missing client ID",
			creds: Credentials{
				ServerToken: "test-server-token",
			},
			wantErr: ErrMissingClientID,
		},
		{
			name: "missing server token",
			creds: Credentials{
				ClientID: "test-client-id",
			},
			wantErr: ErrMissingServerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.creds, logger)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
			assert.Equal(t, defaultAPIURL, client.apiURL)
			assert.Equal(t, defaultAuthURL, client.authURL)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with http client", func(t *testing.T) {
		custom := &http.Client{}
		client, err := NewClient(testCreds(), logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("with base URLs", func(t *testing.T) {
		client, err := NewClient(testCreds(), logger,
			WithAPIURL("http://localhost:9000/v1/"),
			WithAuthURL("http://localhost:9001/oauth/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/v1", client.apiURL)
		assert.Equal(t, "http://localhost:9001/oauth", client.authURL)
	})
}

func TestProducts(t *testing.T) {
	logger := zerolog.Nop()

	var requests int
	var gotPath, gotAuth string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	result, err := client.Products(context.Background(), 37.7759, -122.4194)
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(result))

	assert.Equal(t, 1, requests)
	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "Token test-server-token", gotAuth)

	// Exactly the two coordinates, nothing else.
	assert.Len(t, gotQuery, 2)
	assert.Equal(t, "37.7759", gotQuery.Get("latitude"))
	assert.Equal(t, "-122.4194", gotQuery.Get("longitude"))
}

func TestPriceEstimate(t *testing.T) {
	logger := zerolog.Nop()

	var gotPath string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"prices":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	_, err = client.PriceEstimate(context.Background(), 37.7759, -122.4194, 37.8044, -122.2712)
	require.NoError(t, err)

	assert.Equal(t, "/estimates/price", gotPath)
	assert.Len(t, gotQuery, 4)
	assert.Equal(t, "37.7759", gotQuery.Get("start_latitude"))
	assert.Equal(t, "-122.4194", gotQuery.Get("start_longitude"))
	assert.Equal(t, "37.8044", gotQuery.Get("end_latitude"))
	assert.Equal(t, "-122.2712", gotQuery.Get("end_longitude"))
}

func TestTimeEstimate(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name         string
		opt          TimeEstimateParams
		wantCustomer string
		wantProduct  string
	}{
		{
			name: "no optional parameters",
		},
		{
			name:         "customer only",
			opt:          TimeEstimateParams{CustomerUUID: "cust-1"},
			wantCustomer: "cust-1",
		},
		{
			name:        "product only",
			opt:         TimeEstimateParams{ProductID: "prod-1"},
			wantProduct: "prod-1",
		},
		{
			// Both must be sent when both are supplied.
			name:         "customer and product",
			opt:          TimeEstimateParams{CustomerUUID: "cust-1", ProductID: "prod-1"},
			wantCustomer: "cust-1",
			wantProduct:  "prod-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.Write([]byte(`{"times":[]}`))
			}))
			defer server.Close()

			client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
			require.NoError(t, err)

			_, err = client.TimeEstimate(context.Background(), 37.7759, -122.4194, tt.opt)
			require.NoError(t, err)

			assert.Equal(t, "37.7759", gotQuery.Get("start_latitude"))
			assert.Equal(t, "-122.4194", gotQuery.Get("start_longitude"))

			if tt.wantCustomer != "" {
				assert.Equal(t, tt.wantCustomer, gotQuery.Get("customer_uuid"))
			} else {
				assert.NotContains(t, gotQuery, "customer_uuid")
			}
			if tt.wantProduct != "" {
				assert.Equal(t, tt.wantProduct, gotQuery.Get("product_id"))
			} else {
				assert.NotContains(t, gotQuery, "product_id")
			}
		})
	}
}

func TestPromotions(t *testing.T) {
	logger := zerolog.Nop()

	var gotPath string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	_, err = client.Promotions(context.Background(), 37.7759, -122.4194, 37.8044, -122.2712)
	require.NoError(t, err)

	assert.Equal(t, "/promotions", gotPath)
	assert.Len(t, gotQuery, 4)
}

func TestAuthorizeURL(t *testing.T) {
	logger := zerolog.Nop()

	client, err := NewClient(testCreds(), logger)
	require.NoError(t, err)

	t.Run("scopes joined in input order, no state", func(t *testing.T) {
		raw := client.AuthorizeURL([]string{"profile", "history"}, "", "")

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "/oauth/authorize", u.Path)

		q := u.Query()
		assert.Equal(t, "test-client-id", q.Get("client_id"))
		assert.Equal(t, "code", q.Get("response_type"))
		assert.Equal(t, "profile,history", q.Get("scopes"))
		assert.NotContains(t, q, "state")
	})

	t.Run("state included when set", func(t *testing.T) {
		raw := client.AuthorizeURL([]string{"profile"}, "nonce-1", "")

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "nonce-1", u.Query().Get("state"))
	})

	t.Run("explicit response type", func(t *testing.T) {
		raw := client.AuthorizeURL(nil, "", "token")

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "token", u.Query().Get("response_type"))
	})
}

func TestAccessToken(t *testing.T) {
	logger := zerolog.Nop()

	var requests int
	var gotPath string
	var gotForm url.Values
	var gotUser, gotPass string
	var gotBasic bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotUser, gotPass, gotBasic = r.BasicAuth()
		w.Write([]byte(`{"access_token":"at-1"}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAuthURL(server.URL))
	require.NoError(t, err)

	result, err := client.AccessToken(context.Background(), "abc123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"at-1"}`, string(result))

	assert.Equal(t, 1, requests)
	assert.Equal(t, "/token", gotPath)
	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "abc123", gotForm.Get("code"))
	assert.Equal(t, "test-client-id", gotForm.Get("client_id"))
	assert.Equal(t, "test-client-secret", gotForm.Get("client_secret"))
	assert.Equal(t, "https://example.com/callback", gotForm.Get("redirect_uri"))

	assert.True(t, gotBasic)
	assert.Equal(t, "test-client-id", gotUser)
	assert.Equal(t, "test-client-secret", gotPass)
}

func TestRefreshToken(t *testing.T) {
	logger := zerolog.Nop()

	var gotForm url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(`{"access_token":"at-2"}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAuthURL(server.URL))
	require.NoError(t, err)

	_, err = client.RefreshToken(context.Background(), "rt-1")
	require.NoError(t, err)

	assert.Equal(t, "rt-1", gotForm.Get("refresh_token"))
	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.NotContains(t, gotForm, "code")
}

func TestRevokeToken(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("sends token with credentials", func(t *testing.T) {
		var gotPath string
		var gotForm url.Values

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client, err := NewClient(testCreds(), logger, WithAuthURL(server.URL))
		require.NoError(t, err)

		_, err = client.RevokeToken(context.Background(), "at-1")
		require.NoError(t, err)

		assert.Equal(t, "/revoke", gotPath)
		assert.Equal(t, "at-1", gotForm.Get("token"))
		assert.Equal(t, "test-client-id", gotForm.Get("client_id"))
		assert.NotContains(t, gotForm, "grant_type")
		assert.NotContains(t, gotForm, "redirect_uri")
	})

	t.Run("missing client secret", func(t *testing.T) {
		creds := testCreds()
		creds.ClientSecret = ""

		client, err := NewClient(creds, logger)
		require.NoError(t, err)

		_, err = client.RevokeToken(context.Background(), "at-1")
		require.ErrorIs(t, err, ErrMissingClientSecret)
	})
}

func TestOAuthCredentialValidation(t *testing.T) {
	logger := zerolog.Nop()

	creds := testCreds()
	creds.RedirectURI = ""

	client, err := NewClient(creds, logger)
	require.NoError(t, err)

	_, err = client.AccessToken(context.Background(), "abc123")
	require.ErrorIs(t, err, ErrMissingRedirectURI)

	_, err = client.RefreshToken(context.Background(), "rt-1")
	require.ErrorIs(t, err, ErrMissingRedirectURI)

	// Revocation does not need the redirect URI.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err = NewClient(creds, logger, WithAuthURL(server.URL))
	require.NoError(t, err)

	_, err = client.RevokeToken(context.Background(), "at-1")
	require.NoError(t, err)
}

func TestTransportError(t *testing.T) {
	logger := zerolog.Nop()

	// Point the client at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	_, err = client.Products(context.Background(), 37.7759, -122.4194)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Err)
}

func TestStatusError(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	_, err = client.Products(context.Background(), 37.7759, -122.4194)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid token")
	assert.True(t, statusErr.IsUnauthorized())
	assert.False(t, statusErr.IsNotFound())
	assert.False(t, statusErr.IsRateLimited())
}

func TestDecodeError(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client, err := NewClient(testCreds(), logger, WithAPIURL(server.URL))
	require.NoError(t, err)

	_, err = client.Products(context.Background(), 37.7759, -122.4194)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Body, "not json")
}

func TestErrorMessages(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		err := &TransportError{Err: errors.New("connection refused")}
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("status", func(t *testing.T) {
		err := &StatusError{StatusCode: 404, Body: "not found"}
		assert.Equal(t, "uber: API request failed with status 404: not found", err.Error())
	})
}
