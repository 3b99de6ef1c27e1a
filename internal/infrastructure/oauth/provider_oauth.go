package oauth

import (
	"context"
	"net/http"
	"time"

	"launch-control-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ProviderOAuth builds authenticated HTTP clients for the launch provider
type ProviderOAuth struct {
	staticToken string
	config      *clientcredentials.Config
	logger      logger.Logger
}

// NewProviderOAuth creates a new provider auth handler. Client credentials take
// precedence over a static token; with neither, requests go out unauthenticated.
func NewProviderOAuth(staticToken, clientID, clientSecret, tokenURL string, logger logger.Logger) *ProviderOAuth {
	var config *clientcredentials.Config
	if clientID != "" && clientSecret != "" && tokenURL != "" {
		config = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
	}

	return &ProviderOAuth{
		staticToken: staticToken,
		config:      config,
		logger:      logger,
	}
}

// GetTokenSource returns the configured token source, or nil when auth is disabled
func (o *ProviderOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	switch {
	case o.config != nil:
		return o.config.TokenSource(ctx)
	case o.staticToken != "":
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: o.staticToken,
			TokenType:   "Bearer",
		})
	default:
		return nil
	}
}

// HTTPClient returns a client with the given timeout that attaches provider credentials when configured
func (o *ProviderOAuth) HTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	tokenSource := o.GetTokenSource(ctx)
	if tokenSource == nil {
		o.logger.Debug("Launch provider auth disabled")
		return &http.Client{Timeout: timeout}
	}

	client := oauth2.NewClient(ctx, tokenSource)
	client.Timeout = timeout
	return client
}
