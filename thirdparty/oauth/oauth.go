package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/model"
	"golang.org/x/oauth2"
)

// IdentityProvider exchanges an authorization code for the identity of the
// account that granted it.
type IdentityProvider interface {
	Exchange(ctx context.Context, provider, code string) (*model.ProviderIdentity, error)
}

type HTTPProvider struct {
	providers map[string]config.OAuthProvider
	client    *http.Client
}

func NewHTTPProvider(providers map[string]config.OAuthProvider, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPProvider{providers: providers, client: client}
}

func oauthConfig(p config.OAuthProvider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.AuthorizeURL,
			TokenURL:  p.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: p.RedirectURL,
		Scopes:      p.Scopes,
	}
}

// AuthorizeURL builds the provider consent URL carrying the given state.
func AuthorizeURL(p config.OAuthProvider, state string) string {
	return oauthConfig(p).AuthCodeURL(state)
}

func (h *HTTPProvider) Exchange(ctx context.Context, provider, code string) (*model.ProviderIdentity, error) {
	p, ok := h.providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured", provider)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, h.client)
	cfg := oauthConfig(p)
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	info, err := h.userInfo(ctx, cfg.Client(ctx, token), p.UserInfoURL)
	if err != nil {
		return nil, err
	}

	identity := &model.ProviderIdentity{
		Provider:   provider,
		ProviderID: firstString(info, "id", "sub"),
		Name:       firstString(info, "name", "login", "username"),
		Email:      firstString(info, "email"),
	}
	if identity.ProviderID == "" {
		return nil, fmt.Errorf("provider %q returned no account id", provider)
	}
	return identity, nil
}

// userInfo fetches the profile with the token-bearing client. Numbers are
// kept as json.Number so large account ids survive intact.
func (h *HTTPProvider) userInfo(ctx context.Context, client *http.Client, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("user info: status %d: %s", resp.StatusCode, string(body))
	}

	info := make(map[string]any)
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("user info: %w", err)
	}
	return info, nil
}

// firstString returns the first non-empty value among keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
