package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const providerTimeout = 5 * time.Second

// Profile is the subset of the auth provider's user object we consume.
type Profile struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	PrimaryEmailID string         `json:"primary_email_address_id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// ProviderClient calls the auth provider's management API to resolve a
// subject id into profile fields.
type ProviderClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	return &ProviderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: providerTimeout},
	}
}

func (c *ProviderClient) Profile(ctx context.Context, externalID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(externalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch profile: provider returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &profile, nil
}

// PrimaryEmail returns the profile's primary email address, falling back
// to the first listed address when the primary marker does not resolve.
// An empty string with nil error means the profile simply has no email.
func (c *ProviderClient) PrimaryEmail(ctx context.Context, externalID string) (string, error) {
	profile, err := c.Profile(ctx, externalID)
	if err != nil {
		return "", err
	}

	for _, addr := range profile.EmailAddresses {
		if addr.ID == profile.PrimaryEmailID {
			return addr.EmailAddress, nil
		}
	}
	if len(profile.EmailAddresses) > 0 {
		return profile.EmailAddresses[0].EmailAddress, nil
	}

	return "", nil
}
