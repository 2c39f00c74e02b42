package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
)

const (
	defaultOpenIDEndpoint = "https://steamcommunity.com/openid/login"
	defaultApiEndpoint    = "https://api.steampowered.com"

	openIDNamespace = "http://specs.openid.net/auth/2.0"
	openIDSelect    = "http://specs.openid.net/auth/2.0/identifier_select"

	claimedIdPrefix = "https://steamcommunity.com/openid/id/"
)

// Provider resolves an authenticated identity from the external identity
// provider. The core trusts the resolved record and performs no
// authentication itself.
type Provider interface {
	AuthURL(returnTo string) string
	ResolveIdentity(ctx context.Context, returnQuery url.Values) (domain.Identity, error)
}

type SteamProvider struct {
	httpClient *http.Client
	apiKey     string

	openIDEndpoint string
	apiEndpoint    string
}

type SteamProviderOption func(*SteamProvider)

func WithEndpoints(openIDEndpoint, apiEndpoint string) SteamProviderOption {
	return func(p *SteamProvider) {
		p.openIDEndpoint = openIDEndpoint
		p.apiEndpoint = apiEndpoint
	}
}

func NewSteamProvider(httpClient *http.Client, apiKey string, opts ...SteamProviderOption) *SteamProvider {
	provider := &SteamProvider{
		httpClient:     httpClient,
		apiKey:         apiKey,
		openIDEndpoint: defaultOpenIDEndpoint,
		apiEndpoint:    defaultApiEndpoint,
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

func (p *SteamProvider) AuthURL(returnTo string) string {
	params := url.Values{
		"openid.ns":         {openIDNamespace},
		"openid.mode":       {"checkid_setup"},
		"openid.return_to":  {returnTo},
		"openid.realm":      {returnTo},
		"openid.identity":   {openIDSelect},
		"openid.claimed_id": {openIDSelect},
	}

	return p.openIDEndpoint + "?" + params.Encode()
}

// ResolveIdentity verifies the OpenID return parameters against Steam and
// fetches the player summary for the verified steam id.
func (p *SteamProvider) ResolveIdentity(ctx context.Context, returnQuery url.Values) (domain.Identity, error) {
	steamId, err := p.verifyReturn(ctx, returnQuery)
	if err != nil {
		return domain.Identity{}, err
	}

	return p.fetchPlayerSummary(ctx, steamId)
}

func (p *SteamProvider) verifyReturn(ctx context.Context, returnQuery url.Values) (string, error) {
	claimedId := returnQuery.Get("openid.claimed_id")
	if !strings.HasPrefix(claimedId, claimedIdPrefix) {
		return "", fmt.Errorf("unexpected claimed id %q", claimedId)
	}

	verification := url.Values{}
	for key, values := range returnQuery {
		verification[key] = values
	}
	verification.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.openIDEndpoint,
		strings.NewReader(verification.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to verify openid return: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read verification response: %w", err)
	}

	if !strings.Contains(string(body), "is_valid:true") {
		return "", fmt.Errorf("openid verification rejected")
	}

	return strings.TrimPrefix(claimedId, claimedIdPrefix), nil
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamId     string `json:"steamid"`
			PersonaName string `json:"personaname"`
			AvatarFull  string `json:"avatarfull"`
			ProfileUrl  string `json:"profileurl"`
		} `json:"players"`
	} `json:"response"`
}

func (p *SteamProvider) fetchPlayerSummary(ctx context.Context, steamId string) (domain.Identity, error) {
	summaryUrl := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v0002/?key=%s&steamids=%s",
		p.apiEndpoint, url.QueryEscape(p.apiKey), url.QueryEscape(steamId))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, summaryUrl, nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to build summary request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to fetch player summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Identity{}, fmt.Errorf("player summary request failed with status %d", resp.StatusCode)
	}

	var summaries playerSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return domain.Identity{}, fmt.Errorf("failed to decode player summary: %w", err)
	}

	if len(summaries.Response.Players) == 0 {
		return domain.Identity{}, fmt.Errorf("no player summary for steam id %s", steamId)
	}

	player := summaries.Response.Players[0]

	return domain.Identity{
		SteamId:    player.SteamId,
		Username:   player.PersonaName,
		Avatar:     player.AvatarFull,
		ProfileUrl: player.ProfileUrl,
	}, nil
}
