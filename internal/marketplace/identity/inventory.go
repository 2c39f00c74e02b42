package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	defaultCommunityEndpoint = "https://steamcommunity.com"

	// CS2 app id and the default inventory context.
	csAppId          = 730
	inventoryContext = 2
)

var ErrInventoryPrivate = errors.New("steam inventory is private")

// InventoryItem is a marketable item from the external inventory source.
type InventoryItem struct {
	AssetId  string
	Name     string
	Weapon   string
	Category string
	Rarity   string
	IconUrl  string
	StatTrak bool
}

// InventoryClient reads item metadata from the external catalog. The core
// only consumes it when a seller creates a listing.
type InventoryClient interface {
	FetchInventory(ctx context.Context, steamId string) ([]InventoryItem, error)
}

type SteamInventoryClient struct {
	httpClient *http.Client
	endpoint   string
}

func NewSteamInventoryClient(httpClient *http.Client, opts ...SteamInventoryOption) *SteamInventoryClient {
	client := &SteamInventoryClient{
		httpClient: httpClient,
		endpoint:   defaultCommunityEndpoint,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type SteamInventoryOption func(*SteamInventoryClient)

func WithCommunityEndpoint(endpoint string) SteamInventoryOption {
	return func(c *SteamInventoryClient) {
		c.endpoint = endpoint
	}
}

type inventoryResponse struct {
	Assets []struct {
		AssetId    string `json:"assetid"`
		ClassId    string `json:"classid"`
		InstanceId string `json:"instanceid"`
	} `json:"assets"`
	Descriptions []struct {
		ClassId    string `json:"classid"`
		InstanceId string `json:"instanceid"`
		MarketName string `json:"market_name"`
		IconUrl    string `json:"icon_url"`
		Marketable int    `json:"marketable"`
		Tags       []struct {
			Category          string `json:"category"`
			LocalizedTagName  string `json:"localized_tag_name"`
			InternalName      string `json:"internal_name"`
			LocalizedCategory string `json:"localized_category_name"`
		} `json:"tags"`
	} `json:"descriptions"`
}

func (c *SteamInventoryClient) FetchInventory(ctx context.Context, steamId string) ([]InventoryItem, error) {
	inventoryUrl := fmt.Sprintf("%s/inventory/%s/%d/%d?l=english&count=1000",
		c.endpoint, steamId, csAppId, inventoryContext)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inventoryUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, ErrInventoryPrivate
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory request failed with status %d", resp.StatusCode)
	}

	var inventory inventoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&inventory); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}

	return mapInventory(inventory), nil
}

func mapInventory(inventory inventoryResponse) []InventoryItem {
	type classKey struct {
		classId    string
		instanceId string
	}

	descriptions := make(map[classKey]int, len(inventory.Descriptions))
	for i, desc := range inventory.Descriptions {
		descriptions[classKey{desc.ClassId, desc.InstanceId}] = i
	}

	var items []InventoryItem
	for _, asset := range inventory.Assets {
		idx, found := descriptions[classKey{asset.ClassId, asset.InstanceId}]
		if !found {
			continue
		}

		desc := inventory.Descriptions[idx]
		if desc.Marketable == 0 {
			continue
		}

		item := InventoryItem{
			AssetId: asset.AssetId,
			Name:    desc.MarketName,
			IconUrl: desc.IconUrl,
		}

		for _, tag := range desc.Tags {
			switch tag.Category {
			case "Weapon":
				item.Weapon = tag.LocalizedTagName
			case "Type":
				item.Category = tag.LocalizedTagName
			case "Rarity":
				item.Rarity = tag.LocalizedTagName
			case "Quality":
				if tag.InternalName == "strange" {
					item.StatTrak = true
				}
			}
		}

		items = append(items, item)
	}

	return items
}
