package http

import (
	"strconv"
	"time"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
)

// Monetary values are rendered as fixed-point strings so no precision is
// lost on the wire.

type skinResponse struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Weapon       string    `json:"weapon"`
	Category     string    `json:"category"`
	Rarity       string    `json:"rarity"`
	Wear         string    `json:"wear"`
	Float        float64   `json:"float"`
	Price        string    `json:"price"`
	ImageUrl     string    `json:"imageUrl"`
	StatTrak     bool      `json:"stattrak"`
	SellerId     string    `json:"sellerId"`
	SellerName   string    `json:"sellerName"`
	SellerAvatar string    `json:"sellerAvatar,omitempty"`
	ListedAt     time.Time `json:"listedAt"`
	Collection   string    `json:"collection,omitempty"`
	InspectLink  string    `json:"inspectLink,omitempty"`
	SteamAssetId string    `json:"steamAssetId,omitempty"`
	Status       string    `json:"status"`
}

func toSkinResponse(skin domain.Skin) skinResponse {
	return skinResponse{
		Id:           strconv.Itoa(skin.Id),
		Name:         skin.Name,
		Weapon:       skin.Weapon,
		Category:     skin.Category,
		Rarity:       skin.Rarity,
		Wear:         skin.Wear,
		Float:        skin.FloatValue,
		Price:        skin.Price.StringFixed(2),
		ImageUrl:     skin.ImageUrl,
		StatTrak:     skin.StatTrak,
		SellerId:     strconv.Itoa(skin.SellerId),
		SellerName:   skin.SellerName,
		SellerAvatar: skin.SellerAvatar,
		ListedAt:     skin.ListedAt,
		Collection:   skin.Collection,
		InspectLink:  skin.InspectLink,
		SteamAssetId: skin.SteamAssetId,
		Status:       string(skin.Status),
	}
}

func toSkinResponses(skins []domain.Skin) []skinResponse {
	responses := make([]skinResponse, 0, len(skins))
	for _, skin := range skins {
		responses = append(responses, toSkinResponse(skin))
	}

	return responses
}

type cartItemResponse struct {
	CartItemId string       `json:"cartItemId"`
	AddedAt    time.Time    `json:"addedAt"`
	Skin       skinResponse `json:"skin"`
}

func toCartResponse(items []domain.CartItem) []cartItemResponse {
	responses := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, cartItemResponse{
			CartItemId: strconv.Itoa(item.CartItemId),
			AddedAt:    item.AddedAt,
			Skin:       toSkinResponse(item.Skin),
		})
	}

	return responses
}

type userResponse struct {
	Id             string    `json:"id"`
	SteamId        string    `json:"steamId"`
	Username       string    `json:"username"`
	Avatar         string    `json:"avatar"`
	ProfileUrl     string    `json:"profileUrl,omitempty"`
	Balance        string    `json:"balance"`
	TotalSales     string    `json:"totalSales"`
	TotalPurchases string    `json:"totalPurchases"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		Id:             strconv.Itoa(user.Id),
		SteamId:        user.SteamId,
		Username:       user.Username,
		Avatar:         user.Avatar,
		ProfileUrl:     user.ProfileUrl,
		Balance:        user.Balance.StringFixed(2),
		TotalSales:     user.TotalSales.StringFixed(2),
		TotalPurchases: user.TotalPurchases.StringFixed(2),
		CreatedAt:      user.CreatedAt,
	}
}

type profileResponse struct {
	userResponse
	ActiveListings int `json:"activeListings"`
	TotalSold      int `json:"totalSold"`
}

type transactionResponse struct {
	Id          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	SkinName    string    `json:"skinName,omitempty"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

func toTransactionResponses(transactions []domain.Transaction) []transactionResponse {
	responses := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, transactionResponse{
			Id:          strconv.Itoa(transaction.Id),
			Type:        string(transaction.Type),
			Amount:      transaction.Amount.StringFixed(2),
			Description: transaction.Description,
			SkinName:    transaction.SkinName,
			Status:      string(transaction.Status),
			Date:        transaction.CreatedAt,
		})
	}

	return responses
}
