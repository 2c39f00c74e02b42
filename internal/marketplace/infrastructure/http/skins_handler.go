package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const SkinIdKey = "id"

type createSkinRequestBody struct {
	Name         string  `json:"name" binding:"required"`
	Weapon       string  `json:"weapon" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Rarity       string  `json:"rarity" binding:"required"`
	Wear         string  `json:"wear" binding:"required"`
	Float        float64 `json:"float"`
	Price        string  `json:"price" binding:"required"`
	ImageUrl     string  `json:"imageUrl"`
	StatTrak     bool    `json:"stattrak"`
	Collection   string  `json:"collection"`
	InspectLink  string  `json:"inspectLink"`
	SteamAssetId string  `json:"steamAssetId"`
}

type SkinsHandler struct {
	listingCase *application.ListingCase
	logger      logging.Logger
}

func NewSkinsHandler(listingCase *application.ListingCase, logger logging.Logger) *SkinsHandler {
	return &SkinsHandler{
		listingCase: listingCase,
		logger:      logger,
	}
}

func (h *SkinsHandler) Browse(c *gin.Context) {
	filter, err := parseSkinFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skins, total, err := h.listingCase.BrowseListings(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to browse listings", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skins": toSkinResponses(skins),
		"total": total,
	})
}

func (h *SkinsHandler) Get(c *gin.Context) {
	skinId, err := strconv.Atoi(c.Param(SkinIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skin id"})
		return
	}

	skin, err := h.listingCase.GetListing(c.Request.Context(), skinId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSkinResponse(skin))
}

func (h *SkinsHandler) Create(c *gin.Context) {
	var body createSkinRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	draft := domain.SkinDraft{
		Name:         body.Name,
		Weapon:       body.Weapon,
		Category:     body.Category,
		Rarity:       body.Rarity,
		Wear:         body.Wear,
		FloatValue:   body.Float,
		Price:        price,
		ImageUrl:     body.ImageUrl,
		StatTrak:     body.StatTrak,
		Collection:   body.Collection,
		InspectLink:  body.InspectLink,
		SteamAssetId: body.SteamAssetId,
	}

	skin, err := h.listingCase.CreateListing(c.Request.Context(), currentUserId(c), draft)
	if err != nil {
		h.logger.Error("failed to create listing", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSkinResponse(skin))
}

func (h *SkinsHandler) Cancel(c *gin.Context) {
	skinId, err := strconv.Atoi(c.Param(SkinIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skin id"})
		return
	}

	err = h.listingCase.CancelListing(c.Request.Context(), currentUserId(c), skinId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseSkinFilter(c *gin.Context) (domain.SkinFilter, error) {
	filter := domain.SkinFilter{
		Search:   c.Query("search"),
		StatTrak: c.Query("stattrak") == "true",
		Sort:     domain.SkinSort(c.DefaultQuery("sort", string(domain.SkinSortNewest))),
	}

	if category := c.Query("category"); category != "" {
		filter.Categories = strings.Split(category, ",")
	}
	if rarity := c.Query("rarity"); rarity != "" {
		filter.Rarities = strings.Split(rarity, ",")
	}
	if wear := c.Query("wear"); wear != "" {
		filter.Wears = strings.Split(wear, ",")
	}

	var err error
	if priceMin := c.Query("priceMin"); priceMin != "" {
		filter.PriceMin, err = decimal.NewFromString(priceMin)
		if err != nil {
			return domain.SkinFilter{}, err
		}
	}
	if priceMax := c.Query("priceMax"); priceMax != "" {
		filter.PriceMax, err = decimal.NewFromString(priceMax)
		if err != nil {
			return domain.SkinFilter{}, err
		}
	}

	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	return filter, nil
}
