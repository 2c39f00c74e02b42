package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const skinColumns = `s.id, s.seller_id, s.name, s.weapon, s.category, s.rarity, s.wear,
       s.float_value, s.price::TEXT, s.image_url, s.stattrak,
       COALESCE(s.collection, ''), COALESCE(s.inspect_link, ''), COALESCE(s.steam_asset_id, ''),
       s.listed_at, s.status, u.username, u.avatar`

type SkinsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewSkinsRepository(queryExecuter database.QueryExecuter) *SkinsRepository {
	return &SkinsRepository{
		queryExecuter: queryExecuter,
	}
}

func (sr *SkinsRepository) GetSkin(ctx context.Context, skinId int) (domain.Skin, error) {
	findSkinSQL := `SELECT ` + skinColumns + `
FROM skins s
JOIN users u ON u.id = s.seller_id
WHERE s.id = $1`

	skin, err := scanSkin(sr.queryExecuter.QueryRow(ctx, findSkinSQL, skinId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Skin{}, &domain.SkinNotFoundError{Msg: fmt.Sprintf("skin with id %d not found", skinId)}
		}

		return domain.Skin{}, fmt.Errorf("failed to find skin: %w", err)
	}

	return skin, nil
}

func (sr *SkinsRepository) CreateSkin(ctx context.Context, sellerId int, draft domain.SkinDraft) (domain.Skin, error) {
	insertSQL := `INSERT INTO skins (seller_id, name, weapon, category, rarity, wear, float_value, price, image_url, stattrak, collection, inspect_link, steam_asset_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::NUMERIC, $9, $10, NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''))
RETURNING id, listed_at, status`

	skin := domain.Skin{
		SellerId:     sellerId,
		Name:         draft.Name,
		Weapon:       draft.Weapon,
		Category:     draft.Category,
		Rarity:       draft.Rarity,
		Wear:         draft.Wear,
		FloatValue:   draft.FloatValue,
		Price:        draft.Price,
		ImageUrl:     draft.ImageUrl,
		StatTrak:     draft.StatTrak,
		Collection:   draft.Collection,
		InspectLink:  draft.InspectLink,
		SteamAssetId: draft.SteamAssetId,
	}

	err := sr.queryExecuter.QueryRow(ctx, insertSQL,
		sellerId, draft.Name, draft.Weapon, draft.Category, draft.Rarity, draft.Wear,
		draft.FloatValue, draft.Price.StringFixed(2), draft.ImageUrl, draft.StatTrak,
		draft.Collection, draft.InspectLink, draft.SteamAssetId,
	).Scan(&skin.Id, &skin.ListedAt, &skin.Status)
	if err != nil {
		return domain.Skin{}, fmt.Errorf("failed to insert skin: %w", err)
	}

	return skin, nil
}

// CancelSkin transitions a listing to cancelled. The update is conditioned on
// ownership and the listed status in one statement, so a listing that was
// sold or cancelled in the meantime is reported as not found.
func (sr *SkinsRepository) CancelSkin(ctx context.Context, sellerId, skinId int) error {
	cancelSQL := `UPDATE skins SET status = 'cancelled' WHERE id = $1 AND seller_id = $2 AND status = 'listed'`

	tag, err := sr.queryExecuter.Exec(ctx, cancelSQL, skinId, sellerId)
	if err != nil {
		return fmt.Errorf("failed to cancel skin: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.SkinNotFoundError{Msg: fmt.Sprintf("listing %d not found or not cancellable", skinId)}
	}

	return nil
}

func (sr *SkinsRepository) BrowseSkins(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, int, error) {
	where, args := buildSkinFilter(filter)

	countSQL := `SELECT COUNT(*) FROM skins s ` + where

	var total int
	err := sr.queryExecuter.QueryRow(ctx, countSQL, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count skins: %w", err)
	}

	browseSQL := `SELECT ` + skinColumns + `
FROM skins s
JOIN users u ON u.id = s.seller_id ` + where + orderClause(filter.Sort)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	args = append(args, limit, filter.Offset)
	browseSQL += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := sr.queryExecuter.Query(ctx, browseSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to select skins: %w", err)
	}
	defer rows.Close()

	skins, err := scanSkins(rows)
	if err != nil {
		return nil, 0, err
	}

	return skins, total, nil
}

func (sr *SkinsRepository) ListSellerSkins(ctx context.Context, sellerId int, status domain.SkinStatus) ([]domain.Skin, error) {
	listSQL := `SELECT ` + skinColumns + `
FROM skins s
JOIN users u ON u.id = s.seller_id
WHERE s.seller_id = $1 AND s.status = $2
ORDER BY s.listed_at DESC`

	rows, err := sr.queryExecuter.Query(ctx, listSQL, sellerId, status)
	if err != nil {
		return nil, fmt.Errorf("failed to select seller skins: %w", err)
	}
	defer rows.Close()

	return scanSkins(rows)
}

func (sr *SkinsRepository) CountSellerSkins(ctx context.Context, sellerId int, status domain.SkinStatus) (int, error) {
	countSQL := `SELECT COUNT(*) FROM skins s WHERE s.seller_id = $1 AND s.status = $2`

	var count int
	err := sr.queryExecuter.QueryRow(ctx, countSQL, sellerId, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count seller skins: %w", err)
	}

	return count, nil
}

func buildSkinFilter(filter domain.SkinFilter) (string, []any) {
	conditions := []string{"s.status = 'listed'"}
	var args []any

	addArg := func(val any) int {
		args = append(args, val)
		return len(args)
	}

	if filter.Search != "" {
		n := addArg("%" + filter.Search + "%")
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.weapon ILIKE $%d)", n, n))
	}

	if len(filter.Categories) > 0 {
		n := addArg(filter.Categories)
		conditions = append(conditions, fmt.Sprintf("s.category = ANY($%d)", n))
	}

	if len(filter.Rarities) > 0 {
		n := addArg(filter.Rarities)
		conditions = append(conditions, fmt.Sprintf("s.rarity = ANY($%d)", n))
	}

	if len(filter.Wears) > 0 {
		n := addArg(filter.Wears)
		conditions = append(conditions, fmt.Sprintf("s.wear = ANY($%d)", n))
	}

	if filter.StatTrak {
		conditions = append(conditions, "s.stattrak = TRUE")
	}

	if filter.PriceMin.IsPositive() {
		n := addArg(filter.PriceMin.StringFixed(2))
		conditions = append(conditions, fmt.Sprintf("s.price >= $%d::NUMERIC", n))
	}

	if filter.PriceMax.IsPositive() {
		n := addArg(filter.PriceMax.StringFixed(2))
		conditions = append(conditions, fmt.Sprintf("s.price <= $%d::NUMERIC", n))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func orderClause(sort domain.SkinSort) string {
	switch sort {
	case domain.SkinSortPriceAsc:
		return " ORDER BY s.price ASC"
	case domain.SkinSortPriceDesc:
		return " ORDER BY s.price DESC"
	case domain.SkinSortFloatAsc:
		return " ORDER BY s.float_value ASC"
	case domain.SkinSortFloatDesc:
		return " ORDER BY s.float_value DESC"
	default:
		return " ORDER BY s.listed_at DESC"
	}
}

func scanSkin(row pgx.Row) (domain.Skin, error) {
	var skin domain.Skin
	var price string

	err := row.Scan(
		&skin.Id, &skin.SellerId, &skin.Name, &skin.Weapon, &skin.Category,
		&skin.Rarity, &skin.Wear, &skin.FloatValue, &price, &skin.ImageUrl,
		&skin.StatTrak, &skin.Collection, &skin.InspectLink, &skin.SteamAssetId,
		&skin.ListedAt, &skin.Status, &skin.SellerName, &skin.SellerAvatar,
	)
	if err != nil {
		return domain.Skin{}, err
	}

	skin.Price, err = decimal.NewFromString(price)
	if err != nil {
		return domain.Skin{}, fmt.Errorf("failed to parse skin price: %w", err)
	}

	return skin, nil
}

func scanSkins(rows pgx.Rows) ([]domain.Skin, error) {
	var skins []domain.Skin
	for rows.Next() {
		skin, err := scanSkin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skin row: %w", err)
		}

		skins = append(skins, skin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skin rows: %w", err)
	}

	return skins, nil
}
