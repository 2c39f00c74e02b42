package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Id             int
	SteamId        string
	Username       string
	Avatar         string
	ProfileUrl     string
	Balance        decimal.Decimal
	TotalSales     decimal.Decimal
	TotalPurchases decimal.Decimal
	CreatedAt      time.Time
}

// Identity is the resolved result of the external identity provider.
type Identity struct {
	SteamId    string
	Username   string
	Avatar     string
	ProfileUrl string
}

type Profile struct {
	User
	ActiveListings int
	TotalSold      int
}

type UsersRepository interface {
	UpsertSteamUser(ctx context.Context, identity Identity) (User, error)
	GetUser(ctx context.Context, userId int) (User, error)
}

type Wallet interface {
	Deposit(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error)
}
