package application

import (
	"context"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/shopspring/decimal"
)

type WalletCase struct {
	wallet domain.Wallet
}

func NewWalletCase(wallet domain.Wallet) *WalletCase {
	return &WalletCase{
		wallet: wallet,
	}
}

func (wc *WalletCase) Deposit(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error) {
	return wc.wallet.Deposit(ctx, userId, amount)
}

func (wc *WalletCase) Withdraw(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error) {
	return wc.wallet.Withdraw(ctx, userId, amount)
}
