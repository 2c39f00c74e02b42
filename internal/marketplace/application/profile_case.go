package application

import (
	"context"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
)

type ProfileCase struct {
	usersRepository        domain.UsersRepository
	skinsCounter           domain.SellerSkinsCounter
	transactionsRepository domain.TransactionsRepository
	logger                 logging.Logger
}

func NewProfileCase(
	usersRepository domain.UsersRepository,
	skinsCounter domain.SellerSkinsCounter,
	transactionsRepository domain.TransactionsRepository,
	logger logging.Logger,
) *ProfileCase {
	return &ProfileCase{
		usersRepository:        usersRepository,
		skinsCounter:           skinsCounter,
		transactionsRepository: transactionsRepository,
		logger:                 logger,
	}
}

func (pc *ProfileCase) GetProfile(ctx context.Context, userId int) (domain.Profile, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var user domain.User
	var activeListings, totalSold int

	group.Go(func() error {
		var err error
		user, err = pc.usersRepository.GetUser(groupCtx, userId)
		return err
	})

	group.Go(func() error {
		var err error
		activeListings, err = pc.skinsCounter.CountSellerSkins(groupCtx, userId, domain.SkinStatusListed)
		return err
	})

	group.Go(func() error {
		var err error
		totalSold, err = pc.skinsCounter.CountSellerSkins(groupCtx, userId, domain.SkinStatusSold)
		return err
	})

	err := group.Wait()
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		User:           user,
		ActiveListings: activeListings,
		TotalSold:      totalSold,
	}, nil
}

func (pc *ProfileCase) ListTransactions(ctx context.Context, userId, limit, offset int) ([]domain.Transaction, error) {
	return pc.transactionsRepository.ListUserTransactions(ctx, userId, limit, offset)
}
