package service

import (
	"context"
	"testing"

	"settlr/internal/core/domain"
	"settlr/internal/core/ports"
	"settlr/internal/core/ports/mocks"
	"settlr/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRecipientService(t *testing.T) (ports.RecipientService, *mocks.MockRecipientRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRecipientRepository(ctrl)
	return NewRecipientService(repo, zerolog.Nop()), repo, ctrl
}

func TestRecipientService_RegisterIfAbsent_NormalizesEmail(t *testing.T) {
	svc, repo, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.Recipient) (*domain.Recipient, error) {
			assert.Equal(t, "foo@bar.com", r.Email)
			assert.True(t, r.NotificationsEnabled)
			assert.True(t, r.AutoWithdraw)
			return r, nil
		})

	recipient, err := svc.RegisterIfAbsent(ctx, ports.RegisterRecipientRequest{
		Email:         " Foo@Bar.COM ",
		WalletAddress: testRecipientWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, "foo@bar.com", recipient.Email)
}

func TestRecipientService_RegisterIfAbsent_ExistingUnchanged(t *testing.T) {
	svc, repo, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	existing := &domain.Recipient{
		ID:            uuid.New(),
		Email:         "foo@bar.com",
		WalletAddress: testMerchantWallet,
	}
	repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(existing, nil)

	recipient, err := svc.RegisterIfAbsent(ctx, ports.RegisterRecipientRequest{
		Email:         "foo@bar.com",
		WalletAddress: testRecipientWallet, // Stale wallet from a caller that didn't check
	})
	require.NoError(t, err)
	// The stored record wins; the stale wallet is not applied.
	assert.Equal(t, existing.ID, recipient.ID)
	assert.Equal(t, testMerchantWallet, recipient.WalletAddress)
}

func TestRecipientService_RegisterIfAbsent_InvalidWallet(t *testing.T) {
	svc, _, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	_, err := svc.RegisterIfAbsent(context.Background(), ports.RegisterRecipientRequest{
		Email:         "foo@bar.com",
		WalletAddress: "zzz-not-base58!",
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_005", appErr.Code)
}

func TestRecipientService_Update_Partial(t *testing.T) {
	svc, repo, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	name := "Old Name"
	existing := &domain.Recipient{
		ID:            uuid.New(),
		Email:         "foo@bar.com",
		WalletAddress: testRecipientWallet,
		DisplayName:   &name,
		AutoWithdraw:  true,
	}

	repo.EXPECT().GetByEmail(ctx, "foo@bar.com").Return(existing, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	off := false
	updated, err := svc.Update(ctx, "FOO@bar.com", ports.UpdateRecipientRequest{AutoWithdraw: &off})
	require.NoError(t, err)
	assert.False(t, updated.AutoWithdraw)
	// Untouched fields survive.
	assert.Equal(t, testRecipientWallet, updated.WalletAddress)
	assert.Equal(t, "Old Name", *updated.DisplayName)
}

func TestRecipientService_Update_Absent(t *testing.T) {
	svc, repo, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().GetByEmail(ctx, "ghost@bar.com").Return(nil, nil)

	updated, err := svc.Update(ctx, "ghost@bar.com", ports.UpdateRecipientRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRecipientService_AutoDeliveryTarget(t *testing.T) {
	svc, repo, ctrl := setupRecipientService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	repo.EXPECT().GetByEmail(ctx, "auto@bar.com").Return(&domain.Recipient{
		Email:         "auto@bar.com",
		WalletAddress: testRecipientWallet,
		AutoWithdraw:  true,
	}, nil)
	wallet, ok, err := svc.AutoDeliveryTarget(ctx, "auto@bar.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testRecipientWallet, wallet)

	repo.EXPECT().GetByEmail(ctx, "manual@bar.com").Return(&domain.Recipient{
		Email:        "manual@bar.com",
		AutoWithdraw: true, // No wallet on file
	}, nil)
	_, ok, err = svc.AutoDeliveryTarget(ctx, "manual@bar.com")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.EXPECT().GetByEmail(ctx, "ghost@bar.com").Return(nil, nil)
	_, ok, err = svc.AutoDeliveryTarget(ctx, "ghost@bar.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
