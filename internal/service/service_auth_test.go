package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/mock"
	"github.com/mkarev/vault-sync/internal/utils"
	"github.com/mkarev/vault-sync/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		PasswordHashKey: "pw-hash-key",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "vault-sync",
		TokenDuration:   time.Hour,
	}
	return NewAuthService(mockRepo, cfg, logger.NewLogger("test")), mockRepo
}

func TestRegisterUser_HashesCredentialBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, utils.HashString("client-auth-hash", "pw-hash-key"), user.AuthHash)
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, models.User{Login: "alice", AuthHash: "client-auth-hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestRegisterUser_RejectsEmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{AuthHash: "hash"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:   5,
		Login:    "alice",
		AuthHash: utils.HashString("client-auth-hash", "pw-hash-key"),
	}
	mockRepo.EXPECT().FindUserByLogin(ctx, "alice").Return(stored, nil)

	found, err := svc.Login(ctx, models.User{Login: "alice", AuthHash: "client-auth-hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), found.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)

	stored := models.User{
		Login:    "alice",
		AuthHash: utils.HashString("correct-hash", "pw-hash-key"),
	}
	mockRepo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

	_, err := svc.Login(context.Background(), models.User{Login: "alice", AuthHash: "wrong-hash"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestParams_ReturnsOnlyPublicFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)

	stored := models.User{
		UserID:             5,
		Login:              "alice",
		AuthHash:           "secret",
		EncryptionSalt:     []byte("salt"),
		EncryptedMasterKey: []byte("enc"),
	}
	mockRepo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

	got, err := svc.Params(context.Background(), models.User{Login: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), got.EncryptionSalt)
	assert.Empty(t, got.AuthHash)
	assert.Empty(t, got.EncryptedMasterKey)
	assert.Zero(t, got.UserID)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
