package http

import (
	"context"

	"github.com/mkarev/vault-sync/models"
)

// mockAuthService is a hand-rolled func-field mock for tests that only need
// one or two AuthService methods stubbed.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	paramsFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) Params(ctx context.Context, user models.User) (models.User, error) {
	return m.paramsFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockCommitService struct {
	commitFn func(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error)
}

func (m *mockCommitService) Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error) {
	return m.commitFn(ctx, req)
}
