// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) UpdateCategories(ctx context.Context, userID uuid.UUID, categories []string) error {
	return nil
}

type fakePasswordService struct{}

func (s fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (s fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	revoked        map[string]bool
	revokedAllFor  []uuid.UUID
	issued         int
	refreshClaims  map[string]*adapter.TokenClaims
	validateAccess func(token string) (*adapter.TokenClaims, error)
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		revoked:       make(map[string]bool),
		refreshClaims: make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.issued++
	refresh := uuid.NewString()
	s.refreshClaims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{AccessToken: uuid.NewString(), RefreshToken: refresh}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.validateAccess != nil {
		return s.validateAccess(token)
	}
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.refreshClaims[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	s.revokedAllFor = append(s.revokedAllFor, userID)
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !s.revoked[token], nil
}

type fakeResetTokenService struct {
	tokens map[string]*adapter.PasswordResetToken
}

func newFakeResetTokenService() *fakeResetTokenService {
	return &fakeResetTokenService{tokens: make(map[string]*adapter.PasswordResetToken)}
}

func (s *fakeResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	token := &adapter.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.tokens[token.Token] = token
	return token, nil
}

func (s *fakeResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	resetToken, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return resetToken, nil
}

func (s *fakeResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type fakeEmailSender struct {
	sent []adapter.SendEmailInput
}

func (s *fakeEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "email-1"}, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registers user with default categories and tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "Maria@Example.com",
			Name:     "Maria",
			Password: "superSecret1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Email != "maria@example.com" {
			t.Errorf("expected lowercased email, got %q", output.User.Email)
		}
		if len(output.User.Categories) != len(entity.DefaultCategories) {
			t.Errorf("expected default categories, got %v", output.User.Categories)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected token pair to be issued")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		if _, err := uc.Execute(ctx, RegisterUserInput{Email: "maria@example.com", Name: "Maria", Password: "superSecret1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(ctx, RegisterUserInput{Email: "maria@example.com", Name: "Maria", Password: "superSecret1"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Fatalf("expected email exists error, got %v", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "maria@example.com", Name: "Maria", Password: "short"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("expected weak password error, got %v", err)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "not-an-email", Name: "Maria", Password: "superSecret1"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Fatalf("expected invalid email error, got %v", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeUserRepo, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("maria@example.com", "Maria", "hashed:superSecret1")
		repo.users[user.ID] = user
		return repo, user
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo, user := setup()
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, LoginUserInput{Email: "maria@example.com", Password: "superSecret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != user.ID {
			t.Error("expected logged in user to match")
		}
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		repo, _ := setup()
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, errWrongPassword := uc.Execute(ctx, LoginUserInput{Email: "maria@example.com", Password: "nope"})
		_, errUnknownEmail := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "superSecret1"})

		var authErr1, authErr2 *domainerror.AuthError
		if !errors.As(errWrongPassword, &authErr1) || !errors.As(errUnknownEmail, &authErr2) {
			t.Fatal("expected auth errors for both cases")
		}
		if authErr1.Code != authErr2.Code {
			t.Error("expected indistinguishable credential errors")
		}
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "maria@example.com")

		uc := NewRefreshTokenUseCase(tokens)
		output, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token")
		}
		if !tokens.revoked[pair.RefreshToken] {
			t.Error("expected old refresh token to be revoked")
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "maria@example.com")
		tokens.revoked[pair.RefreshToken] = true

		uc := NewRefreshTokenUseCase(tokens)
		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})
}

func TestForgotPasswordUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("sends reset email for existing account", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := entity.NewUser("maria@example.com", "Maria", "hash")
		repo.users[user.ID] = user
		sender := &fakeEmailSender{}

		uc := NewForgotPasswordUseCase(repo, newFakeResetTokenService(), sender, "https://plata.app")
		output, err := uc.Execute(ctx, ForgotPasswordInput{Email: "maria@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "maria@example.com" {
			t.Errorf("expected email to user, got %q", sender.sent[0].To)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("unexpected message %q", output.Message)
		}
	})

	t.Run("unknown email yields the same response and no email", func(t *testing.T) {
		sender := &fakeEmailSender{}
		uc := NewForgotPasswordUseCase(newFakeUserRepo(), newFakeResetTokenService(), sender, "https://plata.app")

		output, err := uc.Execute(ctx, ForgotPasswordInput{Email: "ghost@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("unexpected message %q", output.Message)
		}
		if len(sender.sent) != 0 {
			t.Error("expected no email for unknown account")
		}
	})
}

func TestResetPasswordUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("resets password and revokes all sessions", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := entity.NewUser("maria@example.com", "Maria", "hashed:oldPassword1")
		repo.users[user.ID] = user

		resetTokens := newFakeResetTokenService()
		resetToken, _ := resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
		tokens := newFakeTokenService()

		uc := NewResetPasswordUseCase(repo, fakePasswordService{}, resetTokens, tokens, fixedClock{now})
		_, err := uc.Execute(ctx, ResetPasswordInput{Token: resetToken.Token, NewPassword: "newPassword1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.users[user.ID].PasswordHash != "hashed:newPassword1" {
			t.Error("expected password hash to be updated")
		}
		if len(tokens.revokedAllFor) != 1 || tokens.revokedAllFor[0] != user.ID {
			t.Error("expected all user sessions to be revoked")
		}
		if _, err := resetTokens.ValidateResetToken(ctx, resetToken.Token); err == nil {
			t.Error("expected reset token to be invalidated")
		}
	})

	t.Run("rejects expired reset token", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := entity.NewUser("maria@example.com", "Maria", "hash")
		repo.users[user.ID] = user

		resetTokens := newFakeResetTokenService()
		resetToken, _ := resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
		resetTokens.tokens[resetToken.Token].ExpiresAt = now.Add(-time.Minute)

		uc := NewResetPasswordUseCase(repo, fakePasswordService{}, resetTokens, newFakeTokenService(), fixedClock{now})
		_, err := uc.Execute(ctx, ResetPasswordInput{Token: resetToken.Token, NewPassword: "newPassword1"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidResetToken {
			t.Fatalf("expected invalid reset token error, got %v", err)
		}
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		uc := NewResetPasswordUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeResetTokenService(), newFakeTokenService(), fixedClock{now})

		_, err := uc.Execute(ctx, ResetPasswordInput{Token: "bogus", NewPassword: "newPassword1"})
		if err == nil {
			t.Fatal("expected error for unknown token")
		}
	})
}
