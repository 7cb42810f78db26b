package services

import (
	"context"
	"testing"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/repositories"
	"lotus/pkg/memcache"
	"lotus/pkg/utils"
)

func newAccountService(t *testing.T) (AccountServiceInterface, *fakeMail) {
	t.Helper()

	db := openTestDB(t, &db_models.Account{})
	mail := &fakeMail{}
	svc := NewAccountService(repositories.NewAccountRepository(db), mail, memcache.NewResetTokens())
	return svc, mail
}

func TestCreateAccountAndLogin(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	signup := request_models.SignUpRequest{
		DisplayName: "Studio Admin",
		Email:       "admin@lotusyoga.studio",
		Password:    "open-sesame",
	}
	if err := svc.CreateAccount(ctx, signup); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if err := svc.CreateAccount(ctx, signup); err != utils.ErrEmailAlreadyExists {
		t.Errorf("duplicate email: got %v, want ErrEmailAlreadyExists", err)
	}

	token, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "admin@lotusyoga.studio",
		Password: "open-sesame",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "admin@lotusyoga.studio",
		Password: "wrong",
	}); err != utils.ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "nobody@lotusyoga.studio",
		Password: "whatever",
	}); err != utils.ErrInvalidCredentials {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestGetAccount(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Studio Admin",
		Email:       "admin@lotusyoga.studio",
		Password:    "open-sesame",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	token, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "admin@lotusyoga.studio",
		Password: "open-sesame",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	account, err := svc.GetAccount(ctx, claims.UserID)
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if account.Email != "admin@lotusyoga.studio" || account.Role != "admin" {
		t.Errorf("account = %+v", account)
	}

	if _, err := svc.GetAccount(ctx, "00000000-0000-0000-0000-000000000000"); err != utils.ErrAccountNotFound {
		t.Errorf("unknown id: got %v, want ErrAccountNotFound", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mail := newAccountService(t)
	ctx := context.Background()

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Studio Admin",
		Email:       "admin@lotusyoga.studio",
		Password:    "old-password",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	// unknown addresses succeed silently and send nothing
	if err := svc.ForgotPassword(ctx, "stranger@example.com"); err != nil {
		t.Fatalf("ForgotPassword for unknown email: %v", err)
	}
	if len(mail.resetTokens) != 0 {
		t.Fatalf("mail sent for unknown email")
	}

	if err := svc.ForgotPassword(ctx, "admin@lotusyoga.studio"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(mail.resetTokens) != 1 {
		t.Fatalf("reset mails = %d, want 1", len(mail.resetTokens))
	}
	token := mail.resetTokens[0]

	if err := svc.ResetPassword(ctx, request_models.ForgotPasswordRequest{
		Token:       token,
		NewPassword: "new-password",
	}); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	// tokens are single-use
	if err := svc.ResetPassword(ctx, request_models.ForgotPasswordRequest{
		Token:       token,
		NewPassword: "another",
	}); err != utils.ErrInvalidResetToken {
		t.Errorf("reused token: got %v, want ErrInvalidResetToken", err)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "admin@lotusyoga.studio",
		Password: "old-password",
	}); err != utils.ErrInvalidCredentials {
		t.Errorf("old password still works after reset")
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "admin@lotusyoga.studio",
		Password: "new-password",
	}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
