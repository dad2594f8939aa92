//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

// AuthService はアカウントとプロフィールを扱います
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	VerifyAccount(ctx context.Context, token string) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) (*model.User, error)
	SetupProfile(ctx context.Context, userID uuid.UUID, req *model.ProfileSetupRequest) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

// Register はユーザーを作成し、確認メールを送信します。メール送信に失敗した場合は登録ごと取り消す。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check email.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process password.", "", err)
		}

		targetLanguage := req.TargetLanguage
		if targetLanguage == "" {
			targetLanguage = "es"
		}

		user := &model.User{
			UserID:         uuid.New(),
			Email:          req.Email,
			Name:           req.Name,
			PasswordHash:   string(hashedPassword),
			NativeLanguage: config.DefaultSourceLanguage,
			TargetLanguage: targetLanguage,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// 同時登録で一意制約に当たった場合
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create user.", "", err)
		}
		newUser = user

		tokenString, err := generateToken()
		if err != nil {
			logger.Error("Failed to generate verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to generate token.", "", err)
		}
		token := &model.UserVerificationToken{
			Token:     tokenString,
			UserID:    user.UserID,
			ExpiresAt: time.Now().Add(verificationTokenTTL),
		}
		if err := s.tokenRepo.CreateVerificationToken(ctx, tx, token); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save token.", "", err)
		}

		if err := s.sendVerificationEmail(ctx, user.Email, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "Failed to send the verification email. Please try again later.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered and verification email sent", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// VerifyAccount はトークンを検証してアカウントを確認済みにします
func (s *authService) VerifyAccount(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found or expired")
				return model.NewAppError("INVALID_TOKEN", "This link is invalid or has expired.", "token", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to verify account.", "", err)
		}

		if err := s.userRepo.Update(ctx, tx, token.UserID, map[string]interface{}{"is_verified": true}); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to verify account.", "", err)
		}

		if err := s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			// 期限切れの掃除で消えるので続行
			logger.Error("Failed to delete used verification token", "error", err)
		}

		logger.Info("Account verified successfully", "user_id", token.UserID)
		return nil
	})
}

// Login は資格情報を検証して JWT を発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password.", "", model.ErrUnauthorized)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to log in.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid email or password.", "", model.ErrUnauthorized)
	}

	if s.cfg.Auth.RequireVerified && !user.IsVerified {
		logger.Warn("Login failed: account not verified", "user_id", user.UserID)
		return nil, model.NewAppError("ACCOUNT_NOT_VERIFIED", "Please verify your email address before logging in.", "", model.ErrForbidden)
	}

	now := time.Now()
	claims := &model.JWTCustomClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.App.Name,
			Subject:   user.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue token.", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: signedToken, User: user}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.findUser(ctx, s.db, userID)
}

// UpdateProfile は指定された項目だけ更新します
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.TargetLanguage != nil {
		updates["target_language"] = *req.TargetLanguage
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	return s.updateUser(ctx, userID, updates)
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *model.ChangePasswordRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	user, err := s.findUser(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		logger.Warn("Change password failed: current password mismatch")
		return model.NewAppError("INVALID_PASSWORD", "Current password is incorrect.", "current_password", model.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process password.", "", err)
	}
	if err := s.userRepo.Update(ctx, s.db, userID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update password.", "", err)
	}

	logger.Info("Password changed")
	return nil
}

func (s *authService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.updateUser(ctx, userID, map[string]interface{}{"onboarding_completed": true})
}

// SetupProfile は初回ログイン後の言語設定を保存します
func (s *authService) SetupProfile(ctx context.Context, userID uuid.UUID, req *model.ProfileSetupRequest) (*model.User, error) {
	return s.updateUser(ctx, userID, map[string]interface{}{
		"native_language":         req.NativeLanguage,
		"target_language":         req.TargetLanguage,
		"profile_setup_completed": true,
	})
}

// RequestPasswordReset はリセット用リンクを送信します。
// 未登録のメールアドレスでも成功を返し、登録の有無を漏らさない。
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Password reset requested for non-existent email")
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to request password reset.", "", err)
	}

	tokenString, err := generateToken()
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to generate token.", "", err)
	}
	token := &model.PasswordResetToken{
		Token:     tokenString,
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(passwordResetTokenTTL),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, s.db, token); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save token.", "", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.FrontendURL, tokenString)
	subject := fmt.Sprintf("[%s] Reset your password", s.cfg.App.Name)
	body := fmt.Sprintf("Click the link below to reset your password:\n%s\n\nThis link expires in 1 hour.", resetURL)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "Failed to send email.", "", err)
	}

	logger.Info("Password reset email sent")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindPasswordResetToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INVALID_TOKEN", "This link is invalid or has expired.", "token", model.ErrInvalidInput)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to reset password.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to process password.", "", err)
		}
		if err := s.userRepo.Update(ctx, tx, token.UserID, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update password.", "", err)
		}

		// 同じユーザーの未使用トークンもまとめて無効化
		if err := s.tokenRepo.DeletePasswordResetTokensByUser(ctx, tx, token.UserID); err != nil {
			logger.Error("Failed to delete password reset tokens", "error", err)
		}

		logger.Info("Password reset successfully", "user_id", token.UserID)
		return nil
	})
}

// --- ヘルパー関数 ---

func (s *authService) findUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}
	return user, nil
}

func (s *authService) updateUser(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) (*model.User, error) {
	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, s.db, userID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
			}
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update profile.", "", err)
		}
	}
	return s.findUser(ctx, s.db, userID)
}

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.FrontendURL, token)
	subject := fmt.Sprintf("[%s] Please verify your account", s.cfg.App.Name)
	body := fmt.Sprintf("Thanks for signing up to %s.\n\nClick the link below to verify your account:\n%s\n\nThis link expires in 24 hours.", s.cfg.App.Name, verifyURL)

	middleware.GetLogger(ctx).Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}

// generateToken は32バイトの乱数を16進文字列で返します
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
