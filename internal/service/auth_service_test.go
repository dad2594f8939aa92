package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
	repomocks "langy/internal/repository/mocks"
	"langy/internal/service"
	servicemocks "langy/internal/service/mocks"
	"langy/internal/testutil"
)

// 関連するテストと共通のセットアップをまとめる
type AuthServiceTestSuite struct {
	suite.Suite

	db          *gorm.DB
	mockMailer  *servicemocks.Mailer
	cfg         *config.Config
	authService service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.mockMailer = servicemocks.NewMailer(s.T())
	s.cfg = testConfig()
	s.authService = service.NewAuthService(s.db, repository.NewGormUserRepository(), repository.NewGormTokenRepository(), s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:         "Langy",
			FrontendURL:  "http://localhost:3000",
			HistoryLimit: 50,
			QuizSize:     5,
			WordsLimit:   50,
		},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
		Translate: config.TranslateConfig{DefaultSource: "en"},
	}
}

// createUserWithPassword はログイン可能なユーザーを作成します
func (s *AuthServiceTestSuite) createUserWithPassword(email, password string, verified bool) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return testutil.CreateUser(s.T(), s.db, func(u *model.User) {
		u.Email = email
		u.PasswordHash = string(hash)
		u.IsVerified = verified
	})
}

func (s *AuthServiceTestSuite) assertCode(err error, code string, sentinel error) {
	s.Require().Error(err)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(code, appErr.Detail.Code)
	s.ErrorIs(err, sentinel)
}

func (s *AuthServiceTestSuite) TestRegister() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setup       func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "正常系: 登録して確認メールを送信する",
			req:  &model.RegisterRequest{Name: "alice", Email: "alice@example.com", Password: "password"},
			setup: func() {
				s.mockMailer.On("Send", mock.Anything, "alice@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
					return len(body) > 0
				})).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.Equal("alice@example.com", user.Email)
				s.Equal("es", user.TargetLanguage)
				s.Equal("en", user.NativeLanguage)
				s.False(user.IsVerified)

				var tokens []model.UserVerificationToken
				s.Require().NoError(s.db.Where("user_id = ?", user.UserID).Find(&tokens).Error)
				s.Len(tokens, 1)
				s.WithinDuration(time.Now().Add(24*time.Hour), tokens[0].ExpiresAt, time.Minute)
			},
		},
		{
			name: "正常系: 学習言語を指定できる",
			req:  &model.RegisterRequest{Name: "bob", Email: "bob@example.com", Password: "password", TargetLanguage: "fr"},
			setup: func() {
				s.mockMailer.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.Equal("fr", user.TargetLanguage)
			},
		},
		{
			name: "異常系: Emailが重複している",
			req:  &model.RegisterRequest{Name: "carol", Email: "dup@example.com", Password: "password"},
			setup: func() {
				testutil.CreateUser(s.T(), s.db, func(u *model.User) { u.Email = "dup@example.com" })
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.assertCode(err, "DUPLICATE_EMAIL", model.ErrConflict)
			},
		},
		{
			name: "異常系: メール送信に失敗したら登録を取り消す",
			req:  &model.RegisterRequest{Name: "dave", Email: "dave@example.com", Password: "password"},
			setup: func() {
				s.mockMailer.On("Send", mock.Anything, "dave@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)

				var count int64
				s.Require().NoError(s.db.Model(&model.User{}).Where("email = ?", "dave@example.com").Count(&count).Error)
				s.Zero(count)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setup()

			user, err := s.authService.Register(context.Background(), tc.req)

			tc.checkResult(user, err)
		})
	}
}

func (s *AuthServiceTestSuite) TestVerifyAccount() {
	ctx := context.Background()

	s.Run("正常系: トークンでアカウントを確認済みにする", func() {
		s.SetupTest()
		user := testutil.CreateUser(s.T(), s.db)
		s.Require().NoError(s.db.Create(&model.UserVerificationToken{
			Token: "valid-token", UserID: user.UserID, ExpiresAt: time.Now().Add(time.Hour),
		}).Error)

		s.Require().NoError(s.authService.VerifyAccount(ctx, "valid-token"))

		got, err := s.authService.GetProfile(ctx, user.UserID)
		s.Require().NoError(err)
		s.True(got.IsVerified)

		// 使用済みトークンは再利用できない
		s.assertCode(s.authService.VerifyAccount(ctx, "valid-token"), "INVALID_TOKEN", model.ErrInvalidInput)
	})

	s.Run("異常系: 期限切れのトークン", func() {
		s.SetupTest()
		user := testutil.CreateUser(s.T(), s.db)
		s.Require().NoError(s.db.Create(&model.UserVerificationToken{
			Token: "expired", UserID: user.UserID, ExpiresAt: time.Now().Add(-time.Minute),
		}).Error)

		s.assertCode(s.authService.VerifyAccount(ctx, "expired"), "INVALID_TOKEN", model.ErrInvalidInput)
	})
}

func (s *AuthServiceTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("正常系: JWTとユーザーを返す", func() {
		s.SetupTest()
		user := s.createUserWithPassword("login@example.com", "password", false)

		resp, err := s.authService.Login(ctx, &model.LoginRequest{Email: "login@example.com", Password: "password"})
		s.Require().NoError(err)
		s.NotEmpty(resp.AccessToken)
		s.Equal(user.UserID, resp.User.UserID)

		parsedID, err := middleware.ParseUserToken(resp.AccessToken, s.cfg.JWT.SecretKey)
		s.Require().NoError(err)
		s.Equal(user.UserID, parsedID)
	})

	s.Run("異常系: パスワード不一致", func() {
		s.SetupTest()
		s.createUserWithPassword("login@example.com", "password", true)

		_, err := s.authService.Login(ctx, &model.LoginRequest{Email: "login@example.com", Password: "wrong"})
		s.assertCode(err, "AUTHENTICATION_FAILED", model.ErrUnauthorized)
	})

	s.Run("異常系: 未登録のメールアドレス", func() {
		s.SetupTest()
		_, err := s.authService.Login(ctx, &model.LoginRequest{Email: "nobody@example.com", Password: "password"})
		s.assertCode(err, "AUTHENTICATION_FAILED", model.ErrUnauthorized)
	})

	s.Run("異常系: 確認必須の設定で未確認ユーザー", func() {
		s.SetupTest()
		s.cfg.Auth.RequireVerified = true
		s.createUserWithPassword("unverified@example.com", "password", false)

		_, err := s.authService.Login(ctx, &model.LoginRequest{Email: "unverified@example.com", Password: "password"})
		s.assertCode(err, "ACCOUNT_NOT_VERIFIED", model.ErrForbidden)
	})
}

func (s *AuthServiceTestSuite) TestProfile() {
	ctx := context.Background()

	s.Run("正常系: プロフィールを部分更新する", func() {
		s.SetupTest()
		user := testutil.CreateUser(s.T(), s.db)
		name := "New Name"

		got, err := s.authService.UpdateProfile(ctx, user.UserID, &model.UpdateProfileRequest{Name: &name})
		s.Require().NoError(err)
		s.Equal("New Name", got.Name)
		s.Equal("es", got.TargetLanguage)
	})

	s.Run("正常系: 言語設定でセットアップ完了になる", func() {
		s.SetupTest()
		user := testutil.CreateUser(s.T(), s.db)

		got, err := s.authService.SetupProfile(ctx, user.UserID, &model.ProfileSetupRequest{NativeLanguage: "ja", TargetLanguage: "de"})
		s.Require().NoError(err)
		s.Equal("ja", got.NativeLanguage)
		s.Equal("de", got.TargetLanguage)
		s.True(got.ProfileSetupCompleted)
	})

	s.Run("正常系: オンボーディング完了", func() {
		s.SetupTest()
		user := testutil.CreateUser(s.T(), s.db)

		got, err := s.authService.CompleteOnboarding(ctx, user.UserID)
		s.Require().NoError(err)
		s.True(got.OnboardingCompleted)
	})

	s.Run("異常系: 存在しないユーザー", func() {
		s.SetupTest()
		_, err := s.authService.GetProfile(ctx, uuid.New())
		s.assertCode(err, "USER_NOT_FOUND", model.ErrNotFound)

		_, err = s.authService.CompleteOnboarding(ctx, uuid.New())
		s.assertCode(err, "USER_NOT_FOUND", model.ErrNotFound)
	})
}

func (s *AuthServiceTestSuite) TestChangePassword() {
	ctx := context.Background()

	s.Run("正常系: 変更後は新しいパスワードでログインできる", func() {
		s.SetupTest()
		user := s.createUserWithPassword("pw@example.com", "old-password", true)

		err := s.authService.ChangePassword(ctx, user.UserID, &model.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})
		s.Require().NoError(err)

		_, err = s.authService.Login(ctx, &model.LoginRequest{Email: "pw@example.com", Password: "new-password"})
		s.NoError(err)
	})

	s.Run("異常系: 現在のパスワードが違う", func() {
		s.SetupTest()
		user := s.createUserWithPassword("pw@example.com", "old-password", true)

		err := s.authService.ChangePassword(ctx, user.UserID, &model.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "new-password"})
		s.assertCode(err, "INVALID_PASSWORD", model.ErrInvalidInput)
	})
}

func (s *AuthServiceTestSuite) TestPasswordReset() {
	ctx := context.Background()

	s.Run("正常系: 未登録のメールアドレスでも成功を返す", func() {
		s.SetupTest()
		s.NoError(s.authService.RequestPasswordReset(ctx, "ghost@example.com"))
		s.mockMailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("正常系: リセットメールのトークンでパスワードを再設定する", func() {
		s.SetupTest()
		user := s.createUserWithPassword("reset@example.com", "old-password", true)
		s.mockMailer.On("Send", mock.Anything, "reset@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		s.Require().NoError(s.authService.RequestPasswordReset(ctx, "reset@example.com"))

		var token model.PasswordResetToken
		s.Require().NoError(s.db.Where("user_id = ?", user.UserID).First(&token).Error)
		s.WithinDuration(time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

		s.Require().NoError(s.authService.ResetPassword(ctx, token.Token, "brand-new"))

		_, err := s.authService.Login(ctx, &model.LoginRequest{Email: "reset@example.com", Password: "brand-new"})
		s.NoError(err)

		// トークンは使い捨て
		s.assertCode(s.authService.ResetPassword(ctx, token.Token, "again-new"), "INVALID_TOKEN", model.ErrInvalidInput)
	})
}

func (s *AuthServiceTestSuite) TestRegister_TokenSaveFailure() {
	tokenRepo := repomocks.NewTokenRepository(s.T())
	tokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).
		Return(errors.New("insert failed")).Once()
	svc := service.NewAuthService(s.db, repository.NewGormUserRepository(), tokenRepo, s.mockMailer, s.cfg)

	user, err := svc.Register(context.Background(), &model.RegisterRequest{Name: "erin", Email: "erin@example.com", Password: "password"})
	s.Nil(user)
	s.Require().Error(err)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("INTERNAL_SERVER_ERROR", appErr.Detail.Code)

	// ユーザーも作られていない
	var count int64
	s.Require().NoError(s.db.Model(&model.User{}).Where("email = ?", "erin@example.com").Count(&count).Error)
	s.Zero(count)
	s.mockMailer.AssertNotCalled(s.T(), "Send")
}
