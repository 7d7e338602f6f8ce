package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	repo "github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/pkg/helpers"
	"github.com/nhea/awards-api/pkg/mailer"
)

// AuthService handles signup, email verification, and signin. Verification
// codes live in Redis with a TTL; the email itself goes out through the
// RabbitMQ queue so a slow SMTP hop never blocks the request.
type AuthService struct {
	Users       repo.UserRepository
	Audit       repo.AuditRepository
	Redis       *redis.Client
	JWT         *helpers.JWTManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	CodeTTL     time.Duration
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, audit repo.AuditRepository, rdb *redis.Client,
	jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger,
	codeTTL time.Duration, mailEnabled bool) *AuthService {
	return &AuthService{
		Users:       users,
		Audit:       audit,
		Redis:       rdb,
		JWT:         jwt,
		Pub:         pub,
		Logger:      logger,
		CodeTTL:     codeTTL,
		MailEnabled: mailEnabled,
	}
}

func keyVerifyCode(email string) string { return "email:verify:code:" + email }

// Signup creates an unverified account and sends a 6-digit code.
func (s *AuthService) Signup(ctx context.Context, name, email, password, ip string) (*entity.User, error) {
	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !isNotFound(err) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash, Role: entity.RolePublic}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.issueCode(ctx, u); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("verification code delivery failed")
	}
	s.audit(ctx, u.ID, "USER_SIGNUP", map[string]any{"email": email}, ip)
	return u, nil
}

// ResendCode issues a fresh verification code for an unverified account.
func (s *AuthService) ResendCode(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	return s.issueCode(ctx, u)
}

// VerifyEmail checks the code, marks the user verified, and issues a token.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code, ip string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if u.IsVerified {
		return nil, "", ErrAlreadyVerified
	}

	stored, err := s.Redis.Get(ctx, keyVerifyCode(email)).Result()
	if err != nil || stored == "" || stored != code {
		return nil, "", ErrInvalidCode
	}

	if err := s.Users.SetVerified(ctx, u.ID); err != nil {
		return nil, "", err
	}
	u.IsVerified = true
	s.Redis.Del(ctx, keyVerifyCode(email))

	token, _, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, "", err
	}
	s.audit(ctx, u.ID, "EMAIL_VERIFIED", map[string]any{"email": email}, ip)
	return u, token, nil
}

// Signin validates credentials and returns a token. Unverified accounts are
// rejected so every voter has a confirmed mailbox.
func (s *AuthService) Signin(ctx context.Context, email, password, ip string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !u.IsVerified {
		return nil, "", ErrEmailNotVerified
	}

	token, _, err := s.JWT.Generate(u.ID, u.Role)
	if err != nil {
		return nil, "", err
	}
	s.audit(ctx, u.ID, "USER_SIGNIN", map[string]any{"email": email}, ip)
	return u, token, nil
}

func (s *AuthService) issueCode(ctx context.Context, u *entity.User) error {
	code, err := helpers.GenVerificationCode()
	if err != nil {
		return err
	}
	if err := s.Redis.Set(ctx, keyVerifyCode(u.Email), code, s.CodeTTL).Err(); err != nil {
		return err
	}
	if s.Pub != nil && s.MailEnabled {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateVerifyEmail,
			Data: map[string]any{
				"Name":      u.Name,
				"Code":      code,
				"ExpiresIn": s.CodeTTL.String(),
			},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) audit(ctx context.Context, userID, action string, details map[string]any, ip string) {
	if s.Audit == nil {
		return
	}
	err := s.Audit.Insert(ctx, &entity.AuditEntry{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	})
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
