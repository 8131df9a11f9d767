package services

import (
	"context"
	"strings"
	"time"

	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/services/logger"
	"stayrooted/store"
	"stayrooted/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier kiểm tra Google ID token; mặc định là idtoken.Validate
type GoogleVerifier func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type AuthServiceOptions struct {
	Catalog        store.Catalog
	Sessions       store.Cache
	Tokens         *TokenManager
	Logger         logger.Logger
	Delay          time.Duration
	SessionTTL     time.Duration
	GoogleClientID string
	VerifyGoogle   GoogleVerifier
}

// AuthService là đăng nhập giả lập: mọi email/password đều được chấp nhận
type AuthService struct {
	catalog        store.Catalog
	sessions       store.Cache
	tokens         *TokenManager
	logger         logger.Logger
	delay          time.Duration
	sessionTTL     time.Duration
	googleClientID string
	verifyGoogle   GoogleVerifier
	now            func() time.Time
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	verify := opts.VerifyGoogle
	if verify == nil {
		verify = idtoken.Validate
	}
	return &AuthService{
		catalog:        opts.Catalog,
		sessions:       opts.Sessions,
		tokens:         opts.Tokens,
		logger:         opts.Logger,
		delay:          opts.Delay,
		sessionTTL:     opts.SessionTTL,
		googleClientID: opts.GoogleClientID,
		verifyGoogle:   verify,
		now:            time.Now,
	}
}

func sessionKey(userID string) string {
	return constants.SessionKey + ":" + userID
}

func authFailed(err error) error {
	return errors.NewAppError(errors.ErrCodeAuthFailed, constants.MsgAuthFailed, err)
}

// wait giả lập độ trễ mạng, dừng sớm nếu context bị hủy
func (s *AuthService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *AuthService) findHostByEmail(ctx context.Context, email string) (*models.User, error) {
	hosts, err := s.catalog.Hosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range hosts {
		if hosts[i].Email == email {
			return &hosts[i], nil
		}
	}
	return nil, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// Login trả về host nếu email trùng host mẫu, ngược lại tạo traveler mới
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, authFailed(err)
	}
	if input.Email == "" || input.Password == "" {
		return nil, authFailed(errors.ErrMissingRequired)
	}

	host, err := s.findHostByEmail(ctx, input.Email)
	if err != nil {
		return nil, authFailed(err)
	}

	var user models.User
	if host != nil {
		user = *host
	} else {
		user = models.User{
			ID:        uuid.NewString(),
			Email:     input.Email,
			Name:      localPart(input.Email),
			Role:      constants.RoleTraveler,
			CreatedAt: s.now(),
		}
	}

	return s.startSession(ctx, user)
}

// Register tạo user mới với role được chọn
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.LoginResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, authFailed(err)
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, errors.NewAppError(errors.ErrCodeValidation, constants.MsgAuthFailed, errors.ErrMissingRequired)
	}
	if err := validator.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validator.ValidateRole(input.Role); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, authFailed(err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		Password:  hashed,
		CreatedAt: s.now(),
	}
	return s.startSession(ctx, user)
}

// GoogleLogin đăng nhập bằng Google ID token khi đã cấu hình client id
func (s *AuthService) GoogleLogin(ctx context.Context, input dto.GoogleLoginInput) (*dto.LoginResponse, error) {
	if s.googleClientID == "" {
		return nil, errors.NewAppError(errors.ErrCodeUnavailable, constants.MsgGoogleLoginUnavailable, errors.ErrNotConfigured)
	}

	payload, err := s.verifyGoogle(ctx, input.IDToken, s.googleClientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid Google token", err)
	}

	google := googleUserFromPayload(payload)
	if google.Email == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Google token has no email", nil)
	}

	host, err := s.findHostByEmail(ctx, google.Email)
	if err != nil {
		return nil, authFailed(err)
	}
	if host != nil {
		return s.startSession(ctx, *host)
	}

	name := google.Name
	if name == "" {
		name = localPart(google.Email)
	}
	return s.startSession(ctx, models.User{
		ID:        uuid.NewString(),
		Email:     google.Email,
		Name:      name,
		Role:      constants.RoleTraveler,
		Avatar:    google.Picture,
		CreatedAt: s.now(),
	})
}

func googleUserFromPayload(payload *idtoken.Payload) dto.GoogleUser {
	var u dto.GoogleUser
	if payload == nil {
		return u
	}
	u.Email, _ = payload.Claims["email"].(string)
	u.Name, _ = payload.Claims["name"].(string)
	u.Picture, _ = payload.Claims["picture"].(string)
	return u
}

func (s *AuthService) startSession(ctx context.Context, user models.User) (*dto.LoginResponse, error) {
	if err := s.sessions.Set(ctx, sessionKey(user.ID), user, s.sessionTTL); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save session", err)
	}

	token, err := s.tokens.GenerateToken(UserInfo{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, authFailed(err)
	}

	s.logger.Info("user %s signed in as %s", user.ID, user.Role)
	return &dto.LoginResponse{User: user, AccessToken: token}, nil
}

// Logout xóa session; gọi nhiều lần vẫn an toàn
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, sessionKey(userID)); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to clear session", err)
	}
	return nil
}

// CurrentUser trả về user của token nếu session còn tồn tại
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	info, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	found, err := s.sessions.Get(ctx, sessionKey(info.UserID), &user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load session", err)
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Please log in to continue", errors.ErrNoSession)
	}
	return &user, nil
}

// bcrypt chỉ nhận tối đa 72 byte
const maxPasswordBytes = 72

// HashPassword băm mật khẩu; phần vượt quá 72 byte bị bỏ
func HashPassword(password string) (string, error) {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}
	hashedPassword, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
