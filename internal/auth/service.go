package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errors "github.com/alorahq/hr-portal/internal"
)

// User is the credential row as the auth service sees it.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

// Repository is the identity-store access the auth service needs.
type Repository interface {
	// GetUserByEmail returns nil when no account matches the email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetEmployeeIDByEmail returns nil when no non-deleted employee row
	// matches the email.
	GetEmployeeIDByEmail(ctx context.Context, email string) (*int64, error)
	CreateUserWithEmployee(ctx context.Context, name, email, passwordHash string) (int64, error)
}

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (*Session, error)
	Register(ctx context.Context, dto RegisterDTO) (*Identity, error)
	Resolve(ctx context.Context, token string) (*Session, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	repo       Repository
	sessions   SessionStore
	sessionTTL time.Duration
	bcryptCost int
	now        func() time.Time
	logger     *slog.Logger
}

func NewService(repo Repository, sessions SessionStore, sessionTTL time.Duration, bcryptCost int, logger *slog.Logger) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 2 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock replaces the service clock; tests pin it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Authenticate checks the credentials and creates a session. Lookup miss
// and password mismatch return the same error so responses never reveal
// which half failed.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*Session, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Error("user lookup failed", "error", err)
		return nil, errors.NewInternalError("failed to authenticate", err)
	}
	if user == nil {
		s.logger.Warn("login failed: unknown email")
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", user.ID)
		return nil, errors.ErrInvalidCredentials
	}

	employeeID, err := s.repo.GetEmployeeIDByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("employee link lookup failed", "error", err, "user_id", user.ID)
		return nil, errors.NewInternalError("failed to create session", err)
	}

	session := &Session{
		Token: uuid.NewString(),
		Identity: Identity{
			UserID:     user.ID,
			Name:       user.Name,
			Email:      user.Email,
			EmployeeID: employeeID,
			Role:       ParseRole(user.Role),
		},
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		s.logger.Error("session store put failed", "error", err, "user_id", user.ID)
		return nil, errors.NewInternalError("failed to create session", err)
	}

	s.logger.Info("login succeeded",
		"user_id", user.ID,
		"role", session.Identity.Role,
		"has_employee", session.Identity.EmployeeID != nil)

	return session, nil
}

// Register creates the account plus the minimal employee row, role
// employee.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*Identity, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	userID, err := s.repo.CreateUserWithEmployee(ctx, dto.EffectiveName(), dto.Email, string(hash))
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("registration failed", "error", err)
		return nil, errors.NewInternalError("failed to register", err)
	}

	s.logger.Info("user registered", "user_id", userID)

	return &Identity{
		UserID: userID,
		Name:   dto.EffectiveName(),
		Email:  dto.Email,
		Role:   RoleEmployee,
	}, nil
}

// Resolve looks the token up and slides the expiry window forward. A miss
// or an expired session resolves to nil without error; the caller decides
// to 401.
func (s *Service) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, errors.NewInternalError("session lookup failed", err)
	}
	if session == nil {
		return nil, nil
	}

	session.ExpiresAt = s.now().Add(s.sessionTTL)
	if err := s.sessions.Touch(ctx, token, session.ExpiresAt); err != nil {
		// The request still proceeds with a valid session; only the
		// sliding refresh was lost.
		s.logger.Warn("session touch failed", "error", err)
	}

	return session, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("session delete failed", "error", err)
		return errors.NewInternalError("failed to destroy session", err)
	}
	return nil
}

// SessionTTL exposes the configured window for cookie max-age.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
