package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	internal "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/auth"
	employeeDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/employee"
	sessionDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/session"
	userDatamodel "github.com/alorahq/hr-portal/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUserByEmail returns nil when no account matches the email; errors
// are storage failures only.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
	}, nil
}

func (r *Repository) GetEmployeeIDByEmail(ctx context.Context, email string) (*int64, error) {
	var row employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Select("id").
		Where("email = ? AND is_deleted = ?", email, false).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row.ID, nil
}

// CreateUserWithEmployee inserts the account and the minimal employee row
// in one transaction so a half-registered account can never exist.
func (r *Repository) CreateUserWithEmployee(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var userID int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := userDatamodel.User{
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         string(auth.RoleEmployee),
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return internal.ErrEmailTaken
			}
			return err
		}

		employee := employeeDatamodel.Employee{
			FullName: name,
			Email:    email,
		}
		if err := tx.Create(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return internal.ErrEmailTaken
			}
			return err
		}

		userID = user.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// SessionStore is the database-backed auth.SessionStore. It is the
// production implementation; restarts keep sessions alive.
type SessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Put(ctx context.Context, session *auth.Session) error {
	row := sessionDatamodel.Session{
		Token:      session.Token,
		UserID:     session.Identity.UserID,
		UserName:   session.Identity.Name,
		UserEmail:  session.Identity.Email,
		EmployeeID: session.Identity.EmployeeID,
		Role:       string(session.Identity.Role),
		ExpiresAt:  session.ExpiresAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *SessionStore) Get(ctx context.Context, token string) (*auth.Session, error) {
	var row sessionDatamodel.Session
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !s.now().Before(row.ExpiresAt) {
		// Expired rows are dropped on read; best effort, the background
		// sweep catches what this misses.
		_ = s.db.WithContext(ctx).Delete(&sessionDatamodel.Session{}, "token = ?", token).Error
		return nil, nil
	}

	return &auth.Session{
		Token: row.Token,
		Identity: auth.Identity{
			UserID:     row.UserID,
			Name:       row.UserName,
			Email:      row.UserEmail,
			EmployeeID: row.EmployeeID,
			Role:       auth.ParseRole(row.Role),
		},
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (s *SessionStore) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	return s.db.WithContext(ctx).
		Model(&sessionDatamodel.Session{}).
		Where("token = ?", token).
		Update("expires_at", expiresAt).Error
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Delete(&sessionDatamodel.Session{}, "token = ?", token).Error
}

// Sweep removes expired session rows. The server runs it periodically.
func (s *SessionStore) Sweep(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&sessionDatamodel.Session{})
	return res.RowsAffected, res.Error
}
