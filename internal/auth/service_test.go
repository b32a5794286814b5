package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	internal "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/pkg/logger"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.Repository for testing
type MockRepository struct {
	users       map[string]*auth.User
	employeeIDs map[string]int64
	nextUserID  int64
	shouldFail  bool
	failError   error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users:       make(map[string]*auth.User),
		employeeIDs: make(map[string]int64),
		nextUserID:  1,
	}
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *MockRepository) GetEmployeeIDByEmail(ctx context.Context, email string) (*int64, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	id, ok := m.employeeIDs[email]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (m *MockRepository) CreateUserWithEmployee(ctx context.Context, name, email, passwordHash string) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	if _, exists := m.users[email]; exists {
		return 0, internal.ErrEmailTaken
	}
	id := m.nextUserID
	m.nextUserID++
	m.users[email] = &auth.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash, Role: "employee"}
	m.employeeIDs[email] = id + 100
	return id, nil
}

func (m *MockRepository) AddUser(email, name, password, role string, employeeID *int64) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	m.users[email] = &auth.User{
		ID:           m.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	m.nextUserID++
	if employeeID != nil {
		m.employeeIDs[email] = *employeeID
	}
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		store    *auth.MemorySessionStore
		service  *auth.Service
		ctx      context.Context
		clock    time.Time
	)

	employeeID := int64(42)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		clock = time.Date(2025, time.August, 15, 10, 0, 0, 0, time.UTC)
		store = auth.NewMemorySessionStore().WithClock(func() time.Time { return clock })
		service = auth.NewService(mockRepo, store, 2*time.Hour, bcrypt.MinCost, logger.L()).
			WithClock(func() time.Time { return clock })
		ctx = context.Background()
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			mockRepo.AddUser("budi@alora.id", "Budi Santoso", "rahasia123", "employee", &employeeID)
		})

		Context("with valid credentials", func() {
			It("should mint a session with the employee link", func() {
				session, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "budi@alora.id",
					Password: "rahasia123",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).NotTo(BeEmpty())
				Expect(session.Identity.Email).To(Equal("budi@alora.id"))
				Expect(session.Identity.Role).To(Equal(auth.RoleEmployee))
				Expect(*session.Identity.EmployeeID).To(Equal(employeeID))
				Expect(session.ExpiresAt).To(Equal(clock.Add(2 * time.Hour)))
			})

			It("should persist the session in the store", func() {
				session, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "budi@alora.id",
					Password: "rahasia123",
				})
				Expect(err).NotTo(HaveOccurred())

				stored, err := store.Get(ctx, session.Token)
				Expect(err).NotTo(HaveOccurred())
				Expect(stored).NotTo(BeNil())
				Expect(stored.Identity.UserID).To(Equal(session.Identity.UserID))
			})
		})

		Context("without an employee row", func() {
			It("should mint a session with a nil employee link", func() {
				mockRepo.AddUser("new@alora.id", "New Hire", "rahasia123", "employee", nil)

				session, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "new@alora.id",
					Password: "rahasia123",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Identity.EmployeeID).To(BeNil())
				Expect(session.Identity.HasEmployee()).To(BeFalse())
			})
		})

		Context("with a wrong password", func() {
			It("should return the invalid-credentials error", func() {
				_, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "budi@alora.id",
					Password: "salah",
				})
				Expect(err).To(Equal(internal.ErrInvalidCredentials))
			})
		})

		Context("with an unknown email", func() {
			It("should return the same invalid-credentials error", func() {
				_, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "nobody@alora.id",
					Password: "rahasia123",
				})
				Expect(err).To(Equal(internal.ErrInvalidCredentials))
			})
		})

		Context("when the user lookup fails", func() {
			It("should surface an opaque internal error, not invalid credentials", func() {
				mockRepo.shouldFail = true
				mockRepo.failError = errors.New("connection refused")

				_, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "budi@alora.id",
					Password: "rahasia123",
				})
				Expect(err).To(HaveOccurred())
				Expect(err).NotTo(Equal(internal.ErrInvalidCredentials))
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(500))
			})
		})

		Context("with a malformed payload", func() {
			It("should reject before touching the repository", func() {
				_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "", Password: ""})
				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Code).To(Equal(internal.ErrCodeValidationFailed))
			})
		})

		Context("with an unknown role on the row", func() {
			It("should fall back to the employee role", func() {
				mockRepo.AddUser("weird@alora.id", "Weird Row", "rahasia123", "superuser", nil)

				session, err := service.Authenticate(ctx, auth.LoginDTO{
					Email:    "weird@alora.id",
					Password: "rahasia123",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Identity.Role).To(Equal(auth.RoleEmployee))
			})
		})
	})

	Describe("Register", func() {
		It("should create the account and answer with an employee-role identity", func() {
			identity, err := service.Register(ctx, auth.RegisterDTO{
				Email:    "new@alora.id",
				Name:     "New Hire",
				Password: "rahasia123",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.Role).To(Equal(auth.RoleEmployee))
			Expect(identity.Email).To(Equal("new@alora.id"))
		})

		It("should report a conflict for a taken email", func() {
			mockRepo.AddUser("budi@alora.id", "Budi Santoso", "rahasia123", "employee", nil)

			_, err := service.Register(ctx, auth.RegisterDTO{
				Email:    "budi@alora.id",
				Name:     "Other Budi",
				Password: "rahasia123",
			})
			Expect(err).To(Equal(internal.ErrEmailTaken))
		})
	})

	Describe("Resolve", func() {
		var token string

		BeforeEach(func() {
			mockRepo.AddUser("budi@alora.id", "Budi Santoso", "rahasia123", "hr", &employeeID)
			session, err := service.Authenticate(ctx, auth.LoginDTO{
				Email:    "budi@alora.id",
				Password: "rahasia123",
			})
			Expect(err).NotTo(HaveOccurred())
			token = session.Token
		})

		It("should resolve a live token to its identity", func() {
			session, err := service.Resolve(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(session).NotTo(BeNil())
			Expect(session.Identity.Role).To(Equal(auth.RoleHR))
		})

		It("should slide the expiry forward on each resolve", func() {
			clock = clock.Add(90 * time.Minute)

			session, err := service.Resolve(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.ExpiresAt).To(Equal(clock.Add(2 * time.Hour)))

			// the original window would have ended 30 minutes from now;
			// after another 100 minutes the session must still be alive
			clock = clock.Add(100 * time.Minute)
			session, err = service.Resolve(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(session).NotTo(BeNil())
		})

		It("should resolve an expired token to nil", func() {
			clock = clock.Add(2*time.Hour + time.Minute)

			session, err := service.Resolve(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(session).To(BeNil())
		})

		It("should resolve an unknown token to nil", func() {
			session, err := service.Resolve(ctx, "no-such-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(session).To(BeNil())
		})

		It("should resolve an empty token to nil", func() {
			session, err := service.Resolve(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(session).To(BeNil())
		})
	})

	Describe("Logout", func() {
		It("should drop the session so the token stops resolving", func() {
			mockRepo.AddUser("budi@alora.id", "Budi Santoso", "rahasia123", "employee", nil)
			session, err := service.Authenticate(ctx, auth.LoginDTO{
				Email:    "budi@alora.id",
				Password: "rahasia123",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Logout(ctx, session.Token)).To(Succeed())

			resolved, err := service.Resolve(ctx, session.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved).To(BeNil())
		})

		It("should tolerate an unknown token", func() {
			Expect(service.Logout(ctx, "no-such-token")).To(Succeed())
		})
	})
})
