package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/pkg/logger"
)

var _ = Describe("Auth Handler", func() {
	var (
		mockRepo *MockRepository
		store    *auth.MemorySessionStore
		handler  *auth.Handler
	)

	employeeID := int64(42)

	sessionCookie := func(rec *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range rec.Result().Cookies() {
			if c.Name == "alora_sid" {
				return c
			}
		}
		return nil
	}

	login := func(email, password string) *httptest.ResponseRecorder {
		body := `{"email":"` + email + `","password":"` + password + `"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockRepo.AddUser("budi@alora.id", "Budi Santoso", "rahasia123", "employee", &employeeID)
		store = auth.NewMemorySessionStore()
		service := auth.NewService(mockRepo, store, 2*time.Hour, bcrypt.MinCost, logger.L())
		handler = auth.NewHandler(service, auth.CookieConfig{Name: "alora_sid"}, 2*time.Hour)
	})

	Describe("Login", func() {
		It("should set the session cookie and return the identity", func() {
			rec := login("budi@alora.id", "rahasia123")
			Expect(rec.Code).To(Equal(http.StatusOK))

			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).NotTo(BeEmpty())
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.MaxAge).To(Equal(7200))

			var resp auth.IdentityResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.User.Email).To(Equal("budi@alora.id"))
		})

		It("should answer 401 with no cookie on bad credentials", func() {
			rec := login("budi@alora.id", "salah")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(sessionCookie(rec)).To(BeNil())
		})

		It("should answer 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("SessionMiddleware", func() {
		var protected http.Handler

		BeforeEach(func() {
			protected = handler.SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := auth.IdentityFromContext(r.Context())
				Expect(ok).To(BeTrue())
				w.Write([]byte(identity.Email))
			}))
		})

		It("should pass a valid session through with its identity", func() {
			cookie := sessionCookie(login("budi@alora.id", "rahasia123"))

			req := httptest.NewRequest(http.MethodGet, "/apps", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(Equal("budi@alora.id"))
		})

		It("should answer 401 without a cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/apps", nil)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should answer 401 and clear the cookie for a stale token", func() {
			req := httptest.NewRequest(http.MethodGet, "/apps", nil)
			req.AddCookie(&http.Cookie{Name: "alora_sid", Value: "no-such-token"})
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			cookie := sessionCookie(rec)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})

		It("should refresh the cookie on every hit", func() {
			cookie := sessionCookie(login("budi@alora.id", "rahasia123"))

			req := httptest.NewRequest(http.MethodGet, "/apps", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			refreshed := sessionCookie(rec)
			Expect(refreshed).NotTo(BeNil())
			Expect(refreshed.Value).To(Equal(cookie.Value))
		})
	})

	Describe("RequirePolicy", func() {
		makeGated := func(policy auth.Policy) http.Handler {
			return handler.SessionMiddleware(
				handler.RequirePolicy(policy)(
					http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						w.WriteHeader(http.StatusOK)
					})))
		}

		It("should answer 403 for a role outside the allow list", func() {
			cookie := sessionCookie(login("budi@alora.id", "rahasia123"))

			req := httptest.NewRequest(http.MethodGet, "/satisfaction/stats", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			makeGated(auth.AnyOf(auth.RoleHR, auth.RoleAdmin)).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("should admit a role on the allow list", func() {
			mockRepo.AddUser("sari.hr@alora.id", "Sari Wijaya", "rahasia123", "hr", nil)
			cookie := sessionCookie(login("sari.hr@alora.id", "rahasia123"))

			req := httptest.NewRequest(http.MethodGet, "/satisfaction/stats", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			makeGated(auth.AnyOf(auth.RoleHR, auth.RoleAdmin)).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("Logout", func() {
		It("should drop the session and clear the cookie", func() {
			cookie := sessionCookie(login("budi@alora.id", "rahasia123"))

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req.AddCookie(cookie)
			rec := httptest.NewRecorder()
			handler.Logout(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			cleared := sessionCookie(rec)
			Expect(cleared).NotTo(BeNil())
			Expect(cleared.MaxAge).To(BeNumerically("<", 0))

			stored, err := store.Get(context.Background(), cookie.Value)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeNil())
		})
	})
})
