package satisfaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errors "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/internal/core/events"
)

// Repository is the survey storage contract. CreateSubmission performs the
// duplicate check and the dual insert inside one transaction; it returns
// internal.ErrDuplicateSubmission when the period is already completed,
// including when a concurrent submission wins the race at the unique
// index.
type Repository interface {
	GetCompletedAudit(ctx context.Context, employeeID int64, surveyKey string) (*AuditRecord, error)
	CreateSubmission(ctx context.Context, sub *Submission) error
	Stats(ctx context.Context, surveyKey string) (*Stats, error)
}

// MasterDataProvider supplies the live company/department lookups shown on
// the survey form.
type MasterDataProvider interface {
	ActiveCompanies(ctx context.Context) ([]CompanyOption, error)
	ActiveDepartments(ctx context.Context) ([]DepartmentOption, error)
}

type Service struct {
	repo   Repository
	master MasterDataProvider
	bus    *events.EventBus
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo Repository, master MasterDataProvider, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		master: master,
		bus:    bus,
		now:    time.Now,
		logger: logger,
	}
}

// WithClock replaces the service clock; tests pin it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CurrentSurveyKey returns the key for the period the clock is in.
func (s *Service) CurrentSurveyKey() string {
	return SurveyKey(s.now())
}

// Status reports whether the session's employee already completed the
// current period.
func (s *Service) Status(ctx context.Context, identity *auth.Identity) (*StatusResponse, error) {
	if identity == nil || !identity.HasEmployee() {
		return nil, errors.ErrIdentityIncomplete
	}

	surveyKey := s.CurrentSurveyKey()

	audit, err := s.repo.GetCompletedAudit(ctx, *identity.EmployeeID, surveyKey)
	if err != nil {
		s.logger.Error("survey status check failed", "error", err, "employee_id", *identity.EmployeeID)
		return nil, errors.NewInternalError("failed to check survey status", err)
	}

	resp := &StatusResponse{SurveyKey: surveyKey}
	if audit != nil {
		resp.HasSubmitted = true
		submittedAt := audit.SubmittedAt
		resp.SubmittedAt = &submittedAt
	}
	return resp, nil
}

// MasterData returns the live lookups plus the static option lists.
func (s *Service) MasterData(ctx context.Context) (*MasterDataResponse, error) {
	companies, err := s.master.ActiveCompanies(ctx)
	if err != nil {
		s.logger.Error("company lookup failed", "error", err)
		return nil, errors.NewInternalError("failed to load survey master data", err)
	}

	departments, err := s.master.ActiveDepartments(ctx)
	if err != nil {
		s.logger.Error("department lookup failed", "error", err)
		return nil, errors.NewInternalError("failed to load survey master data", err)
	}

	return &MasterDataResponse{
		Companies:          companies,
		Departments:        departments,
		JobLevels:          JobLevelOptions,
		Tenures:            TenureOptions,
		SatisfactionLevels: SatisfactionLevelOptions,
		MainFactors:        MainFactorOptions,
	}, nil
}

// Submit runs the submission workflow: identity check, duplicate check,
// validation, then the transactional dual-table write. The pre-check keeps
// the common duplicate case cheap; the repository re-checks inside the
// transaction and the unique index settles any remaining race.
func (s *Service) Submit(ctx context.Context, identity *auth.Identity, dto *SubmitSurveyDTO) (*SubmitResponse, error) {
	if identity == nil || !identity.HasEmployee() {
		return nil, errors.ErrIdentityIncomplete
	}

	surveyKey := s.CurrentSurveyKey()
	employeeID := *identity.EmployeeID

	existing, err := s.repo.GetCompletedAudit(ctx, employeeID, surveyKey)
	if err != nil {
		s.logger.Error("duplicate pre-check failed", "error", err, "employee_id", employeeID)
		return nil, errors.NewInternalError("failed to submit survey", err)
	}
	if existing != nil {
		return nil, errors.ErrDuplicateSubmission
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sub := &Submission{
		EmployeeID:          employeeID,
		Email:               identity.Email,
		SurveyKey:           surveyKey,
		CompanyID:           dto.CompanyID,
		DepartmentText:      dto.DepartmentText,
		JobLevel:            dto.JobLevel,
		Tenure:              dto.Tenure,
		OverallSatisfaction: dto.OverallSatisfaction,
		MainFactors:         dto.MainFactors,
		Likert:              dto.likertFields(),
		D1:                  dto.D1,
		D2:                  dto.D2,
		D3:                  dto.D3,
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			return nil, appErr
		}
		s.logger.Error("survey submission failed", "error", err, "employee_id", employeeID, "survey_key", surveyKey)
		return nil, errors.NewInternalError("failed to submit survey", err)
	}

	s.logger.Info("survey submitted", "employee_id", employeeID, "survey_key", surveyKey)

	if s.bus != nil {
		// Post-commit notification only; the submission is already durable.
		_ = s.bus.Publish(ctx, events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.EventSurveySubmitted,
			Timestamp: s.now(),
			Data: map[string]interface{}{
				"survey_key": surveyKey,
			},
		})
	}

	return &SubmitResponse{
		Message:   "Terima kasih! Survei berhasil dikirim.",
		SurveyKey: surveyKey,
	}, nil
}

// PeriodStats aggregates one period, defaulting to the current one when no
// key is given.
func (s *Service) PeriodStats(ctx context.Context, surveyKey string) (*Stats, error) {
	if surveyKey == "" {
		surveyKey = s.CurrentSurveyKey()
	}

	stats, err := s.repo.Stats(ctx, surveyKey)
	if err != nil {
		s.logger.Error("stats query failed", "error", err, "survey_key", surveyKey)
		return nil, errors.NewInternalError("failed to load survey statistics", err)
	}

	return stats, nil
}
