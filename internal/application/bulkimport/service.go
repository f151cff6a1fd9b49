package bulkimport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/scim-provision/internal/domain/user"
)

// userStore is the slice of the record store the pipeline needs. The store
// enforces userName uniqueness per realm as a backstop even when duplicate
// checking is disabled.
type userStore interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByUserName(ctx context.Context, realmID, userName string) (domain.User, error)
}

type realmChecker interface {
	Exists(ctx context.Context, realmID string) (bool, error)
}

type Config struct {
	MaxFileBytes int64
	MaxRows      int
}

const (
	defaultMaxFileBytes = 5 * 1024 * 1024
	defaultMaxRows      = 1000
)

type Service struct {
	users  userStore
	realms realmChecker
	cfg    Config
	log    *zap.Logger
	now    func() time.Time
}

func NewService(users userStore, realms realmChecker, cfg Config, log *zap.Logger) *Service {
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = defaultMaxFileBytes
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = defaultMaxRows
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		users:  users,
		realms: realms,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Input describes one uploaded file. Size is the declared upload size and
// is checked before Content is looked at.
type Input struct {
	RealmID  string
	FileName string
	Size     int64
	Content  []byte
	Policy   Policy
}

// Run processes a bulk import end to end: file checks, structural parsing,
// then a strictly sequential fold over rows under the caller's policy.
// Row commits are independent; a failure on a later row never rolls back
// earlier ones. Callers needing all-or-nothing semantics should dry-run
// first and commit only after a clean pass.
func (s *Service) Run(ctx context.Context, in Input) Report {
	start := s.now()

	s.log.Info("starting bulk import",
		zap.String("realm_id", in.RealmID),
		zap.String("file", in.FileName),
		zap.Bool("dry_run", in.Policy.DryRun),
		zap.Bool("skip_duplicates", in.Policy.SkipDuplicates),
		zap.Bool("continue_on_error", in.Policy.ContinueOnError),
	)

	exists, err := s.realms.Exists(ctx, in.RealmID)
	if err != nil {
		return s.fileFailure(start, fmt.Sprintf("Failed to verify realm: %v", err))
	}
	if !exists {
		return s.fileFailure(start, fmt.Sprintf("Realm '%s' not found", in.RealmID))
	}

	if fileErrs := s.validateFile(in.FileName, in.Size); len(fileErrs) > 0 {
		report := s.fileFailure(start, fileErrs...)
		report.CSVValidationErrors = fileErrs
		return report
	}

	rows, csvErrors := parseCSV(in.Content, s.cfg.MaxRows)
	if len(rows) == 0 {
		report := s.fileFailure(start, csvErrors...)
		report.CSVValidationErrors = csvErrors
		return report
	}

	report := Report{
		TotalRows:           len(rows),
		Results:             make([]RowOutcome, 0, len(rows)),
		CSVValidationErrors: csvErrors,
	}

	// When continue_on_error is off, rows past the first failure produce
	// no outcome while TotalRows still counts every parsed row.
	stop := false
	for _, row := range rows {
		if stop {
			break
		}

		outcome, failed := s.processRow(ctx, in.RealmID, row, in.Policy)
		report.Results = append(report.Results, outcome)

		switch outcome.Status {
		case RowSuccess:
			report.SuccessfulImports++
		case RowSkipped:
			report.SkippedImports++
		case RowError:
			report.FailedImports++
		}

		if failed && !in.Policy.ContinueOnError {
			stop = true
		}
	}

	report.Status = aggregateStatus(report.SuccessfulImports, report.TotalRows, report.CSVValidationErrors)
	report.ProcessingTimeSeconds = s.now().Sub(start).Seconds()

	s.log.Info("bulk import completed",
		zap.String("realm_id", in.RealmID),
		zap.String("status", string(report.Status)),
		zap.Int("successful", report.SuccessfulImports),
		zap.Int("failed", report.FailedImports),
		zap.Int("skipped", report.SkippedImports),
		zap.Float64("seconds", report.ProcessingTimeSeconds),
	)

	return report
}

// processRow resolves one row to its outcome. The second return value
// reports whether the row failed, which feeds the early-stop decision.
func (s *Service) processRow(ctx context.Context, realmID string, row rawRow, policy Policy) (RowOutcome, bool) {
	record, validationErrs := validateRow(row)
	if len(validationErrs) > 0 {
		return RowOutcome{
			RowNumber: row.number,
			UserName:  rowUserName(row),
			Status:    RowError,
			Message:   "Validation failed",
			Errors:    validationErrs,
		}, true
	}

	if policy.SkipDuplicates {
		_, err := s.users.GetByUserName(ctx, realmID, record.UserName)
		switch {
		case err == nil:
			return RowOutcome{
				RowNumber: row.number,
				UserName:  record.UserName,
				Status:    RowSkipped,
				Message:   fmt.Sprintf("User '%s' already exists in realm", record.UserName),
			}, false
		case !errors.Is(err, domain.ErrUserNotFound):
			return RowOutcome{
				RowNumber: row.number,
				UserName:  record.UserName,
				Status:    RowError,
				Message:   fmt.Sprintf("Failed to check for duplicates: %v", err),
			}, true
		}
	}

	if policy.DryRun {
		return RowOutcome{
			RowNumber: row.number,
			UserName:  record.UserName,
			Status:    RowSuccess,
			Message:   "Validation successful (dry run)",
		}, false
	}

	record.RealmID = realmID
	created, err := s.users.Create(ctx, record)
	if err != nil {
		return RowOutcome{
			RowNumber: row.number,
			UserName:  record.UserName,
			Status:    RowError,
			Message:   fmt.Sprintf("Failed to create user: %v", err),
		}, true
	}

	s.log.Info("created user",
		zap.String("realm_id", realmID),
		zap.String("user_name", created.UserName),
		zap.String("user_id", created.ID),
	)

	return RowOutcome{
		RowNumber: row.number,
		UserName:  created.UserName,
		Status:    RowSuccess,
		UserID:    created.ID,
		Message:   fmt.Sprintf("User '%s' created successfully", created.UserName),
	}, false
}

func (s *Service) fileFailure(start time.Time, errs ...string) Report {
	return Report{
		Status:                StatusFailed,
		ProcessingTimeSeconds: s.now().Sub(start).Seconds(),
		Results:               []RowOutcome{},
		Errors:                errs,
	}
}
