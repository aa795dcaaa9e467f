package candidate

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-tracker-backend/db"
	candidatestore "talent-tracker-backend/lib/candidate/store"
	candidatevalidator "talent-tracker-backend/lib/candidate/validator"
	filestorage "talent-tracker-backend/lib/file-storage"
	initchecker "talent-tracker-backend/lib/utils/init-checker"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
	dbmodels "talent-tracker-backend/models/db"
)

const (
	MsgCreated          = "Candidate successfully added to the system"
	MsgValidationFailed = "Validation failed"
	MsgEmailExists      = "Candidate with this email already exists"
	MsgCreateFailed     = "Failed to create candidate"
	ErrEmailRegistered  = "Email already registered"
	ErrInternal         = "An internal error occurred while saving the candidate"
)

type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	OutcomeRejected
	OutcomeFailed
)

// Outcome результат приема анкеты
type Outcome struct {
	Kind      OutcomeKind
	Message   string
	Candidate *candidateapimodels.CandidateView
	Reasons   []string // Rejected: нарушенные правила
	Err       error    // Failed: причина, только для логов
}

func (o Outcome) ErrorText() string {
	switch o.Kind {
	case OutcomeRejected:
		return strings.Join(o.Reasons, ", ")
	case OutcomeFailed:
		return ErrInternal
	}
	return ""
}

// Notifier оповещение о новом кандидате, ошибки не влияют на результат
type Notifier interface {
	NewCandidate(view candidateapimodels.CandidateView)
}

type Provider interface {
	CreateCandidate(ctx context.Context, submission candidateapimodels.Submission) Outcome
	ListCandidates(ctx context.Context) ([]candidateapimodels.CandidateView, error)
	GetCandidate(ctx context.Context, id uint) (*candidateapimodels.CandidateView, error)
}

var Instance Provider

func NewHandler(files filestorage.Provider, notifier Notifier) {
	instance := NewInstance(candidatestore.NewInstance(db.DB), files, candidatevalidator.NewInstance(), notifier)
	Instance = instance
}

func NewInstance(store candidatestore.Provider, files filestorage.Provider, validator candidatevalidator.Validator, notifier Notifier) Provider {
	instance := impl{
		store:     store,
		files:     files,
		validator: validator,
		notifier:  notifier,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"files", instance.files,
		"validator", instance.validator,
	)
	return instance
}

type impl struct {
	store     candidatestore.Provider
	files     filestorage.Provider
	validator candidatevalidator.Validator
	notifier  Notifier
}

func (i impl) CreateCandidate(ctx context.Context, submission candidateapimodels.Submission) Outcome {
	logger := log.WithField("email", submission.Email)

	result := i.validator.Validate(submission.CandidateData)
	if !result.IsValid {
		i.compensate(ctx, submission, logger)
		return Outcome{
			Kind:    OutcomeRejected,
			Message: MsgValidationFailed,
			Reasons: result.Errors,
		}
	}

	existing, err := i.store.FindByEmail(ctx, submission.Email)
	if err != nil {
		i.compensate(ctx, submission, logger)
		return i.failed(err, logger)
	}
	if existing != nil {
		i.compensate(ctx, submission, logger)
		return emailRejected()
	}

	rec, err := i.store.Create(ctx, submission.ToDB())
	if err != nil {
		i.compensate(ctx, submission, logger)
		// параллельная заявка с тем же email успела раньше
		if errors.Is(err, candidatestore.ErrDuplicateEmail) {
			return emailRejected()
		}
		return i.failed(err, logger)
	}

	view := candidateapimodels.CandidateConvert(*rec)
	logger.WithField("candidate_id", rec.ID).Info("кандидат добавлен")
	if i.notifier != nil {
		go i.notifier.NewCandidate(view)
	}
	return Outcome{
		Kind:      OutcomeCreated,
		Message:   MsgCreated,
		Candidate: &view,
	}
}

func (i impl) ListCandidates(ctx context.Context) ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to retrieve candidates")
	}
	return convertList(list), nil
}

func (i impl) GetCandidate(ctx context.Context, id uint) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to retrieve candidate")
	}
	if rec == nil {
		return nil, nil
	}
	view := candidateapimodels.CandidateConvert(*rec)
	return &view, nil
}

// compensate удаляет файл, записанный до отказа. Отмена запроса не должна мешать удалению
func (i impl) compensate(ctx context.Context, submission candidateapimodels.Submission, logger *log.Entry) {
	if submission.CV == nil || submission.CV.FilePath == "" {
		return
	}
	if !i.files.Delete(context.WithoutCancel(ctx), submission.CV.FilePath) {
		logger.WithField("path", submission.CV.FilePath).Warn("файл резюме для удаления не найден")
	}
}

func (i impl) failed(err error, logger *log.Entry) Outcome {
	logger.WithError(err).Error("ошибка сохранения кандидата")
	return Outcome{
		Kind:    OutcomeFailed,
		Message: MsgCreateFailed,
		Err:     err,
	}
}

func emailRejected() Outcome {
	return Outcome{
		Kind:    OutcomeRejected,
		Message: MsgEmailExists,
		Reasons: []string{ErrEmailRegistered},
	}
}

func convertList(list []dbmodels.Candidate) []candidateapimodels.CandidateView {
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result
}

