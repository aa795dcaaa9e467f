package candidatestore

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-tracker-backend/models/db"
)

// ErrDuplicateEmail нарушение уникального индекса по email
var ErrDuplicateEmail = errors.New("candidate email already exists")

type Provider interface {
	Create(ctx context.Context, rec dbmodels.Candidate) (*dbmodels.Candidate, error)
	FindByEmail(ctx context.Context, email string) (*dbmodels.Candidate, error)
	FindByID(ctx context.Context, id uint) (*dbmodels.Candidate, error)
	ListAll(ctx context.Context) ([]dbmodels.Candidate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.Candidate) (*dbmodels.Candidate, error) {
	rec.ID = 0
	err := i.db.WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, errors.Wrap(err, "ошибка создания кандидата")
	}
	return &rec, nil
}

func (i impl) FindByEmail(ctx context.Context, email string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка поиска кандидата по email")
	}
	return &rec, nil
}

func (i impl) FindByID(ctx context.Context, id uint) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка поиска кандидата по ид")
	}
	return &rec, nil
}

func (i impl) ListAll(ctx context.Context) ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	err := i.db.WithContext(ctx).
		Model(&dbmodels.Candidate{}).
		Order("created_at desc").
		Order("id desc").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	return list, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
