package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nutanixdev/payments-api/models"
)

var (
	// ErrConstraint marks an insert the storage engine rejected
	// (column limit, constraint violation). Distinct from schema
	// validation failures.
	ErrConstraint = errors.New("payment rejected by storage")

	// ErrUnavailable marks storage that could not take the write at
	// all.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is the persistence boundary for payment records. The database
// assigns identifiers, so concurrent creates never collide.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts one validated candidate and returns the stored record
// with its assigned id. Fields are persisted exactly as given.
func (s *Store) Create(ctx context.Context, candidate *PaymentCreate) (*models.Payment, error) {
	m := &models.Payment{
		Amount:      candidate.Amount,
		Currency:    candidate.Currency,
		Payee:       candidate.Payee,
		Description: candidate.Description,
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return m, nil
}

// isConstraintViolation reports whether the storage engine rejected
// the row itself. Besides gorm's translated sentinels this covers the
// raw postgres SQLSTATE classes 22 (data exception, e.g. 22001 value
// too long) and 23 (integrity constraint violation), which
// TranslateError does not map.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

// GetByID reads a stored record back. Returns found=false when no
// record has that id.
func (s *Store) GetByID(ctx context.Context, id uint) (*models.Payment, bool, error) {
	var m models.Payment
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &m, true, nil
}
