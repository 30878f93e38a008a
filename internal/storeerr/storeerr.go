package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Typed outcomes of the persistence layer. Repositories translate every
// store failure into one of these before it reaches a handler.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("referenced record not found")
	ErrConnection   = errors.New("database connection failed")
	ErrUnknown      = errors.New("database error")
)

const (
	uniqueViolation     = "23505"
	connectionClass     = "08"
	foreignKeyViolation = "23503"
)

// Translate maps a gorm/pgx error onto the typed outcomes above.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation:
			return ErrDuplicateKey
		case pgErr.Code == foreignKeyViolation:
			return ErrForeignKey
		case strings.HasPrefix(pgErr.Code, connectionClass):
			return ErrConnection
		}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ErrConnection
	}

	return fmt.Errorf("%w: %v", ErrUnknown, err)
}
