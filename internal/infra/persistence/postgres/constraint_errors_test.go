package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_cash_registers_one_open"}
	wrappedUnique := fmt.Errorf("insert: %w", unique)

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"gorm duplicated key", gorm.ErrDuplicatedKey, isUniqueConstraintViolation, true},
		{"pg unique", unique, isUniqueConstraintViolation, true},
		{"wrapped pg unique", wrappedUnique, isUniqueConstraintViolation, true},
		{"plain error", errors.New("boom"), isUniqueConstraintViolation, false},
		{"pg foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, isForeignKeyConstraintViolation, true},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, isForeignKeyConstraintViolation, true},
		{"pg not null", &pgconn.PgError{Code: pgNotNullViolation}, isNotNullConstraintViolation, true},
		{"unique is not not-null", unique, isNotNullConstraintViolation, false},
		{"pg check", &pgconn.PgError{Code: pgCheckViolation}, isCheckConstraintViolation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	err := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_cash_registers_one_open"}

	assert.True(t, isUniqueViolationOn(err, "idx_cash_registers_one_open"))
	assert.False(t, isUniqueViolationOn(err, "idx_other"))
	assert.False(t, isUniqueViolationOn(gorm.ErrDuplicatedKey, "idx_cash_registers_one_open"))
}
