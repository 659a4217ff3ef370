package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gestordocumental_backend/internals/configs"
)

// IsUniqueViolation detecta violación de constraint único (código Postgres 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ErrDetalle expone el mensaje crudo del store sólo fuera de producción.
func ErrDetalle(err error) interface{} {
	if err == nil || configs.IsProduction() {
		return nil
	}
	return err.Error()
}
