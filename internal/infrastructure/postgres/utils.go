package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isNoRows verifica si un error es la ausencia de filas de pgx.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
