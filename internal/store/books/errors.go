package books

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
)

// mapPGError normalizes driver errors into the package's error vocabulary.
// Anything we cannot classify passes through for the handler to log and
// turn into a generic 500.
func mapPGError(err error) error {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return err
	}
	switch pg.Code {
	case "22P02": // invalid text representation, e.g. malformed uuid
		return ErrNotFound
	case "23514", "23502", "22001": // check / not-null / value too long
		return fmt.Errorf("%w: %s", ErrInvalid, pg.Message)
	default:
		return err
	}
}
