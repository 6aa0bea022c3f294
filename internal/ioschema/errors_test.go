package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollationErrorOnTaxa checks the error returned when the name
// columns of taxa cannot get the "C" collation.
func TestCollationErrorOnTaxa(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "42704",
		Message: `collation "C" for encoding "SQL_ASCII" does not exist`,
	}

	err := CollationError("taxa", "scientific_name", pgErr)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SchemaCollationError, gnErr.Code)
	assert.Equal(t, []any{"taxa", "scientific_name"}, gnErr.Vars)
	assert.Contains(t, gnErr.Msg, "<em>%s.%s</em>")
	assert.Contains(t, gnErr.Err.Error(), "taxa.scientific_name")

	var gotPg *pgconn.PgError
	require.True(t, errors.As(gnErr.Err, &gotPg))
	assert.Equal(t, "42704", gotPg.Code)
}

// TestSchemaErrorsAdvice checks that every schema failure points the
// user to a gnkey command or config file that can fix it.
func TestSchemaErrorsAdvice(t *testing.T) {
	cause := errors.New("permission denied for schema public")

	tests := []struct {
		msg    string
		err    error
		code   gn.ErrorCode
		advice string
	}{
		{"gorm", GORMConnectionError(cause),
			errcode.SchemaGORMConnectionError, "~/.config/gnkey/config.yaml"},
		{"create", CreateSchemaError(cause),
			errcode.SchemaCreateError, "gnkey create --force"},
		{"migrate", MigrateSchemaError(cause),
			errcode.SchemaMigrateError, "gnkey create --force"},
	}

	for _, v := range tests {
		var gnErr *gn.Error
		require.True(t, errors.As(v.err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, v.advice, v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
	}
}

func TestNotConnectedError(t *testing.T) {
	var gnErr *gn.Error
	require.True(t, errors.As(NotConnectedError(), &gnErr))
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, "Key tables")
}
