package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError verifies error structure.
func TestConnectionError(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "gnkey", "postgres",
		originalErr)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 5)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestErrorCodes(t *testing.T) {
	cause := errors.New("query failed")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table check", TableCheckError(cause), errcode.DBTableCheckError},
		{"table exists", TableExistsCheckError("taxa", cause), errcode.DBTableCheckError},
		{"query tables", QueryTablesError(cause), errcode.DBQueryTablesError},
		{"scan table", ScanTableError(cause), errcode.DBScanTableError},
		{"drop table", DropTableError("taxa", cause), errcode.DBDropTableError},
		{"empty db", EmptyDatabaseError("localhost", "gnkey"), errcode.DBEmptyDatabaseError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
	}
}
