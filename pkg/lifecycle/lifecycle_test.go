package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/internal/iopopulate"
	"github.com/gnames/gnkey/internal/ioschema"
	"github.com/gnames/gnkey/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts checks that io implementations satisfy lifecycle
// interfaces.
func TestContracts(t *testing.T) {
	op := iodb.NewPgxOperator()

	var sm lifecycle.SchemaManager = ioschema.NewManager(op)
	assert.NotNil(t, sm)

	var p lifecycle.Populator = iopopulate.NewPopulator(op)
	assert.NotNil(t, p)
}
