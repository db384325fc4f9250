package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, ParseLimit("10"))
	assert.Equal(t, 0, ParseLimit(""))
	assert.Equal(t, 0, ParseLimit("abc"))
	assert.Equal(t, 0, ParseLimit("-5"))
	assert.Equal(t, 0, ParseLimit("0"))
	assert.Equal(t, maxLimit, ParseLimit("99999"))
}
