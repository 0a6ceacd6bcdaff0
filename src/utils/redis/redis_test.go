package redis_utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_utils "rentroll/src/utils/redis"
)

func TestGenerateUUID(t *testing.T) {
	first := redis_utils.GenerateUUID("csv:rent_roll.csv")
	assert.Equal(t, first, redis_utils.GenerateUUID("csv:rent_roll.csv"))
	assert.NotEqual(t, first, redis_utils.GenerateUUID("s3://bucket/rent_roll.csv"))

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}
