package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredTables(t *testing.T) {
	cases := []struct {
		partySize int
		expected  int
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{12, 3},
		{13, 4},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, RequiredTables(tc.partySize),
			"party_size=%d", tc.partySize)
	}
}

func TestRequiredTablesForOtherCapacities(t *testing.T) {
	assert.Equal(t, 1, RequiredTablesFor(6, 6))
	assert.Equal(t, 2, RequiredTablesFor(7, 6))
	assert.Equal(t, 5, RequiredTablesFor(10, 2))
}
