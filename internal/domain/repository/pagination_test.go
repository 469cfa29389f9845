package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	testCases := []struct {
		name     string
		in       Page
		expected Page
	}{
		{name: "zero value gets defaults", in: Page{}, expected: Page{Number: 1, Size: 20}},
		{name: "negative number clamps to first page", in: Page{Number: -3, Size: 10}, expected: Page{Number: 1, Size: 10}},
		{name: "oversized page clamps to max", in: Page{Number: 2, Size: 500}, expected: Page{Number: 2, Size: 100}},
		{name: "valid page untouched", in: Page{Number: 4, Size: 50}, expected: Page{Number: 4, Size: 50}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.Normalize())
		})
	}
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Size: 20}.Offset())
	assert.Equal(t, 60, Page{Number: 4, Size: 20}.Offset())
	assert.Equal(t, 0, Page{}.Offset())
}
