package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		result Page
	}{
		{
			name:   "Defaults",
			page:   Page{},
			result: Page{Number: 1, Size: DefaultPageSize, SortKey: SortByCreatedAt, SortDesc: true},
		},
		{
			name:   "Size capped",
			page:   Page{Number: 2, Size: 500, SortKey: SortByPrice},
			result: Page{Number: 2, Size: MaxPageSize, SortKey: SortByPrice},
		},
		{
			name:   "Page number capped",
			page:   Page{Number: int(^uint(0) >> 1), Size: MaxPageSize, SortKey: SortByStatus},
			result: Page{Number: MaxPageNumber, Size: MaxPageSize, SortKey: SortByStatus},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, tt.page.Normalize())
		})
	}
}

func TestPage_OffsetStaysPositive(t *testing.T) {
	p := Page{Number: int(^uint(0) >> 1), Size: MaxPageSize}.Normalize()
	assert.Equal(t, (MaxPageNumber-1)*MaxPageSize, p.Offset())
	assert.Positive(t, p.Offset())
}
