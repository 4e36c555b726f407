package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tickets?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&page_size=10", 3, 10},
		{"capped page size", "page_size=1000", 1, 100},
		{"invalid values fall back", "page=-1&page_size=abc", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(newContext(tt.query))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestParseUintParam(t *testing.T) {
	c := newContext("")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseUintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, ok = ParseUintParam(c, "id")
	assert.False(t, ok)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = ParseUintParam(c, "id")
	assert.False(t, ok)
}
