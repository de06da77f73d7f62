package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/notes/section/sec-1"+query, nil)
	return c
}

func TestParseListParams(t *testing.T) {
	testCases := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedOffset int
	}{
		{name: "defaults", query: "", expectedLimit: 50, expectedOffset: 0},
		{name: "explicit values", query: "?limit=20&offset=40", expectedLimit: 20, expectedOffset: 40},
		{name: "limit over max", query: "?limit=500", expectedLimit: 50, expectedOffset: 0},
		{name: "zero limit", query: "?limit=0", expectedLimit: 50, expectedOffset: 0},
		{name: "negative offset", query: "?offset=-5", expectedLimit: 50, expectedOffset: 0},
		{name: "non-numeric", query: "?limit=abc&offset=xyz", expectedLimit: 50, expectedOffset: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := listContext(t, tc.query)
			limit, offset := ParseListParams(c)
			assert.Equal(t, tc.expectedLimit, limit)
			assert.Equal(t, tc.expectedOffset, offset)
		})
	}
}
