package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination bounds. Offset is capped so a client cannot force deep scans;
// listing past the cap requires narrowing by creation time on the client side.
const (
	DefaultOffset = 0
	DefaultLimit  = 25
	MaxOffset     = 100
	MaxLimit      = 100
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 25 for limit.
// Both offset and limit cannot exceed 100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", strconv.Itoa(DefaultOffset))
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 || offset > MaxOffset {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be an integer between 0 and %d", MaxOffset)
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxLimit)
	}

	return offset, limit, nil
}
