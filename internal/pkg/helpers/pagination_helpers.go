package helpers

import (
	"math"
	"strconv"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // Default page is 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, boundedLimit int) {
	if limit <= 0 || limit > MaxLimit {
		boundedLimit = DefaultLimit
	} else {
		boundedLimit = limit
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * boundedLimit)
	return offset, boundedLimit
}

// NewPaginationInfo creates a standard PaginationInfo DTO from the total
// matching row count. page should be the 1-based page number. Total always
// reflects the full matching set, regardless of the current window.
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the
// request query string (1-based page, bounded limit).
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return page, limit
}
