package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page       int
	Limit      int
	Offset     int
	Total      int64
	TotalPages int
}

// NewPaginationFromParams builds a Pagination from :page/:limit path
// parameters, falling back to page 1 and a limit of 10 on bad input.
func NewPaginationFromParams(c *gin.Context) *Pagination {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Param("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotal sets the total number of items and calculates the page count
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}
