package apihandlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	mw "github.com/parthoooo/story-teller/pkg/apihelpers/middlewares"
	adminUserDB "github.com/parthoooo/story-teller/pkg/db/admin-users"
)

type Pagination struct {
	CurrentPage      int64 `json:"currentPage"`
	TotalPages       int64 `json:"totalPages"`
	TotalSubmissions int64 `json:"totalSubmissions"`
	HasNextPage      bool  `json:"hasNextPage"`
	HasPrevPage      bool  `json:"hasPrevPage"`
}

func paginationInfos(page int64, limit int64, totalCount int64) Pagination {
	totalPages := totalCount / limit
	if totalCount%limit != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage:      page,
		TotalPages:       totalPages,
		TotalSubmissions: totalCount,
		HasNextPage:      page < totalPages,
		HasPrevPage:      page > 1,
	}
}

func getAdminFromContext(c *gin.Context) (*adminUserDB.AdminUser, error) {
	val, ok := c.Get(mw.CtxKeyAdminUser)
	if !ok {
		return nil, errors.New("no admin user in context")
	}
	admin, ok := val.(*adminUserDB.AdminUser)
	if !ok {
		return nil, errors.New("unexpected admin user type in context")
	}
	return admin, nil
}
