package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	errInvalidPaging = errors.New("offset must be >= 0 and limit > 0")
)

// respondServiceError maps the error kind to a status code.
func respondServiceError(c *gin.Context, err error) {
	switch models.KindOf(err) {
	case models.KindValidation:
		utils.RespondError(c, http.StatusBadRequest, err)
	case models.KindNotFound:
		utils.RespondError(c, http.StatusNotFound, err)
	case models.KindIllegalState:
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
