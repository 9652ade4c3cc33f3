package services

import (
	"errors"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"gorm.io/gorm"
)

var (
	ErrDuplicateMember = &models.CustomError{Kind: models.KindIllegalState, Message: "member already exists"}
	ErrMemberNotFound  = &models.CustomError{Kind: models.KindNotFound, Message: "member not found"}
	ErrItemNotFound    = &models.CustomError{Kind: models.KindNotFound, Message: "item not found"}
	ErrOrderNotFound   = &models.CustomError{Kind: models.KindNotFound, Message: "order not found"}
)

func translateNotFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
