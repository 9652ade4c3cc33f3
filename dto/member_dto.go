package dto

import "github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"

type MemberDto struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Address models.Address `json:"address"`
}

func NewMemberDtos(members []*models.Member) []MemberDto {
	result := make([]MemberDto, 0, len(members))
	for _, m := range members {
		result = append(result, MemberDto{ID: m.ID, Name: m.Name, Address: m.Address})
	}
	return result
}
