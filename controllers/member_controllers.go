package controllers

import (
	"net/http"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/dto"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/models"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/services"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
)

type MemberController struct {
	Members *services.MemberService
}

func NewMemberController(members *services.MemberService) *MemberController {
	return &MemberController{Members: members}
}

// JoinMember -> POST /api/v2/members
func (mc *MemberController) JoinMember(c *gin.Context) {
	type reqBody struct {
		Name    string         `json:"name" binding:"required"`
		Address models.Address `json:"address"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := mc.Members.Join(c.Request.Context(), models.NewMember(req.Name, req.Address))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Member joined", gin.H{"id": id})
}

// UpdateMember -> PUT /api/v2/members/:member_id
func (mc *MemberController) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "member_id")
	if !ok {
		return
	}

	type reqBody struct {
		Name string `json:"name" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.Members.Update(c.Request.Context(), id, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	member, err := mc.Members.FindOne(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Member updated", gin.H{"id": member.ID, "name": member.Name})
}

// GetAllMembers -> GET /api/v2/members
func (mc *MemberController) GetAllMembers(c *gin.Context) {
	members, err := mc.Members.FindMembers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondResult(c, http.StatusOK, dto.NewMemberDtos(members))
}

// GetMemberByID -> GET /api/v2/members/:member_id
func (mc *MemberController) GetMemberByID(c *gin.Context) {
	id, ok := parseID(c, "member_id")
	if !ok {
		return
	}

	member, err := mc.Members.FindOne(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Member detail", dto.MemberDto{ID: member.ID, Name: member.Name, Address: member.Address})
}
