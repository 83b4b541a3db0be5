package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/services"
	"github.com/onetool/server/internal/types"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// FindEmail recovers a forgotten email from name + phone number.
func (mh *MemberHandler) FindEmail(c *gin.Context) {
	var req types.MemberFindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	email, err := mh.memberService.FindEmail(c.Request.Context(), req.Name, req.PhoneNum)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"email": email})
}

func (mh *MemberHandler) GetMyInfo(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	info, err := mh.memberService.FindMemberInfo(c.Request.Context(), rd.MemberID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, info)
}

func (mh *MemberHandler) GetPurchasedBlueprints(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	downloads, err := mh.memberService.FindPurchasedBlueprints(c.Request.Context(), rd.MemberID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, downloads)
}

func (mh *MemberHandler) Register(c *gin.Context) {
	var req types.MemberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	summary, err := mh.memberService.CreateMember(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, summary)
}

func (mh *MemberHandler) Update(c *gin.Context) {
	id, err := memberIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req types.MemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	if err := mh.memberService.UpdateMember(c.Request.Context(), id, &req); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, nil)
}

func (mh *MemberHandler) Delete(c *gin.Context) {
	id, err := memberIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := mh.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, nil)
}

func memberIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apierr.BadRequest(fmt.Errorf("invalid member id: %w", err))
	}
	return id, nil
}
