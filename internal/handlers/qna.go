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

type QnaHandler struct {
	qnaService services.QnaService
}

func NewQnaHandler(qnaService services.QnaService) *QnaHandler {
	return &QnaHandler{qnaService: qnaService}
}

func (qh *QnaHandler) GetQnaBoard(c *gin.Context) {
	briefs, err := qh.qnaService.GetQnaBoard(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, briefs)
}

func (qh *QnaHandler) PostQna(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	var req types.PostQnaBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	if err := qh.qnaService.PostQna(c.Request.Context(), rd, &req); err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, nil)
}

func (qh *QnaHandler) GetQnaBoardDetails(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	boardID, err := qnaIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	detail, err := qh.qnaService.GetQnaBoardDetails(c.Request.Context(), rd, boardID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, detail)
}

func (qh *QnaHandler) UpdateQna(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	boardID, err := qnaIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req types.PostQnaBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest(err))
		return
	}
	if err := qh.qnaService.UpdateQna(c.Request.Context(), rd, boardID, &req); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, nil)
}

func (qh *QnaHandler) DeleteQna(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	boardID, err := qnaIDParam(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := qh.qnaService.DeleteQna(c.Request.Context(), rd, boardID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, nil)
}

func qnaIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apierr.BadRequest(fmt.Errorf("invalid qna post id: %w", err))
	}
	return id, nil
}
