package types

import (
	"time"

	"github.com/google/uuid"
)

// Request payloads.

type MemberCreateRequest struct {
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	PhoneNum  string     `json:"phone_num" binding:"required"`
	BirthDate *time.Time `json:"birth_date"`
	Field     string     `json:"field"`
	IsNative  *bool      `json:"is_native"`
}

type MemberUpdateRequest struct {
	Password  *string    `json:"password"`
	Name      *string    `json:"name"`
	PhoneNum  *string    `json:"phone_num"`
	BirthDate *time.Time `json:"birth_date"`
	Field     *string    `json:"field"`
}

type MemberFindEmailRequest struct {
	Name     string `json:"name" binding:"required"`
	PhoneNum string `json:"phone_num" binding:"required"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	BlueprintID uuid.UUID `json:"blueprint_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

type PostQnaBoardRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Response projections.

type MemberCreateResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func NewMemberCreateResponse(m *Member) *MemberCreateResponse {
	return &MemberCreateResponse{ID: m.ID, Email: m.Email, Name: m.Name}
}

type MemberInfoResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	PhoneNum  string     `json:"phone_num"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Field     string     `json:"field"`
	IsNative  bool       `json:"is_native"`
	Role      string     `json:"role"`
}

func NewMemberInfoResponse(m *Member) *MemberInfoResponse {
	return &MemberInfoResponse{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		PhoneNum:  m.PhoneNum,
		BirthDate: m.BirthDate,
		Field:     m.Field,
		IsNative:  m.IsNative,
		Role:      m.Role,
	}
}

// BlueprintDownloadResponse describes one purchased blueprint a member can
// download from the my-page screen.
type BlueprintDownloadResponse struct {
	BlueprintID  uuid.UUID `json:"blueprint_id"`
	Name         string    `json:"name"`
	Creator      string    `json:"creator"`
	Extension    string    `json:"extension"`
	DownloadLink string    `json:"download_link"`
	OrderedAt    time.Time `json:"ordered_at"`
}

func NewBlueprintDownloadResponse(item *OrderItem, orderedAt time.Time) BlueprintDownloadResponse {
	resp := BlueprintDownloadResponse{
		BlueprintID: item.BlueprintID,
		OrderedAt:   orderedAt,
	}
	if item.Blueprint != nil {
		resp.Name = item.Blueprint.Name
		resp.Creator = item.Blueprint.Creator
		resp.Extension = item.Blueprint.Extension
		resp.DownloadLink = item.Blueprint.DownloadLink
	}
	return resp
}

type MyPageOrderResponse struct {
	OrderID    uuid.UUID               `json:"order_id"`
	TotalPrice int64                   `json:"total_price"`
	OrderedAt  time.Time               `json:"ordered_at"`
	Items      []MyPageOrderItemDetail `json:"items"`
}

type MyPageOrderItemDetail struct {
	BlueprintID uuid.UUID `json:"blueprint_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
}

func NewMyPageOrderResponse(o *Order) MyPageOrderResponse {
	resp := MyPageOrderResponse{
		OrderID:    o.ID,
		TotalPrice: o.TotalPrice,
		OrderedAt:  o.CreatedAt,
		Items:      make([]MyPageOrderItemDetail, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		detail := MyPageOrderItemDetail{
			BlueprintID: item.BlueprintID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		if item.Blueprint != nil {
			detail.Name = item.Blueprint.Name
		}
		resp.Items = append(resp.Items, detail)
	}
	return resp
}

type QnaBoardBriefResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	Views      int64     `json:"views"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewQnaBoardBriefResponse(b *QnaBoard) QnaBoardBriefResponse {
	resp := QnaBoardBriefResponse{
		ID:         b.ID,
		Title:      b.Title,
		Views:      b.Views,
		ReplyCount: len(b.Replies),
		CreatedAt:  b.CreatedAt,
	}
	if b.Member != nil {
		resp.AuthorName = b.Member.Name
	}
	return resp
}

type QnaBoardDetailResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	AuthorName  string             `json:"author_name"`
	AuthorEmail string             `json:"author_email"`
	Views       int64              `json:"views"`
	Editable    bool               `json:"editable"`
	Replies     []QnaReplyResponse `json:"replies"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type QnaReplyResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewQnaBoardDetailResponse(b *QnaBoard, editable bool) *QnaBoardDetailResponse {
	resp := &QnaBoardDetailResponse{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Views:     b.Views,
		Editable:  editable,
		Replies:   make([]QnaReplyResponse, 0, len(b.Replies)),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Member != nil {
		resp.AuthorName = b.Member.Name
		resp.AuthorEmail = b.Member.Email
	}
	for _, reply := range b.Replies {
		rr := QnaReplyResponse{
			ID:        reply.ID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
		}
		if reply.Member != nil {
			rr.AuthorName = reply.Member.Name
		}
		resp.Replies = append(resp.Replies, rr)
	}
	return resp
}

type BlueprintResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Creator       string    `json:"creator"`
	Program       string    `json:"program"`
	Extension     string    `json:"extension"`
	StandardPrice int64     `json:"standard_price"`
	SalePrice     int64     `json:"sale_price"`
}

func NewBlueprintResponse(b *Blueprint) BlueprintResponse {
	return BlueprintResponse{
		ID:            b.ID,
		Name:          b.Name,
		Creator:       b.Creator,
		Program:       b.Program,
		Extension:     b.Extension,
		StandardPrice: b.StandardPrice,
		SalePrice:     b.SalePrice,
	}
}
