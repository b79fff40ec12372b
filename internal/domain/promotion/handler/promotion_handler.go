package handler

import (
	"net/http"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/service"
	"github.com/renzmar06/socialgolf-server/pkg/response"
	"github.com/renzmar06/socialgolf-server/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	service service.PromotionService
}

func NewPromotionHandler(s service.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: s}
}

// CreatePromotionInput is the creation payload. Dates are RFC3339;
// malformed values fail binding with a 400 instead of silently parsing
// into something comparable.
type CreatePromotionInput struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	PromoType      string     `json:"promoType" binding:"required"`
	PromoCode      string     `json:"promoCode"`
	DiscountValue  *float64   `json:"discountValue" binding:"required"`
	StartDate      *time.Time `json:"startDate" binding:"required"`
	EndDate        *time.Time `json:"endDate" binding:"required"`
	Visibility     string     `json:"visibility"`
	MaxRedemptions int        `json:"maxRedemptions"`
	CoverImage     string     `json:"coverImage"`
}

// UpdatePromotionInput is a partial patch; omitted fields stay as-is.
type UpdatePromotionInput struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	PromoType      *string    `json:"promoType"`
	PromoCode      *string    `json:"promoCode"`
	DiscountValue  *float64   `json:"discountValue"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Visibility     *string    `json:"visibility"`
	MaxRedemptions *int       `json:"maxRedemptions"`
	CoverImage     *string    `json:"coverImage"`
	Status         *string    `json:"status"`
}

// BoostInput selects a boost package for a promotion.
type BoostInput struct {
	Tier         string `json:"tier" binding:"required"`
	RadiusMiles  int    `json:"radiusMiles" binding:"required,min=1"`
	DurationDays int    `json:"durationDays" binding:"required,min=1"`
}

type boostResult struct {
	Promotion interface{} `json:"promotion"`
	Estimate  interface{} `json:"estimate"`
}

// CreatePromotion creates a promotion
// @Summary Create promotion
// @Tags Promotion
// @Accept json
// @Produce json
// @Param input body CreatePromotionInput true "Promotion fields"
// @Success 201 {object} model.Promotion
// @Router /promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var input CreatePromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	promotion, err := h.service.CreatePromotion(service.CreateParams{
		Title:          input.Title,
		Description:    input.Description,
		PromoType:      input.PromoType,
		PromoCode:      input.PromoCode,
		DiscountValue:  input.DiscountValue,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Visibility:     input.Visibility,
		MaxRedemptions: input.MaxRedemptions,
		CoverImage:     input.CoverImage,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, promotion)
}

// ListPromotions lists promotions for a dashboard tab
// @Summary List promotions
// @Tags Promotion
// @Param tab query string false "all|active|scheduled|boosted|expired"
// @Param search query string false "Free-text filter over title and promo code"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /promotions [get]
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset()

	tab := service.ParseTab(c.Query("tab"))
	search := c.Query("search")

	views, total, err := h.service.ListPromotions(tab, search, p.Page, p.Limit, time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, utils.PageResult{
		List:  views,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	view, err := h.service.GetPromotion(c.Param("id"), time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	var input UpdatePromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	promotion, err := h.service.UpdatePromotion(c.Param("id"), service.UpdateParams{
		Title:          input.Title,
		Description:    input.Description,
		PromoType:      input.PromoType,
		PromoCode:      input.PromoCode,
		DiscountValue:  input.DiscountValue,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Visibility:     input.Visibility,
		MaxRedemptions: input.MaxRedemptions,
		CoverImage:     input.CoverImage,
		Status:         input.Status,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, promotion)
}

func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	if err := h.service.DeletePromotion(c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "deleted")
}

func (h *PromotionHandler) PausePromotion(c *gin.Context) {
	promotion, err := h.service.PausePromotion(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, promotion)
}

func (h *PromotionHandler) ResumePromotion(c *gin.Context) {
	promotion, err := h.service.ResumePromotion(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, promotion)
}

// BoostPromotion starts a paid boost window
// @Summary Boost promotion
// @Tags Promotion
// @Param id path string true "Promotion ID"
// @Param input body BoostInput true "Boost package"
// @Success 200 {object} boostResult
// @Router /promotions/{id}/boost [post]
func (h *PromotionHandler) BoostPromotion(c *gin.Context) {
	var input BoostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	promotion, estimate, err := h.service.BoostPromotion(c.Param("id"), input.Tier, input.RadiusMiles, input.DurationDays, time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, boostResult{Promotion: promotion, Estimate: estimate})
}

func (h *PromotionHandler) EstimateBoost(c *gin.Context) {
	var input BoostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	estimate, err := service.EstimateBoost(input.Tier, input.RadiusMiles, input.DurationDays)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, estimate)
}

func (h *PromotionHandler) RedeemPromotion(c *gin.Context) {
	err := h.service.RedeemPromotion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrRedemptionLimit {
			response.Error(c, http.StatusConflict, response.ErrPromotionRedeemed, "Redemption limit reached")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, "redeemed")
}

func (h *PromotionHandler) TrackView(c *gin.Context) {
	count, err := h.service.TrackView(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"views": count})
}

func (h *PromotionHandler) MarkQRGenerated(c *gin.Context) {
	promotion, err := h.service.MarkQRGenerated(c.Param("id"), time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, promotion)
}
