package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/model"
	"github.com/renzmar06/socialgolf-server/internal/domain/promotion/repository"
	"github.com/renzmar06/socialgolf-server/internal/pkg/worker"
	"github.com/renzmar06/socialgolf-server/pkg/errs"
	"github.com/renzmar06/socialgolf-server/pkg/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrRedemptionLimit surfaces a promotion whose capacity is exhausted.
var ErrRedemptionLimit = repository.ErrRedemptionLimit

// PromotionView is a promotion plus its derived presentation fields.
type PromotionView struct {
	model.Promotion
	EffectiveStatus string `json:"effectiveStatus"`
	Boosted         bool   `json:"boosted"`
}

// CreateParams carries the creation payload. Pointer fields distinguish
// "absent" from zero values the validator must reject explicitly.
type CreateParams struct {
	Title          string
	Description    string
	PromoType      string
	PromoCode      string
	DiscountValue  *float64
	StartDate      *time.Time
	EndDate        *time.Time
	Visibility     string
	MaxRedemptions int
	CoverImage     string
}

// UpdateParams is a partial patch: nil means "leave untouched".
type UpdateParams struct {
	Title          *string
	Description    *string
	PromoType      *string
	PromoCode      *string
	DiscountValue  *float64
	StartDate      *time.Time
	EndDate        *time.Time
	Visibility     *string
	MaxRedemptions *int
	CoverImage     *string
	Status         *string
}

type PromotionService interface {
	CreatePromotion(params CreateParams) (*model.Promotion, error)
	GetPromotion(id string, now time.Time) (*PromotionView, error)
	ListPromotions(tab Tab, search string, page, limit int, now time.Time) ([]PromotionView, int64, error)
	UpdatePromotion(id string, params UpdateParams) (*model.Promotion, error)
	DeletePromotion(id string) error
	PausePromotion(id string) (*model.Promotion, error)
	ResumePromotion(id string) (*model.Promotion, error)
	BoostPromotion(id, tier string, radiusMiles, durationDays int, now time.Time) (*model.Promotion, *BoostEstimate, error)
	RedeemPromotion(ctx context.Context, id string) error
	TrackView(ctx context.Context, id string) (int64, error)
	MarkQRGenerated(id string, now time.Time) (*model.Promotion, error)
	Shutdown()
}

type promotionService struct {
	repo       repository.PromotionRepository
	rdb        *redis.Client
	workerPool *worker.WorkerPool
}

func NewPromotionService(repo repository.PromotionRepository, rdb *redis.Client) PromotionService {
	pool := worker.NewWorkerPool(repo, 5, 1000)
	pool.Start()

	return &promotionService{
		repo:       repo,
		rdb:        rdb,
		workerPool: pool,
	}
}

// Shutdown drains queued redemption writes and stops the worker pool.
func (s *promotionService) Shutdown() {
	s.workerPool.Stop()
}

func (s *promotionService) CreatePromotion(params CreateParams) (*model.Promotion, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, errs.Validationf("title is required")
	}
	if strings.TrimSpace(params.PromoType) == "" {
		return nil, errs.Validationf("promoType is required")
	}
	if params.DiscountValue == nil {
		return nil, errs.Validationf("discountValue is required")
	}
	if *params.DiscountValue < 0 {
		return nil, errs.Validationf("discountValue must be non-negative")
	}
	if params.StartDate == nil || params.EndDate == nil {
		return nil, errs.Validationf("startDate and endDate are required")
	}
	if params.EndDate.Before(*params.StartDate) {
		return nil, errs.Validationf("endDate must not be before startDate")
	}
	if params.MaxRedemptions < 0 {
		return nil, errs.Validationf("maxRedemptions must not be negative")
	}

	visibility := params.Visibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}
	if err := validateVisibility(visibility); err != nil {
		return nil, err
	}

	promoCode := strings.TrimSpace(params.PromoCode)
	if promoCode == "" && params.PromoType == "Promo Code" {
		promoCode = generatePromoCode()
	}

	promotion := &model.Promotion{
		Title:          strings.TrimSpace(params.Title),
		Description:    params.Description,
		PromoType:      params.PromoType,
		PromoCode:      promoCode,
		DiscountValue:  *params.DiscountValue,
		StartDate:      *params.StartDate,
		EndDate:        *params.EndDate,
		Visibility:     visibility,
		MaxRedemptions: params.MaxRedemptions,
		CoverImage:     params.CoverImage,
		Status:         model.StatusActive,
	}

	if err := s.repo.Create(promotion); err != nil {
		return nil, errs.Storagef("create promotion: %v", err)
	}
	return promotion, nil
}

func (s *promotionService) GetPromotion(id string, now time.Time) (*PromotionView, error) {
	promotion, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}
	view := newView(*promotion, now)
	return &view, nil
}

func (s *promotionService) ListPromotions(tab Tab, search string, page, limit int, now time.Time) ([]PromotionView, int64, error) {
	promotions, err := s.repo.Search(search)
	if err != nil {
		return nil, 0, errs.Storagef("list promotions: %v", err)
	}

	// Search already ran in SQL; Project re-applies it for free and
	// layers the tab filter on top of the derived statuses.
	projected := Project(promotions, tab, search, now)
	total := int64(len(projected))

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	start := (page - 1) * limit
	if start > len(projected) {
		start = len(projected)
	}
	end := start + limit
	if end > len(projected) {
		end = len(projected)
	}

	views := make([]PromotionView, 0, end-start)
	for _, p := range projected[start:end] {
		views = append(views, newView(p, now))
	}
	return views, total, nil
}

func (s *promotionService) UpdatePromotion(id string, params UpdateParams) (*model.Promotion, error) {
	existing, err := s.getExisting(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if params.Title != nil {
		if strings.TrimSpace(*params.Title) == "" {
			return nil, errs.Validationf("title must not be empty")
		}
		fields["title"] = strings.TrimSpace(*params.Title)
	}
	if params.Description != nil {
		fields["description"] = *params.Description
	}
	if params.PromoType != nil {
		if strings.TrimSpace(*params.PromoType) == "" {
			return nil, errs.Validationf("promoType must not be empty")
		}
		fields["promo_type"] = *params.PromoType
	}
	if params.PromoCode != nil {
		fields["promo_code"] = strings.TrimSpace(*params.PromoCode)
	}
	if params.DiscountValue != nil {
		if *params.DiscountValue < 0 {
			return nil, errs.Validationf("discountValue must be non-negative")
		}
		fields["discount_value"] = *params.DiscountValue
	}

	// Window changes are validated against the post-patch pair.
	start, end := existing.StartDate, existing.EndDate
	if params.StartDate != nil {
		start = *params.StartDate
		fields["start_date"] = start
	}
	if params.EndDate != nil {
		end = *params.EndDate
		fields["end_date"] = end
	}
	if (params.StartDate != nil || params.EndDate != nil) && end.Before(start) {
		return nil, errs.Validationf("endDate must not be before startDate")
	}

	if params.Visibility != nil {
		if err := validateVisibility(*params.Visibility); err != nil {
			return nil, err
		}
		fields["visibility"] = *params.Visibility
	}
	if params.MaxRedemptions != nil {
		if *params.MaxRedemptions < 0 {
			return nil, errs.Validationf("maxRedemptions must not be negative")
		}
		fields["max_redemptions"] = *params.MaxRedemptions
	}
	if params.CoverImage != nil {
		fields["cover_image"] = *params.CoverImage
	}
	if params.Status != nil {
		// Scheduled/Expired are derived labels and must never land in
		// the status column.
		if *params.Status != model.StatusActive && *params.Status != model.StatusPaused {
			return nil, errs.Validationf("status must be %q or %q", model.StatusActive, model.StatusPaused)
		}
		fields["status"] = *params.Status
	}

	// An empty patch still refreshes updated_at.
	fields["updated_at"] = time.Now()

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("promotion %s", id)
		}
		return nil, errs.Storagef("update promotion: %v", err)
	}
	return updated, nil
}

func (s *promotionService) DeletePromotion(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf("promotion %s", id)
		}
		return errs.Storagef("delete promotion: %v", err)
	}
	return nil
}

func (s *promotionService) PausePromotion(id string) (*model.Promotion, error) {
	status := model.StatusPaused
	return s.UpdatePromotion(id, UpdateParams{Status: &status})
}

func (s *promotionService) ResumePromotion(id string) (*model.Promotion, error) {
	status := model.StatusActive
	return s.UpdatePromotion(id, UpdateParams{Status: &status})
}

func (s *promotionService) BoostPromotion(id, tier string, radiusMiles, durationDays int, now time.Time) (*model.Promotion, *BoostEstimate, error) {
	estimate, err := EstimateBoost(tier, radiusMiles, durationDays)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.getExisting(id); err != nil {
		return nil, nil, err
	}

	fields := map[string]interface{}{
		"boost_active":        true,
		"boost_tier":          tier,
		"boost_radius_miles":  radiusMiles,
		"boost_duration_days": durationDays,
		"boost_started_at":    now,
		"updated_at":          now,
	}

	updated, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NotFoundf("promotion %s", id)
		}
		return nil, nil, errs.Storagef("boost promotion: %v", err)
	}
	return updated, estimate, nil
}

// Lua guard: atomically refuse redemptions over capacity and bump the
// shared counter. max <= 0 means unlimited.
var redeemScript = redis.NewScript(`
	local count = tonumber(redis.call("GET", KEYS[1]) or "0")
	local max = tonumber(ARGV[1])
	if max > 0 and count >= max then
		return -1
	end
	redis.call("INCR", KEYS[1])
	return 1
`)

func (s *promotionService) RedeemPromotion(ctx context.Context, id string) error {
	promotion, err := s.getExisting(id)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("promo:redemptions:%s", id)

	// Seed the counter from the database on first contact so restarts
	// do not reset capacity tracking.
	if err := s.rdb.SetNX(ctx, key, promotion.CurrentRedemptions, 0).Err(); err != nil {
		return errs.Storagef("redis: %v", err)
	}

	result, err := redeemScript.Run(ctx, s.rdb, []string{key}, promotion.MaxRedemptions).Int()
	if err != nil {
		return errs.Storagef("redis: %v", err)
	}

	if result == -1 {
		metrics.PromotionRedemptionsTotal.WithLabelValues("limit").Inc()
		return ErrRedemptionLimit
	}

	// Redis admitted the redemption; the durable counter catches up
	// through the worker pool.
	s.workerPool.AddTask(worker.RedemptionTask{PromotionID: id})
	metrics.PromotionRedemptionsTotal.WithLabelValues("ok").Inc()

	return nil
}

func (s *promotionService) TrackView(ctx context.Context, id string) (int64, error) {
	if _, err := s.getExisting(id); err != nil {
		return 0, err
	}

	count, err := s.rdb.Incr(ctx, fmt.Sprintf("promo:views:%s", id)).Result()
	if err != nil {
		return 0, errs.Storagef("redis: %v", err)
	}
	metrics.PromotionViewsTotal.Inc()
	return count, nil
}

func (s *promotionService) MarkQRGenerated(id string, now time.Time) (*model.Promotion, error) {
	updated, err := s.repo.Update(id, map[string]interface{}{
		"qr_generated_at": now,
		"updated_at":      now,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("promotion %s", id)
		}
		return nil, errs.Storagef("mark qr generated: %v", err)
	}
	return updated, nil
}

func (s *promotionService) getExisting(id string) (*model.Promotion, error) {
	promotion, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("promotion %s", id)
		}
		return nil, errs.Storagef("get promotion: %v", err)
	}
	return promotion, nil
}

func newView(p model.Promotion, now time.Time) PromotionView {
	return PromotionView{
		Promotion:       p,
		EffectiveStatus: p.EffectiveLabel(now),
		Boosted:         p.BoostedAt(now),
	}
}

func validateVisibility(v string) error {
	switch v {
	case model.VisibilityPublic, model.VisibilityFollowers, model.VisibilityParticipants:
		return nil
	default:
		return errs.Validationf("unknown visibility %q", v)
	}
}

func generatePromoCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
