package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barterku_backend/internals/features/ads/ads/dto"
	"barterku_backend/internals/features/ads/ads/repository"
	"barterku_backend/internals/features/ads/ads/service"
	helper "barterku_backend/internals/helpers"
)

var validateAd = validator.New()

type AdController struct {
	Service *service.AdService
}

func NewAdController(db *gorm.DB) *AdController {
	return &AdController{Service: service.NewAdService(repository.NewAdRepository(db))}
}

// =======================
// 📄 Get All Ads (public, paginated)
// Query: ?q=&category=&condition=&page=1&per_page=10
// =======================
func (ctrl *AdController) GetAllAds(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	filter := repository.AdListFilter{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
	}

	ads, total, err := ctrl.Service.List(filter, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ads")
	}

	resp := dto.ToAdDTOs(ads)
	return helper.JsonList(c, "Ads retrieved", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(resp)))
}

// =======================
// ➕ Create Ad (auth required)
// =======================
func (ctrl *AdController) CreateAd(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.CreateAdRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAd.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ad, err := ctrl.Service.Create(userID, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Ad created", dto.ToAdDTO(*ad))
}

// =======================
// ✏️ Update Ad (owner only, partial)
// =======================
func (ctrl *AdController) UpdateAd(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	adID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ad id")
	}

	var body dto.UpdateAdRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAd.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	ad, err := ctrl.Service.Update(userID, adID, body)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Ad updated", dto.ToAdDTO(*ad))
}

// =======================
// 🗑️ Delete Ad (owner only, cascade)
// =======================
func (ctrl *AdController) DeleteAd(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	adID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ad id")
	}

	if err := ctrl.Service.Delete(userID, adID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c)
}
