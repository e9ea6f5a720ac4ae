package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"barterku_backend/internals/constants"
	"barterku_backend/internals/features/ads/ads/dto"
	"barterku_backend/internals/features/ads/ads/model"
	"barterku_backend/internals/features/ads/ads/repository"
)

type MockAdRepository struct{ mock.Mock }

func (m *MockAdRepository) InTx(fn func(repository.AdRepository) error) error {
	return fn(m)
}

func (m *MockAdRepository) FindByID(id uuid.UUID) (*model.AdModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdModel), args.Error(1)
}

func (m *MockAdRepository) List(f repository.AdListFilter, limit, offset int) ([]model.AdModel, int64, error) {
	args := m.Called(f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.AdModel), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdRepository) Create(ad *model.AdModel) error {
	args := m.Called(ad)
	return args.Error(0)
}

func (m *MockAdRepository) Save(ad *model.AdModel) error {
	args := m.Called(ad)
	return args.Error(0)
}

func (m *MockAdRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdRepository) DeleteProposalsByAd(adID uuid.UUID) error {
	args := m.Called(adID)
	return args.Error(0)
}

func strptr(s string) *string { return &s }

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %v", err)
	}
	return fe.Code
}

func ownedAd(owner uuid.UUID) *model.AdModel {
	return &model.AdModel{
		AdID:          uuid.New(),
		AdUserID:      owner,
		AdTitle:       "Sepeda lipat",
		AdDescription: "Masih mulus",
		AdCategory:    "sports",
		AdCondition:   constants.ConditionUsed,
	}
}

func TestCreateAd_Success(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	owner := uuid.New()

	repo.On("Create", mock.AnythingOfType("*model.AdModel")).Return(nil)

	ad, err := svc.Create(owner, dto.CreateAdRequest{
		AdTitle:       "Kamera analog",
		AdDescription: "Lensa bawaan",
		AdCategory:    "electronics",
		AdCondition:   constants.ConditionNew,
	})

	assert.NoError(t, err)
	assert.Equal(t, owner, ad.AdUserID)
	assert.Equal(t, constants.ConditionNew, ad.AdCondition)
	repo.AssertExpectations(t)
}

func TestCreateAd_InvalidCondition(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)

	_, err := svc.Create(uuid.New(), dto.CreateAdRequest{
		AdTitle:       "Kamera analog",
		AdDescription: "Lensa bawaan",
		AdCategory:    "electronics",
		AdCondition:   "refurbished",
	})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateAd_EmptyImageURLBecomesNull(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)

	repo.On("Create", mock.AnythingOfType("*model.AdModel")).Return(nil)

	ad, err := svc.Create(uuid.New(), dto.CreateAdRequest{
		AdTitle:       "Kamera analog",
		AdDescription: "Lensa bawaan",
		AdImageURL:    strptr(""),
		AdCategory:    "electronics",
		AdCondition:   constants.ConditionNew,
	})

	assert.NoError(t, err)
	assert.Nil(t, ad.AdImageURL)
}

func TestUpdateAd_EmptyImageURLClears(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	owner := uuid.New()
	ad := ownedAd(owner)
	ad.AdImageURL = strptr("https://cdn.example.com/sepeda.jpg")

	repo.On("FindByID", ad.AdID).Return(ad, nil)
	repo.On("Save", ad).Return(nil)

	updated, err := svc.Update(owner, ad.AdID, dto.UpdateAdRequest{AdImageURL: strptr("  ")})

	assert.NoError(t, err)
	assert.Nil(t, updated.AdImageURL)
	repo.AssertExpectations(t)
}

func TestUpdateAd_NotFound(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	adID := uuid.New()

	repo.On("FindByID", adID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(uuid.New(), adID, dto.UpdateAdRequest{AdTitle: strptr("Baru")})

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdateAd_NotOwner(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	ad := ownedAd(uuid.New())

	repo.On("FindByID", ad.AdID).Return(ad, nil)

	_, err := svc.Update(uuid.New(), ad.AdID, dto.UpdateAdRequest{AdTitle: strptr("Baru")})

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUpdateAd_PartialFields(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	owner := uuid.New()
	ad := ownedAd(owner)

	repo.On("FindByID", ad.AdID).Return(ad, nil)
	repo.On("Save", ad).Return(nil)

	updated, err := svc.Update(owner, ad.AdID, dto.UpdateAdRequest{
		AdTitle:     strptr("Sepeda lipat 20 inch"),
		AdCondition: strptr(constants.ConditionNew),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sepeda lipat 20 inch", updated.AdTitle)
	assert.Equal(t, constants.ConditionNew, updated.AdCondition)
	// field lain tidak ikut berubah
	assert.Equal(t, "Masih mulus", updated.AdDescription)
	assert.Equal(t, owner, updated.AdUserID)
	repo.AssertExpectations(t)
}

func TestUpdateAd_InvalidCondition(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	owner := uuid.New()
	ad := ownedAd(owner)

	repo.On("FindByID", ad.AdID).Return(ad, nil)

	_, err := svc.Update(owner, ad.AdID, dto.UpdateAdRequest{AdCondition: strptr("broken")})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestDeleteAd_CascadesProposals(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	owner := uuid.New()
	ad := ownedAd(owner)

	repo.On("FindByID", ad.AdID).Return(ad, nil)
	repo.On("DeleteProposalsByAd", ad.AdID).Return(nil)
	repo.On("Delete", ad.AdID).Return(nil)

	err := svc.Delete(owner, ad.AdID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteAd_NotOwner(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	ad := ownedAd(uuid.New())

	repo.On("FindByID", ad.AdID).Return(ad, nil)

	err := svc.Delete(uuid.New(), ad.AdID)

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	repo.AssertNotCalled(t, "DeleteProposalsByAd", mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteAd_NotFound(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	adID := uuid.New()

	repo.On("FindByID", adID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(uuid.New(), adID)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestListAds_Empty(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)

	repo.On("List", repository.AdListFilter{}, 10, 0).Return([]model.AdModel{}, int64(0), nil)

	ads, total, err := svc.List(repository.AdListFilter{}, 10, 0)

	assert.NoError(t, err)
	assert.Empty(t, ads)
	assert.Equal(t, int64(0), total)
}

func TestListAds_FilterPassthrough(t *testing.T) {
	repo := new(MockAdRepository)
	svc := NewAdService(repo)
	filter := repository.AdListFilter{Query: "sepeda", Category: "sports", Condition: constants.ConditionUsed}

	repo.On("List", filter, 10, 20).Return([]model.AdModel{*ownedAd(uuid.New())}, int64(21), nil)

	ads, total, err := svc.List(filter, 10, 20)

	assert.NoError(t, err)
	assert.Len(t, ads, 1)
	assert.Equal(t, int64(21), total)
	repo.AssertExpectations(t)
}
