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
	adModel "barterku_backend/internals/features/ads/ads/model"
	"barterku_backend/internals/features/ads/proposals/dto"
	"barterku_backend/internals/features/ads/proposals/model"
	"barterku_backend/internals/features/ads/proposals/repository"
)

type MockProposalRepository struct{ mock.Mock }

func (m *MockProposalRepository) InTx(fn func(repository.ProposalRepository) error) error {
	return fn(m)
}

func (m *MockProposalRepository) FindByID(id uuid.UUID) (*model.ExchangeProposalModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExchangeProposalModel), args.Error(1)
}

func (m *MockProposalRepository) List(f repository.ProposalListFilter, limit, offset int) ([]model.ExchangeProposalModel, int64, error) {
	args := m.Called(f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.ExchangeProposalModel), args.Get(1).(int64), args.Error(2)
}

func (m *MockProposalRepository) Create(p *model.ExchangeProposalModel) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateStatus(id uuid.UUID, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockProposalRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProposalRepository) FindAdByID(id uuid.UUID) (*adModel.AdModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adModel.AdModel), args.Error(1)
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %v", err)
	}
	return fe.Code
}

type fixture struct {
	userA uuid.UUID // pemilik iklan sender
	userB uuid.UUID // pemilik iklan receiver
	adA   *adModel.AdModel
	adB   *adModel.AdModel
}

func newFixture() fixture {
	userA := uuid.New()
	userB := uuid.New()
	return fixture{
		userA: userA,
		userB: userB,
		adA: &adModel.AdModel{
			AdID:          uuid.New(),
			AdUserID:      userA,
			AdTitle:       "Sender Ad",
			AdDescription: "barang A",
			AdCategory:    "misc",
			AdCondition:   constants.ConditionUsed,
		},
		adB: &adModel.AdModel{
			AdID:          uuid.New(),
			AdUserID:      userB,
			AdTitle:       "Receiver Ad",
			AdDescription: "barang B",
			AdCategory:    "misc",
			AdCondition:   constants.ConditionNew,
		},
	}
}

func pendingProposal(fx fixture) *model.ExchangeProposalModel {
	return &model.ExchangeProposalModel{
		ProposalID:           uuid.New(),
		ProposalAdSenderID:   fx.adA.AdID,
		ProposalAdReceiverID: fx.adB.AdID,
		ProposalComment:      "swap?",
		ProposalStatus:       constants.ProposalStatusPending,
	}
}

/* ========== Create ========== */

func TestCreateProposal_Success(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)

	repo.On("FindAdByID", fx.adA.AdID).Return(fx.adA, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)
	repo.On("Create", mock.AnythingOfType("*model.ExchangeProposalModel")).Return(nil)

	p, err := svc.Create(fx.userA, dto.CreateProposalRequest{
		ProposalAdSenderID:   fx.adA.AdID.String(),
		ProposalAdReceiverID: fx.adB.AdID.String(),
		ProposalComment:      "swap?",
	})

	assert.NoError(t, err)
	assert.Equal(t, constants.ProposalStatusPending, p.ProposalStatus)
	assert.Equal(t, fx.adA.AdID, p.ProposalAdSenderID)
	assert.Equal(t, fx.adB.AdID, p.ProposalAdReceiverID)
	repo.AssertExpectations(t)
}

func TestCreateProposal_SameAd(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)

	_, err := svc.Create(fx.userA, dto.CreateProposalRequest{
		ProposalAdSenderID:   fx.adA.AdID.String(),
		ProposalAdReceiverID: fx.adA.AdID.String(),
		ProposalComment:      "swap?",
	})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProposal_SenderAdMissing(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)

	repo.On("FindAdByID", fx.adA.AdID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(fx.userA, dto.CreateProposalRequest{
		ProposalAdSenderID:   fx.adA.AdID.String(),
		ProposalAdReceiverID: fx.adB.AdID.String(),
		ProposalComment:      "swap?",
	})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestCreateProposal_NotSenderOwner(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)

	repo.On("FindAdByID", fx.adA.AdID).Return(fx.adA, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	// userB mencoba kirim proposal dari iklan milik userA
	_, err := svc.Create(fx.userB, dto.CreateProposalRequest{
		ProposalAdSenderID:   fx.adA.AdID.String(),
		ProposalAdReceiverID: fx.adB.AdID.String(),
		ProposalComment:      "swap?",
	})

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

/* ========== Update status ========== */

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	id := uuid.New()

	repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(uuid.New(), id, map[string]any{AllowedStatusField: "accepted"})

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdateStatus_NotReceiverOwner(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	// userA (pemilik sender) tidak boleh ubah status
	_, err := svc.UpdateStatus(fx.userA, p.ProposalID, map[string]any{AllowedStatusField: "accepted"})

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_WrongField(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	_, err := svc.UpdateStatus(fx.userB, p.ProposalID, map[string]any{"proposal_comment": "hijacked"})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	var fe *fiber.Error
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Message, AllowedStatusField)
}

func TestUpdateStatus_TooManyFields(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	_, err := svc.UpdateStatus(fx.userB, p.ProposalID, map[string]any{
		AllowedStatusField: "accepted",
		"proposal_comment": "plus ini",
	})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	var fe *fiber.Error
	assert.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Message, AllowedStatusField)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	_, err := svc.UpdateStatus(fx.userB, p.ProposalID, map[string]any{AllowedStatusField: "maybe"})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestUpdateStatus_AlreadyFinalized(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)
	p.ProposalStatus = constants.ProposalStatusAccepted

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)

	_, err := svc.UpdateStatus(fx.userB, p.ProposalID, map[string]any{AllowedStatusField: "rejected"})

	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_AcceptByReceiverOwner(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adB.AdID).Return(fx.adB, nil)
	repo.On("UpdateStatus", p.ProposalID, constants.ProposalStatusAccepted).Return(nil)

	updated, err := svc.UpdateStatus(fx.userB, p.ProposalID, map[string]any{AllowedStatusField: "accepted"})

	assert.NoError(t, err)
	assert.Equal(t, constants.ProposalStatusAccepted, updated.ProposalStatus)
	repo.AssertExpectations(t)
}

/* ========== Delete ========== */

func TestDeleteProposal_NotSenderOwner(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adA.AdID).Return(fx.adA, nil)

	// userB (pemilik receiver) tidak boleh hapus proposal
	err := svc.Delete(fx.userB, p.ProposalID)

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteProposal_BySenderOwner(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	p := pendingProposal(fx)

	repo.On("FindByID", p.ProposalID).Return(p, nil)
	repo.On("FindAdByID", fx.adA.AdID).Return(fx.adA, nil)
	repo.On("Delete", p.ProposalID).Return(nil)

	err := svc.Delete(fx.userA, p.ProposalID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteProposal_NotFound(t *testing.T) {
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	id := uuid.New()

	repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(uuid.New(), id)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

/* ========== List ========== */

func TestListProposals_FilterByStatus(t *testing.T) {
	fx := newFixture()
	repo := new(MockProposalRepository)
	svc := NewProposalService(repo)
	filter := repository.ProposalListFilter{Status: constants.ProposalStatusPending}

	repo.On("List", filter, 10, 0).
		Return([]model.ExchangeProposalModel{*pendingProposal(fx)}, int64(1), nil)

	proposals, total, err := svc.List(filter, 10, 0)

	assert.NoError(t, err)
	assert.Len(t, proposals, 1)
	assert.Equal(t, int64(1), total)
}
