package expense

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finchat/finchat-backend/internal/domain"
)

var _ expenseRepo = &expenseRepoMock{}

type expenseRepoMock struct {
	CreateFunc         func(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Expense, error)
	TotalByUserFunc    func(ctx context.Context, userID uuid.UUID) (float64, error)
	DeleteBeforeFunc   func(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int, error)
	CategoryTotalsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.CategoryTotal, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Expense *domain.Expense
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		TotalByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteBefore []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Cutoff time.Time
		}
		CategoryTotals []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockListByUser     sync.RWMutex
	lockTotalByUser    sync.RWMutex
	lockDeleteBefore   sync.RWMutex
	lockCategoryTotals sync.RWMutex
}

func (mock *expenseRepoMock) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	if mock.CreateFunc == nil {
		panic("expenseRepoMock.CreateFunc: method is nil but expenseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Expense *domain.Expense
	}{Ctx: ctx, Expense: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *expenseRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Expense *domain.Expense
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Expense, error) {
	if mock.ListByUserFunc == nil {
		panic("expenseRepoMock.ListByUserFunc: method is nil but expenseRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *expenseRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *expenseRepoMock) TotalByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	if mock.TotalByUserFunc == nil {
		panic("expenseRepoMock.TotalByUserFunc: method is nil but expenseRepo.TotalByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockTotalByUser.Lock()
	mock.calls.TotalByUser = append(mock.calls.TotalByUser, callInfo)
	mock.lockTotalByUser.Unlock()
	return mock.TotalByUserFunc(ctx, userID)
}

func (mock *expenseRepoMock) TotalByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockTotalByUser.RLock()
	calls := mock.calls.TotalByUser
	mock.lockTotalByUser.RUnlock()
	return calls
}

func (mock *expenseRepoMock) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int, error) {
	if mock.DeleteBeforeFunc == nil {
		panic("expenseRepoMock.DeleteBeforeFunc: method is nil but expenseRepo.DeleteBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Cutoff time.Time
	}{Ctx: ctx, UserID: userID, Cutoff: cutoff}
	mock.lockDeleteBefore.Lock()
	mock.calls.DeleteBefore = append(mock.calls.DeleteBefore, callInfo)
	mock.lockDeleteBefore.Unlock()
	return mock.DeleteBeforeFunc(ctx, userID, cutoff)
}

func (mock *expenseRepoMock) DeleteBeforeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Cutoff time.Time
} {
	mock.lockDeleteBefore.RLock()
	calls := mock.calls.DeleteBefore
	mock.lockDeleteBefore.RUnlock()
	return calls
}

func (mock *expenseRepoMock) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]domain.CategoryTotal, error) {
	if mock.CategoryTotalsFunc == nil {
		panic("expenseRepoMock.CategoryTotalsFunc: method is nil but expenseRepo.CategoryTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCategoryTotals.Lock()
	mock.calls.CategoryTotals = append(mock.calls.CategoryTotals, callInfo)
	mock.lockCategoryTotals.Unlock()
	return mock.CategoryTotalsFunc(ctx, userID)
}

func (mock *expenseRepoMock) CategoryTotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCategoryTotals.RLock()
	calls := mock.calls.CategoryTotals
	mock.lockCategoryTotals.RUnlock()
	return calls
}
