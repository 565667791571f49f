package chat

import (
	"context"
	"sync"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/internal/service/expense"
)

var _ intentParser = &intentParserMock{}

type intentParserMock struct {
	ParseFunc func(ctx context.Context, message string) domain.ParsedIntent

	calls struct {
		Parse []struct {
			Ctx     context.Context
			Message string
		}
	}
	lockParse sync.RWMutex
}

func (mock *intentParserMock) Parse(ctx context.Context, message string) domain.ParsedIntent {
	if mock.ParseFunc == nil {
		panic("intentParserMock.ParseFunc: method is nil but intentParser.Parse was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockParse.Lock()
	mock.calls.Parse = append(mock.calls.Parse, callInfo)
	mock.lockParse.Unlock()
	return mock.ParseFunc(ctx, message)
}

func (mock *intentParserMock) ParseCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockParse.RLock()
	calls := mock.calls.Parse
	mock.lockParse.RUnlock()
	return calls
}

var _ replyGenerator = &replyGeneratorMock{}

type replyGeneratorMock struct {
	GenerateFunc func(ctx context.Context, parsed domain.ParsedIntent, result ActionResult) string

	calls struct {
		Generate []struct {
			Ctx    context.Context
			Parsed domain.ParsedIntent
			Result ActionResult
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *replyGeneratorMock) Generate(ctx context.Context, parsed domain.ParsedIntent, result ActionResult) string {
	if mock.GenerateFunc == nil {
		panic("replyGeneratorMock.GenerateFunc: method is nil but replyGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Parsed domain.ParsedIntent
		Result ActionResult
	}{Ctx: ctx, Parsed: parsed, Result: result}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, parsed, result)
}

func (mock *replyGeneratorMock) GenerateCalls() []struct {
	Ctx    context.Context
	Parsed domain.ParsedIntent
	Result ActionResult
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	CreateFunc       func(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	ListFunc         func(ctx context.Context) ([]domain.Expense, error)
	TotalFunc        func(ctx context.Context) (float64, error)
	DeleteBeforeFunc func(ctx context.Context, input expense.DeleteBeforeInput) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input expense.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		Total []struct {
			Ctx context.Context
		}
		DeleteBefore []struct {
			Ctx   context.Context
			Input expense.DeleteBeforeInput
		}
	}
	lockCreate       sync.RWMutex
	lockList         sync.RWMutex
	lockTotal        sync.RWMutex
	lockDeleteBefore sync.RWMutex
}

func (mock *ledgerMock) Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error) {
	if mock.CreateFunc == nil {
		panic("ledgerMock.CreateFunc: method is nil but ledger.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input expense.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *ledgerMock) CreateCalls() []struct {
	Ctx   context.Context
	Input expense.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ledgerMock) List(ctx context.Context) ([]domain.Expense, error) {
	if mock.ListFunc == nil {
		panic("ledgerMock.ListFunc: method is nil but ledger.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *ledgerMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *ledgerMock) Total(ctx context.Context) (float64, error) {
	if mock.TotalFunc == nil {
		panic("ledgerMock.TotalFunc: method is nil but ledger.Total was just called")
	}
	mock.lockTotal.Lock()
	mock.calls.Total = append(mock.calls.Total, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockTotal.Unlock()
	return mock.TotalFunc(ctx)
}

func (mock *ledgerMock) TotalCalls() []struct{ Ctx context.Context } {
	mock.lockTotal.RLock()
	calls := mock.calls.Total
	mock.lockTotal.RUnlock()
	return calls
}

func (mock *ledgerMock) DeleteBefore(ctx context.Context, input expense.DeleteBeforeInput) (int, error) {
	if mock.DeleteBeforeFunc == nil {
		panic("ledgerMock.DeleteBeforeFunc: method is nil but ledger.DeleteBefore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input expense.DeleteBeforeInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteBefore.Lock()
	mock.calls.DeleteBefore = append(mock.calls.DeleteBefore, callInfo)
	mock.lockDeleteBefore.Unlock()
	return mock.DeleteBeforeFunc(ctx, input)
}

func (mock *ledgerMock) DeleteBeforeCalls() []struct {
	Ctx   context.Context
	Input expense.DeleteBeforeInput
} {
	mock.lockDeleteBefore.RLock()
	calls := mock.calls.DeleteBefore
	mock.lockDeleteBefore.RUnlock()
	return calls
}
