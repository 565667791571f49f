package chat

import (
	"context"
	"sync"
)

var _ aiClient = &aiClientMock{}

type aiClientMock struct {
	CompleteFunc func(ctx context.Context, system, user string) (string, error)

	calls struct {
		Complete []struct {
			Ctx    context.Context
			System string
			User   string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *aiClientMock) Complete(ctx context.Context, system, user string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("aiClientMock.CompleteFunc: method is nil but aiClient.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		System string
		User   string
	}{Ctx: ctx, System: system, User: user}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, system, user)
}

func (mock *aiClientMock) CompleteCalls() []struct {
	Ctx    context.Context
	System string
	User   string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
