package handlers

import (
	"context"

	"github.com/ideamk/leadmail/services"
	"github.com/ideamk/leadmail/types"
	"github.com/stretchr/testify/mock"
)

// MockLeadDispatcher stands in for the lead service.
type MockLeadDispatcher struct {
	mock.Mock
}

func (m *MockLeadDispatcher) Dispatch(ctx context.Context, lead types.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

// MockMailer records what the real lead service hands to the transport.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg services.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMailer) Ready() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMailer) Name() string { return "mock" }
