// Hand-written in the shape of MockGen output.
// Source: backend.go

// Package mocks holds GoMock-style test doubles for the ports interfaces.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	domain "wfgraph/internal/core/domain"
	ports "wfgraph/internal/core/ports"
)

// MockBackend is a mock of the Backend interface.
type MockBackend struct {
	ctrl     *gomock.Controller
	recorder *MockBackendMockRecorder
}

// MockBackendMockRecorder is the mock recorder for MockBackend.
type MockBackendMockRecorder struct {
	mock *MockBackend
}

// NewMockBackend creates a new mock instance.
func NewMockBackend(ctrl *gomock.Controller) *MockBackend {
	mock := &MockBackend{ctrl: ctrl}
	mock.recorder = &MockBackendMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBackend) EXPECT() *MockBackendMockRecorder {
	return m.recorder
}

// OptionDefaults mocks base method.
func (m *MockBackend) OptionDefaults() map[string]any {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OptionDefaults")
	ret0, _ := ret[0].(map[string]any)
	return ret0
}

// OptionDefaults indicates an expected call of OptionDefaults.
func (mr *MockBackendMockRecorder) OptionDefaults() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OptionDefaults", reflect.TypeOf((*MockBackend)(nil).OptionDefaults))
}

// Submit mocks base method.
func (m *MockBackend) Submit(ctx context.Context, target *domain.Target, dependencies []*domain.Target) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", ctx, target, dependencies)
	ret0, _ := ret[0].(error)
	return ret0
}

// Submit indicates an expected call of Submit.
func (mr *MockBackendMockRecorder) Submit(ctx, target, dependencies any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockBackend)(nil).Submit), ctx, target, dependencies)
}

// Liveness mocks base method.
func (m *MockBackend) Liveness(ctx context.Context, target *domain.Target) (ports.Liveness, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Liveness", ctx, target)
	ret0, _ := ret[0].(ports.Liveness)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Liveness indicates an expected call of Liveness.
func (mr *MockBackendMockRecorder) Liveness(ctx, target any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Liveness", reflect.TypeOf((*MockBackend)(nil).Liveness), ctx, target)
}

// Close mocks base method.
func (m *MockBackend) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockBackendMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockBackend)(nil).Close))
}
