// Hand-written in the shape of MockGen output.
// Source: statestore.go

package mocks

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	ports "wfgraph/internal/core/ports"
)

// MockTargetMeta is a mock of the TargetMeta interface.
type MockTargetMeta struct {
	ctrl     *gomock.Controller
	recorder *MockTargetMetaMockRecorder
}

// MockTargetMetaMockRecorder is the mock recorder for MockTargetMeta.
type MockTargetMetaMockRecorder struct {
	mock *MockTargetMeta
}

// NewMockTargetMeta creates a new mock instance.
func NewMockTargetMeta(ctrl *gomock.Controller) *MockTargetMeta {
	mock := &MockTargetMeta{ctrl: ctrl}
	mock.recorder = &MockTargetMetaMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTargetMeta) EXPECT() *MockTargetMetaMockRecorder {
	return m.recorder
}

func (m *MockTargetMeta) IsUnknown() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsUnknown")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsUnknown() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsUnknown", reflect.TypeOf((*MockTargetMeta)(nil).IsUnknown))
}

func (m *MockTargetMeta) IsSubmitted() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSubmitted")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsSubmitted() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSubmitted", reflect.TypeOf((*MockTargetMeta)(nil).IsSubmitted))
}

func (m *MockTargetMeta) IsRunning() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsRunning")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsRunning() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRunning", reflect.TypeOf((*MockTargetMeta)(nil).IsRunning))
}

func (m *MockTargetMeta) IsCompleted() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsCompleted")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsCompleted() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsCompleted", reflect.TypeOf((*MockTargetMeta)(nil).IsCompleted))
}

func (m *MockTargetMeta) IsFailed() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsFailed")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsFailed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsFailed", reflect.TypeOf((*MockTargetMeta)(nil).IsFailed))
}

func (m *MockTargetMeta) IsCancelled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsCancelled")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsCancelled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsCancelled", reflect.TypeOf((*MockTargetMeta)(nil).IsCancelled))
}

func (m *MockTargetMeta) IsKilled() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsKilled")
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) IsKilled() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsKilled", reflect.TypeOf((*MockTargetMeta)(nil).IsKilled))
}

func (m *MockTargetMeta) Reset(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reset", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Reset(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockTargetMeta)(nil).Reset), autocommit)
}

func (m *MockTargetMeta) Submitted(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submitted", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Submitted(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submitted", reflect.TypeOf((*MockTargetMeta)(nil).Submitted), autocommit)
}

func (m *MockTargetMeta) Running(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Running", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Running(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Running", reflect.TypeOf((*MockTargetMeta)(nil).Running), autocommit)
}

func (m *MockTargetMeta) Completed(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Completed", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Completed(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Completed", reflect.TypeOf((*MockTargetMeta)(nil).Completed), autocommit)
}

func (m *MockTargetMeta) Failed(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Failed", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Failed(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Failed", reflect.TypeOf((*MockTargetMeta)(nil).Failed), autocommit)
}

func (m *MockTargetMeta) Cancelled(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancelled", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Cancelled(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancelled", reflect.TypeOf((*MockTargetMeta)(nil).Cancelled), autocommit)
}

func (m *MockTargetMeta) Killed(autocommit bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Killed", autocommit)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Killed(autocommit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Killed", reflect.TypeOf((*MockTargetMeta)(nil).Killed), autocommit)
}

func (m *MockTargetMeta) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockTargetMetaMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTargetMeta)(nil).Commit))
}

// MockStateStore is a mock of the StateStore interface.
type MockStateStore struct {
	ctrl     *gomock.Controller
	recorder *MockStateStoreMockRecorder
}

// MockStateStoreMockRecorder is the mock recorder for MockStateStore.
type MockStateStoreMockRecorder struct {
	mock *MockStateStore
}

// NewMockStateStore creates a new mock instance.
func NewMockStateStore(ctrl *gomock.Controller) *MockStateStore {
	mock := &MockStateStore{ctrl: ctrl}
	mock.recorder = &MockStateStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStateStore) EXPECT() *MockStateStoreMockRecorder {
	return m.recorder
}

func (m *MockStateStore) Open() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStateStoreMockRecorder) Open() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockStateStore)(nil).Open))
}

func (m *MockStateStore) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockStateStoreMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStateStore)(nil).Close))
}

func (m *MockStateStore) GetTargetMeta(targetName string) (ports.TargetMeta, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTargetMeta", targetName)
	ret0, _ := ret[0].(ports.TargetMeta)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockStateStoreMockRecorder) GetTargetMeta(targetName any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTargetMeta", reflect.TypeOf((*MockStateStore)(nil).GetTargetMeta), targetName)
}
