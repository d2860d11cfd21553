// GoMock mocks for ucraft_estimates/internal/usecase (IEstimateUseCase), kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate (directive in
// ../estimate_handler.go) when the interface changes:
//
//	mockgen -destination=mocks/mock_estimate_usecase.go -package=mocks ucraft_estimates/internal/usecase IEstimateUseCase

// Package mocks holds GoMock mocks used by the unit tests.
package mocks

import (
	context "context"
	reflect "reflect"

	entities "ucraft_estimates/internal/domain/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockIEstimateUseCase is a mock of IEstimateUseCase interface.
type MockIEstimateUseCase struct {
	ctrl     *gomock.Controller
	recorder *MockIEstimateUseCaseMockRecorder
	isgomock struct{}
}

// MockIEstimateUseCaseMockRecorder is the mock recorder for MockIEstimateUseCase.
type MockIEstimateUseCaseMockRecorder struct {
	mock *MockIEstimateUseCase
}

// NewMockIEstimateUseCase creates a new mock instance.
func NewMockIEstimateUseCase(ctrl *gomock.Controller) *MockIEstimateUseCase {
	mock := &MockIEstimateUseCase{ctrl: ctrl}
	mock.recorder = &MockIEstimateUseCaseMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIEstimateUseCase) EXPECT() *MockIEstimateUseCaseMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockIEstimateUseCase) List(ctx context.Context, category string) ([]entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, category)
	ret0, _ := ret[0].([]entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockIEstimateUseCaseMockRecorder) List(ctx any, category any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockIEstimateUseCase)(nil).List), ctx, category)
}

// GetByID mocks base method.
func (m *MockIEstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockIEstimateUseCaseMockRecorder) GetByID(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockIEstimateUseCase)(nil).GetByID), ctx, id)
}

// Save mocks base method.
func (m *MockIEstimateUseCase) Save(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, draft)
	ret0, _ := ret[0].(entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Save indicates an expected call of Save.
func (mr *MockIEstimateUseCaseMockRecorder) Save(ctx any, draft any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockIEstimateUseCase)(nil).Save), ctx, draft)
}

// Transition mocks base method.
func (m *MockIEstimateUseCase) Transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transition", ctx, id, to)
	ret0, _ := ret[0].(entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Transition indicates an expected call of Transition.
func (mr *MockIEstimateUseCaseMockRecorder) Transition(ctx any, id any, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transition", reflect.TypeOf((*MockIEstimateUseCase)(nil).Transition), ctx, id, to)
}

// Send mocks base method.
func (m *MockIEstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, id)
	ret0, _ := ret[0].(entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockIEstimateUseCaseMockRecorder) Send(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockIEstimateUseCase)(nil).Send), ctx, id)
}

// Complete mocks base method.
func (m *MockIEstimateUseCase) Complete(ctx context.Context, id string) (entities.Estimate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, id)
	ret0, _ := ret[0].(entities.Estimate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Complete indicates an expected call of Complete.
func (mr *MockIEstimateUseCaseMockRecorder) Complete(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockIEstimateUseCase)(nil).Complete), ctx, id)
}

// DefaultSupplier mocks base method.
func (m *MockIEstimateUseCase) DefaultSupplier(ctx context.Context) (entities.Supplier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DefaultSupplier", ctx)
	ret0, _ := ret[0].(entities.Supplier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DefaultSupplier indicates an expected call of DefaultSupplier.
func (mr *MockIEstimateUseCaseMockRecorder) DefaultSupplier(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DefaultSupplier", reflect.TypeOf((*MockIEstimateUseCase)(nil).DefaultSupplier), ctx)
}

// UpdateDefaultSupplier mocks base method.
func (m *MockIEstimateUseCase) UpdateDefaultSupplier(ctx context.Context, profile entities.Supplier) (entities.Supplier, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDefaultSupplier", ctx, profile)
	ret0, _ := ret[0].(entities.Supplier)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDefaultSupplier indicates an expected call of UpdateDefaultSupplier.
func (mr *MockIEstimateUseCaseMockRecorder) UpdateDefaultSupplier(ctx any, profile any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDefaultSupplier", reflect.TypeOf((*MockIEstimateUseCase)(nil).UpdateDefaultSupplier), ctx, profile)
}

// NewDraft mocks base method.
func (m *MockIEstimateUseCase) NewDraft(ctx context.Context) (entities.EstimateDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewDraft", ctx)
	ret0, _ := ret[0].(entities.EstimateDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NewDraft indicates an expected call of NewDraft.
func (mr *MockIEstimateUseCaseMockRecorder) NewDraft(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewDraft", reflect.TypeOf((*MockIEstimateUseCase)(nil).NewDraft), ctx)
}
