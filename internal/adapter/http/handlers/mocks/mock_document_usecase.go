// GoMock mocks for ucraft_estimates/internal/usecase (IDocumentUseCase), kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate (directive in
// ../document_handler.go) when the interface changes:
//
//	mockgen -destination=mocks/mock_document_usecase.go -package=mocks ucraft_estimates/internal/usecase IDocumentUseCase

// Package mocks holds GoMock mocks used by the unit tests.
package mocks

import (
	context "context"
	reflect "reflect"

	document "ucraft_estimates/internal/domain/document"
	entities "ucraft_estimates/internal/domain/entities"
	interfaces "ucraft_estimates/internal/usecase/interfaces"
	gomock "go.uber.org/mock/gomock"
)

// MockIDocumentUseCase is a mock of IDocumentUseCase interface.
type MockIDocumentUseCase struct {
	ctrl     *gomock.Controller
	recorder *MockIDocumentUseCaseMockRecorder
	isgomock struct{}
}

// MockIDocumentUseCaseMockRecorder is the mock recorder for MockIDocumentUseCase.
type MockIDocumentUseCaseMockRecorder struct {
	mock *MockIDocumentUseCase
}

// NewMockIDocumentUseCase creates a new mock instance.
func NewMockIDocumentUseCase(ctrl *gomock.Controller) *MockIDocumentUseCase {
	mock := &MockIDocumentUseCase{ctrl: ctrl}
	mock.recorder = &MockIDocumentUseCaseMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDocumentUseCase) EXPECT() *MockIDocumentUseCaseMockRecorder {
	return m.recorder
}

// Render mocks base method.
func (m *MockIDocumentUseCase) Render(ctx context.Context, estimateID string, layout document.Layout) (document.Document, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Render", ctx, estimateID, layout)
	ret0, _ := ret[0].(document.Document)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Render indicates an expected call of Render.
func (mr *MockIDocumentUseCaseMockRecorder) Render(ctx any, estimateID any, layout any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Render", reflect.TypeOf((*MockIDocumentUseCase)(nil).Render), ctx, estimateID, layout)
}

// RenderDraft mocks base method.
func (m *MockIDocumentUseCase) RenderDraft(draft entities.EstimateDraft, layout document.Layout) (document.Document, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenderDraft", draft, layout)
	ret0, _ := ret[0].(document.Document)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenderDraft indicates an expected call of RenderDraft.
func (mr *MockIDocumentUseCaseMockRecorder) RenderDraft(draft any, layout any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenderDraft", reflect.TypeOf((*MockIDocumentUseCase)(nil).RenderDraft), draft, layout)
}

// Export mocks base method.
func (m *MockIDocumentUseCase) Export(ctx context.Context, estimateID string, layout document.Layout, format string) (interfaces.Artifact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Export", ctx, estimateID, layout, format)
	ret0, _ := ret[0].(interfaces.Artifact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Export indicates an expected call of Export.
func (mr *MockIDocumentUseCaseMockRecorder) Export(ctx any, estimateID any, layout any, format any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Export", reflect.TypeOf((*MockIDocumentUseCase)(nil).Export), ctx, estimateID, layout, format)
}

// ExportDraft mocks base method.
func (m *MockIDocumentUseCase) ExportDraft(ctx context.Context, draft entities.EstimateDraft, layout document.Layout, format string) (interfaces.Artifact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExportDraft", ctx, draft, layout, format)
	ret0, _ := ret[0].(interfaces.Artifact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExportDraft indicates an expected call of ExportDraft.
func (mr *MockIDocumentUseCaseMockRecorder) ExportDraft(ctx any, draft any, layout any, format any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExportDraft", reflect.TypeOf((*MockIDocumentUseCase)(nil).ExportDraft), ctx, draft, layout, format)
}

// Formats mocks base method.
func (m *MockIDocumentUseCase) Formats() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Formats")
	ret0, _ := ret[0].([]string)
	return ret0
}

// Formats indicates an expected call of Formats.
func (mr *MockIDocumentUseCaseMockRecorder) Formats() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Formats", reflect.TypeOf((*MockIDocumentUseCase)(nil).Formats))
}
