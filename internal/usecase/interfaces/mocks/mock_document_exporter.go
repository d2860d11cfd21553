// GoMock mocks for document_exporter_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=document_exporter_interface.go -destination=mocks/mock_document_exporter.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	document "ucraft_estimates/internal/domain/document"
	interfaces "ucraft_estimates/internal/usecase/interfaces"
)

// MockIDocumentExporter is a mock of IDocumentExporter interface.
type MockIDocumentExporter struct {
	ctrl     *gomock.Controller
	recorder *MockIDocumentExporterMockRecorder
	isgomock struct{}
}

// MockIDocumentExporterMockRecorder is the mock recorder for MockIDocumentExporter.
type MockIDocumentExporterMockRecorder struct {
	mock *MockIDocumentExporter
}

// NewMockIDocumentExporter creates a new mock instance.
func NewMockIDocumentExporter(ctrl *gomock.Controller) *MockIDocumentExporter {
	mock := &MockIDocumentExporter{ctrl: ctrl}
	mock.recorder = &MockIDocumentExporterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDocumentExporter) EXPECT() *MockIDocumentExporterMockRecorder {
	return m.recorder
}

// Export mocks base method.
func (m *MockIDocumentExporter) Export(ctx context.Context, doc document.Document, layout document.Layout, filename string) (interfaces.Artifact, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Export", ctx, doc, layout, filename)
	ret0, _ := ret[0].(interfaces.Artifact)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Export indicates an expected call of Export.
func (mr *MockIDocumentExporterMockRecorder) Export(ctx any, doc any, layout any, filename any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Export", reflect.TypeOf((*MockIDocumentExporter)(nil).Export), ctx, doc, layout, filename)
}

// Format mocks base method.
func (m *MockIDocumentExporter) Format() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Format")
	ret0, _ := ret[0].(string)
	return ret0
}

// Format indicates an expected call of Format.
func (mr *MockIDocumentExporterMockRecorder) Format() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Format", reflect.TypeOf((*MockIDocumentExporter)(nil).Format))
}

// MockICurrencyFormatter is a mock of ICurrencyFormatter interface.
type MockICurrencyFormatter struct {
	ctrl     *gomock.Controller
	recorder *MockICurrencyFormatterMockRecorder
	isgomock struct{}
}

// MockICurrencyFormatterMockRecorder is the mock recorder for MockICurrencyFormatter.
type MockICurrencyFormatterMockRecorder struct {
	mock *MockICurrencyFormatter
}

// NewMockICurrencyFormatter creates a new mock instance.
func NewMockICurrencyFormatter(ctrl *gomock.Controller) *MockICurrencyFormatter {
	mock := &MockICurrencyFormatter{ctrl: ctrl}
	mock.recorder = &MockICurrencyFormatterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockICurrencyFormatter) EXPECT() *MockICurrencyFormatterMockRecorder {
	return m.recorder
}

// Format mocks base method.
func (m *MockICurrencyFormatter) Format(amount int64) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Format", amount)
	ret0, _ := ret[0].(string)
	return ret0
}

// Format indicates an expected call of Format.
func (mr *MockICurrencyFormatterMockRecorder) Format(amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Format", reflect.TypeOf((*MockICurrencyFormatter)(nil).Format), amount)
}

// Number mocks base method.
func (m *MockICurrencyFormatter) Number(amount int64) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Number", amount)
	ret0, _ := ret[0].(string)
	return ret0
}

// Number indicates an expected call of Number.
func (mr *MockICurrencyFormatterMockRecorder) Number(amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Number", reflect.TypeOf((*MockICurrencyFormatter)(nil).Number), amount)
}
