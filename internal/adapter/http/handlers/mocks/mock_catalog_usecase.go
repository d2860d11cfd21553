// GoMock mocks for ucraft_estimates/internal/usecase (ICatalogUseCase), kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate (directive in
// ../catalog_handler.go) when the interface changes:
//
//	mockgen -destination=mocks/mock_catalog_usecase.go -package=mocks ucraft_estimates/internal/usecase ICatalogUseCase

// Package mocks holds GoMock mocks used by the unit tests.
package mocks

import (
	reflect "reflect"

	entities "ucraft_estimates/internal/domain/entities"
	gomock "go.uber.org/mock/gomock"
)

// MockICatalogUseCase is a mock of ICatalogUseCase interface.
type MockICatalogUseCase struct {
	ctrl     *gomock.Controller
	recorder *MockICatalogUseCaseMockRecorder
	isgomock struct{}
}

// MockICatalogUseCaseMockRecorder is the mock recorder for MockICatalogUseCase.
type MockICatalogUseCaseMockRecorder struct {
	mock *MockICatalogUseCase
}

// NewMockICatalogUseCase creates a new mock instance.
func NewMockICatalogUseCase(ctrl *gomock.Controller) *MockICatalogUseCase {
	mock := &MockICatalogUseCase{ctrl: ctrl}
	mock.recorder = &MockICatalogUseCaseMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockICatalogUseCase) EXPECT() *MockICatalogUseCaseMockRecorder {
	return m.recorder
}

// Search mocks base method.
func (m *MockICatalogUseCase) Search(query string, category string) []entities.CatalogItem {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", query, category)
	ret0, _ := ret[0].([]entities.CatalogItem)
	return ret0
}

// Search indicates an expected call of Search.
func (mr *MockICatalogUseCaseMockRecorder) Search(query any, category any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockICatalogUseCase)(nil).Search), query, category)
}

// Categories mocks base method.
func (m *MockICatalogUseCase) Categories() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Categories")
	ret0, _ := ret[0].([]string)
	return ret0
}

// Categories indicates an expected call of Categories.
func (mr *MockICatalogUseCaseMockRecorder) Categories() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Categories", reflect.TypeOf((*MockICatalogUseCase)(nil).Categories))
}

// Item mocks base method.
func (m *MockICatalogUseCase) Item(id string) (entities.CatalogItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Item", id)
	ret0, _ := ret[0].(entities.CatalogItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Item indicates an expected call of Item.
func (mr *MockICatalogUseCaseMockRecorder) Item(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Item", reflect.TypeOf((*MockICatalogUseCase)(nil).Item), id)
}

// Favorites mocks base method.
func (m *MockICatalogUseCase) Favorites() []entities.CatalogItem {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Favorites")
	ret0, _ := ret[0].([]entities.CatalogItem)
	return ret0
}

// Favorites indicates an expected call of Favorites.
func (mr *MockICatalogUseCaseMockRecorder) Favorites() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Favorites", reflect.TypeOf((*MockICatalogUseCase)(nil).Favorites))
}

// Templates mocks base method.
func (m *MockICatalogUseCase) Templates() []entities.Template {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Templates")
	ret0, _ := ret[0].([]entities.Template)
	return ret0
}

// Templates indicates an expected call of Templates.
func (mr *MockICatalogUseCaseMockRecorder) Templates() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Templates", reflect.TypeOf((*MockICatalogUseCase)(nil).Templates))
}

// Template mocks base method.
func (m *MockICatalogUseCase) Template(id string) (entities.Template, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Template", id)
	ret0, _ := ret[0].(entities.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Template indicates an expected call of Template.
func (mr *MockICatalogUseCaseMockRecorder) Template(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Template", reflect.TypeOf((*MockICatalogUseCase)(nil).Template), id)
}

// ApplyTemplate mocks base method.
func (m *MockICatalogUseCase) ApplyTemplate(t entities.Template) []entities.LineItem {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyTemplate", t)
	ret0, _ := ret[0].([]entities.LineItem)
	return ret0
}

// ApplyTemplate indicates an expected call of ApplyTemplate.
func (mr *MockICatalogUseCaseMockRecorder) ApplyTemplate(t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyTemplate", reflect.TypeOf((*MockICatalogUseCase)(nil).ApplyTemplate), t)
}

// ApplyTemplateByID mocks base method.
func (m *MockICatalogUseCase) ApplyTemplateByID(id string) ([]entities.LineItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyTemplateByID", id)
	ret0, _ := ret[0].([]entities.LineItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyTemplateByID indicates an expected call of ApplyTemplateByID.
func (mr *MockICatalogUseCaseMockRecorder) ApplyTemplateByID(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyTemplateByID", reflect.TypeOf((*MockICatalogUseCase)(nil).ApplyTemplateByID), id)
}

// ApplyMany mocks base method.
func (m *MockICatalogUseCase) ApplyMany(items []entities.CatalogItem) []entities.LineItem {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyMany", items)
	ret0, _ := ret[0].([]entities.LineItem)
	return ret0
}

// ApplyMany indicates an expected call of ApplyMany.
func (mr *MockICatalogUseCaseMockRecorder) ApplyMany(items any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyMany", reflect.TypeOf((*MockICatalogUseCase)(nil).ApplyMany), items)
}

// ApplyManyByID mocks base method.
func (m *MockICatalogUseCase) ApplyManyByID(ids []string) ([]entities.LineItem, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyManyByID", ids)
	ret0, _ := ret[0].([]entities.LineItem)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyManyByID indicates an expected call of ApplyManyByID.
func (mr *MockICatalogUseCaseMockRecorder) ApplyManyByID(ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyManyByID", reflect.TypeOf((*MockICatalogUseCase)(nil).ApplyManyByID), ids)
}

// Select mocks base method.
func (m *MockICatalogUseCase) Select(item entities.CatalogItem) entities.LineItemInput {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Select", item)
	ret0, _ := ret[0].(entities.LineItemInput)
	return ret0
}

// Select indicates an expected call of Select.
func (mr *MockICatalogUseCaseMockRecorder) Select(item any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Select", reflect.TypeOf((*MockICatalogUseCase)(nil).Select), item)
}

// SeedEstimates mocks base method.
func (m *MockICatalogUseCase) SeedEstimates() []entities.Estimate {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SeedEstimates")
	ret0, _ := ret[0].([]entities.Estimate)
	return ret0
}

// SeedEstimates indicates an expected call of SeedEstimates.
func (mr *MockICatalogUseCaseMockRecorder) SeedEstimates() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SeedEstimates", reflect.TypeOf((*MockICatalogUseCase)(nil).SeedEstimates))
}
