// GoMock mocks for payment_gateway_interface.go, kept in mockgen's output layout.
// Maintained by hand; replace with the output of go generate when the
// interface changes:
//
//	mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// Package mock_interfaces holds GoMock mocks used by the unit tests.
package mock_interfaces

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIPaymentGateway is a mock of IPaymentGateway interface.
type MockIPaymentGateway struct {
	ctrl     *gomock.Controller
	recorder *MockIPaymentGatewayMockRecorder
	isgomock struct{}
}

// MockIPaymentGatewayMockRecorder is the mock recorder for MockIPaymentGateway.
type MockIPaymentGatewayMockRecorder struct {
	mock *MockIPaymentGateway
}

// NewMockIPaymentGateway creates a new mock instance.
func NewMockIPaymentGateway(ctrl *gomock.Controller) *MockIPaymentGateway {
	mock := &MockIPaymentGateway{ctrl: ctrl}
	mock.recorder = &MockIPaymentGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIPaymentGateway) EXPECT() *MockIPaymentGatewayMockRecorder {
	return m.recorder
}

// CreatePayment mocks base method.
func (m *MockIPaymentGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePayment", ctx, requestPayload)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(json.RawMessage)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// CreatePayment indicates an expected call of CreatePayment.
func (mr *MockIPaymentGatewayMockRecorder) CreatePayment(ctx any, requestPayload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePayment", reflect.TypeOf((*MockIPaymentGateway)(nil).CreatePayment), ctx, requestPayload)
}
