package configuration

import mock "github.com/stretchr/testify/mock"

// mockGenericConfigProvider is a mock type for the genericConfigProvider type.
type mockGenericConfigProvider struct {
	mock.Mock
}

// Read provides a mock function with given fields: filenames
func (_m *mockGenericConfigProvider) Read(filenames ...string) (map[string]string, error) {
	_va := make([]interface{}, len(filenames))
	for _i := range filenames {
		_va[_i] = filenames[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	var r0 map[string]string
	var r1 error
	if rf, ok := ret.Get(0).(func(...string) (map[string]string, error)); ok {
		return rf(filenames...)
	}
	if rf, ok := ret.Get(0).(func(...string) map[string]string); ok {
		r0 = rf(filenames...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]string)
		}
	}

	if rf, ok := ret.Get(1).(func(...string) error); ok {
		r1 = rf(filenames...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// newMockGenericConfigProvider creates a new instance of mockGenericConfigProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func newMockGenericConfigProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockGenericConfigProvider {
	mock := &mockGenericConfigProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
