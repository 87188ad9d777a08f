package filesystem

import (
	mock "github.com/stretchr/testify/mock"
	unix "golang.org/x/sys/unix"
)

// mockUnixProvider is a mock type for the unixProvider type.
type mockUnixProvider struct {
	mock.Mock
}

// Lstat provides a mock function with given fields: path, stat
func (_m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	ret := _m.Called(path, stat)

	if len(ret) == 0 {
		panic("no return value specified for Lstat")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, *unix.Stat_t) error); ok {
		r0 = rf(path, stat)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Stat provides a mock function with given fields: path, stat
func (_m *mockUnixProvider) Stat(path string, stat *unix.Stat_t) error {
	ret := _m.Called(path, stat)

	if len(ret) == 0 {
		panic("no return value specified for Stat")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, *unix.Stat_t) error); ok {
		r0 = rf(path, stat)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// newMockUnixProvider creates a new instance of mockUnixProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func newMockUnixProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockUnixProvider {
	mock := &mockUnixProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
