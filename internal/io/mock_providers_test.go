package io

import (
	os "os"

	mock "github.com/stretchr/testify/mock"
)

// mockOsProvider is a mock type for the osProvider type.
type mockOsProvider struct {
	mock.Mock
}

// Open provides a mock function with given fields: name
func (_m *mockOsProvider) Open(name string) (*os.File, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for Open")
	}

	var r0 *os.File
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*os.File, error)); ok {
		return rf(name)
	}
	if rf, ok := ret.Get(0).(func(string) *os.File); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*os.File)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// OpenFile provides a mock function with given fields: name, flag, perm
func (_m *mockOsProvider) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	ret := _m.Called(name, flag, perm)

	if len(ret) == 0 {
		panic("no return value specified for OpenFile")
	}

	var r0 *os.File
	var r1 error
	if rf, ok := ret.Get(0).(func(string, int, os.FileMode) (*os.File, error)); ok {
		return rf(name, flag, perm)
	}
	if rf, ok := ret.Get(0).(func(string, int, os.FileMode) *os.File); ok {
		r0 = rf(name, flag, perm)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*os.File)
		}
	}

	if rf, ok := ret.Get(1).(func(string, int, os.FileMode) error); ok {
		r1 = rf(name, flag, perm)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// newMockOsProvider creates a new instance of mockOsProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func newMockOsProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockOsProvider {
	mock := &mockOsProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// mockUnixProvider is a mock type for the unixProvider type.
type mockUnixProvider struct {
	mock.Mock
}

// Sendfile provides a mock function with given fields: outfd, infd, offset, count
func (_m *mockUnixProvider) Sendfile(outfd int, infd int, offset *int64, count int) (int, error) {
	ret := _m.Called(outfd, infd, offset, count)

	if len(ret) == 0 {
		panic("no return value specified for Sendfile")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(int, int, *int64, int) (int, error)); ok {
		return rf(outfd, infd, offset, count)
	}
	if rf, ok := ret.Get(0).(func(int, int, *int64, int) int); ok {
		r0 = rf(outfd, infd, offset, count)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(int, int, *int64, int) error); ok {
		r1 = rf(outfd, infd, offset, count)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
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

// mockProgressReporter is a mock type for the progressReporter type.
type mockProgressReporter struct {
	mock.Mock
}

// Update provides a mock function with given fields: written, total
func (_m *mockProgressReporter) Update(written uint64, total uint64) {
	_m.Called(written, total)
}

// newMockProgressReporter creates a new instance of mockProgressReporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func newMockProgressReporter(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockProgressReporter {
	mock := &mockProgressReporter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
