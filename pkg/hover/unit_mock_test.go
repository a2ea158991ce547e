package hover_test

import (
	"github.com/stretchr/testify/mock"
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

type MockUnit struct {
	mock.Mock
}

func (m *MockUnit) File(name string) (cindex.File, bool) {
	args := m.Called(name)
	return args.Get(0).(cindex.File), args.Bool(1)
}

func (m *MockUnit) Location(file cindex.File, line, column int) cindex.Location {
	args := m.Called(file, line, column)
	return args.Get(0).(cindex.Location)
}

func (m *MockUnit) Tokens(r cindex.Range) []cindex.Token {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]cindex.Token)
}

func (m *MockUnit) CursorAt(loc cindex.Location) (cindex.Cursor, bool) {
	args := m.Called(loc)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(cindex.Cursor), args.Bool(1)
}
