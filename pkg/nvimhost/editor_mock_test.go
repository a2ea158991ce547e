package nvimhost_test

import (
	"github.com/neovim/go-client/nvim"
	"github.com/stretchr/testify/mock"
)

type MockEditor struct {
	mock.Mock
}

func (m *MockEditor) BufferName(buffer nvim.Buffer) (string, error) {
	args := m.Called(buffer)
	return args.String(0), args.Error(1)
}

func (m *MockEditor) BufferLines(buffer nvim.Buffer, start, end int, strict bool) ([][]byte, error) {
	args := m.Called(buffer, start, end, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}
