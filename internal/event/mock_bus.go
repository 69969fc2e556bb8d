package event

import "github.com/stretchr/testify/mock"

type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(e Event) {
	m.Called(e)
}

func (m *MockBus) Subscribe() (<-chan Event, func()) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Get(1).(func())
	}
	return args.Get(0).(<-chan Event), args.Get(1).(func())
}

// OfType matches a published event by type, for use with On("Publish", ...).
func OfType(t Type) any {
	return mock.MatchedBy(func(e Event) bool { return e.Type == t })
}
