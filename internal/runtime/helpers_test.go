package runtime_test

import (
	"errors"
	"strings"

	"github.com/stretchr/testify/mock"
)

// letterAdapter is a string adapter that counts clones and releases and
// records everything it prints. Words ending in "!" are terminal.
type letterAdapter struct {
	printed  []string
	clones   int
	releases int
}

func (a *letterAdapter) Clone(data string) (string, error) {
	a.clones++
	return strings.Clone(data), nil
}

func (a *letterAdapter) Compare(x, y string) int { return strings.Compare(x, y) }

func (a *letterAdapter) Print(data string) { a.printed = append(a.printed, data) }

func (a *letterAdapter) Release(string) { a.releases++ }

func (a *letterAdapter) IsTerminal(data string) bool { return strings.HasSuffix(data, "!") }

// hashedLetterAdapter adds a (deliberately weak) hash so buckets collide.
type hashedLetterAdapter struct {
	letterAdapter
}

func (a *hashedLetterAdapter) Hash(data string) uint64 { return uint64(len(data)) }

// scriptedSource replays fixed draws, wrapping around when exhausted.
type scriptedSource struct {
	draws []int
	pos   int
	seen  []int
}

func (s *scriptedSource) IntN(n int) int {
	s.seen = append(s.seen, n)
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	return v % n
}

// MockAdapter is a testify mock of ports.Adapter[string].
type MockAdapter struct {
	mock.Mock
}

func (m *MockAdapter) Clone(data string) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockAdapter) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (m *MockAdapter) Print(data string) {
	m.Called(data)
}

func (m *MockAdapter) Release(data string) {
	m.Called(data)
}

func (m *MockAdapter) IsTerminal(data string) bool {
	return strings.HasSuffix(data, "!")
}

var errOutOfMemory = errors.New("out of memory")
