package pqueue_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpath/pqueue"
)

// QueueSuite runs the shared Queue contract against one implementation.
type QueueSuite struct {
	suite.Suite
	kind pqueue.Kind
	q    pqueue.Queue[string, float64]
}

func (s *QueueSuite) SetupTest() {
	s.q = pqueue.New[string, float64](s.kind)
}

func (s *QueueSuite) TestEmpty() {
	require := require.New(s.T())

	require.True(s.q.IsEmpty())
	require.Zero(s.q.Len())
	elem, ok := s.q.ExtractMin()
	require.False(ok)
	require.Equal("", elem)
}

func (s *QueueSuite) TestExtractInPriorityOrder() {
	require := require.New(s.T())

	s.q.Insert("C", 3)
	s.q.Insert("A", 1)
	s.q.Insert("B", 2)

	for _, want := range []string{"A", "B", "C"} {
		got, ok := s.q.ExtractMin()
		require.True(ok)
		require.Equal(want, got)
	}
	require.True(s.q.IsEmpty())
}

func (s *QueueSuite) TestAdjustPriorityChangesNext() {
	require := require.New(s.T())

	s.q.Insert("High Priority", 100)
	s.q.Insert("Medium Priority", 50)

	s.q.AdjustPriority("High Priority", 1)

	got, ok := s.q.ExtractMin()
	require.True(ok)
	require.Equal("High Priority", got)
}

func (s *QueueSuite) TestAdjustPriorityIncrease() {
	require := require.New(s.T())

	s.q.Insert("A", 1)
	s.q.Insert("B", 2)
	s.q.Insert("C", 3)

	s.q.AdjustPriority("A", 10)

	var order []string
	for !s.q.IsEmpty() {
		e, _ := s.q.ExtractMin()
		order = append(order, e)
	}
	require.Equal([]string{"B", "C", "A"}, order)
}

func (s *QueueSuite) TestAdjustPriorityAbsentIsNoop() {
	require := require.New(s.T())

	s.q.Insert("A", 1)
	s.q.AdjustPriority("Z", 0)

	require.Equal(1, s.q.Len())
	got, _ := s.q.ExtractMin()
	require.Equal("A", got)
}

func (s *QueueSuite) TestDuplicatesCoexist() {
	require := require.New(s.T())

	s.q.Insert("A", 5)
	s.q.Insert("A", 1)
	s.q.Insert("B", 3)

	require.Equal(3, s.q.Len())
	var order []string
	for !s.q.IsEmpty() {
		e, _ := s.q.ExtractMin()
		order = append(order, e)
	}
	require.Equal([]string{"A", "B", "A"}, order)
}

func (s *QueueSuite) TestSingleEntry() {
	require := require.New(s.T())

	s.q.Insert("only", 7)
	got, ok := s.q.ExtractMin()
	require.True(ok)
	require.Equal("only", got)
	require.True(s.q.IsEmpty())
}

func TestHeapQueue(t *testing.T) {
	suite.Run(t, &QueueSuite{kind: pqueue.KindHeap})
}

func TestListQueue(t *testing.T) {
	suite.Run(t, &QueueSuite{kind: pqueue.KindList})
}

// TestListTieBreaksByFirstOccurrence pins the list's documented tie rule.
func TestListTieBreaksByFirstOccurrence(t *testing.T) {
	l := pqueue.NewList[string, int]()
	l.Insert("first", 1)
	l.Insert("second", 1)
	l.Insert("third", 1)

	for _, want := range []string{"first", "second", "third"} {
		got, ok := l.ExtractMin()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

// TestHeapAndListAgree feeds both queues the same randomized operations with
// distinct priorities; with no ties the extraction sequences must match.
func TestHeapAndListAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := pqueue.NewHeap[int, int]()
	l := pqueue.NewList[int, int]()

	used := make(map[int]bool)

	for op := 0; op < 5000; op++ {
		switch rng.Intn(3) {
		case 0:
			p := rng.Intn(1 << 30)
			for used[p] {
				p = rng.Intn(1 << 30)
			}
			used[p] = true
			e := rng.Intn(50)
			h.Insert(e, p)
			l.Insert(e, p)
		case 1:
			he, hok := h.ExtractMin()
			le, lok := l.ExtractMin()
			require.Equal(t, lok, hok)
			require.Equal(t, le, he, "op %d", op)
		case 2:
			require.Equal(t, l.Len(), h.Len())
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want pqueue.Kind
		err  error
	}{
		{"heap", pqueue.KindHeap, nil},
		{" LIST ", pqueue.KindList, nil},
		{"fibonacci", 0, pqueue.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := pqueue.ParseKind(tc.in)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) pqueue.Kind {
	t.Helper()
	k, err := pqueue.ParseKind(s)
	require.NoError(t, err)

	return k
}
