package huffman

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_ExtractMinMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))

	for iteration := 0; iteration < 50; iteration++ {
		pq := NewPriorityQueue(NumSymbols)
		var held []Element
		var nextRank uint32

		for op := 0; op < 1000; op++ {
			insert := len(held) == 0 || (len(held) < pq.Cap() && rng.Intn(3) != 0)
			if insert {
				elem := Element{Key: uint64(rng.Intn(20)), Rank: nextRank}
				nextRank++
				pq.Insert(elem)
				held = append(held, elem)
				continue
			}

			sort.Slice(held, func(i, j int) bool { return held[i].less(held[j]) })
			got, err := pq.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, held[0].Key, got.Key, "iteration %d op %d", iteration, op)
			require.Equal(t, held[0].Rank, got.Rank, "iteration %d op %d", iteration, op)
			held = held[1:]
			require.Equal(t, len(held), pq.Len())
		}
	}
}

func TestPriorityQueue_Underflow(t *testing.T) {
	pq := NewPriorityQueue(2)
	_, err := pq.ExtractMin()
	require.ErrorIs(t, err, ErrQueueUnderflow)

	pq.Insert(Element{Key: 7})
	elem, err := pq.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, uint64(7), elem.Key)

	_, err = pq.ExtractMin()
	require.ErrorIs(t, err, ErrQueueUnderflow)
}

func TestPriorityQueue_Overflow(t *testing.T) {
	pq := NewPriorityQueue(1)
	pq.Insert(Element{Key: 1})
	require.Panics(t, func() { pq.Insert(Element{Key: 2}) })
}

func TestPriorityQueue_EqualKeysByRank(t *testing.T) {
	pq := NewPriorityQueue(4)
	pq.Insert(Element{Key: 3, Rank: 9})
	pq.Insert(Element{Key: 3, Rank: 2})
	pq.Insert(Element{Key: 3, Rank: 5})

	var ranks []uint32
	for pq.Len() > 0 {
		elem, err := pq.ExtractMin()
		require.NoError(t, err)
		ranks = append(ranks, elem.Rank)
	}
	require.Equal(t, []uint32{2, 5, 9}, ranks)
}

func TestPriorityQueue_Dump(t *testing.T) {
	pq := NewPriorityQueue(4)
	pq.Insert(Element{Key: 5, Rank: 0})
	pq.Insert(Element{Key: 3, Rank: 1})
	pq.Insert(Element{Key: 4, Rank: 2})

	expectDump := strings.Join([]string{
		"PriorityQueue{Len() = 3, Cap() = 4}\n",
		"\t<3:1>\n",
		"\t<5:0> <4:2>\n",
	}, "")

	var buf strings.Builder
	_, _ = pq.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
