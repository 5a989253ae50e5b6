package report

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPrependIsNewestFirst(t *testing.T) {
	h := NewHistory(0)

	h.Prepend(HistoryItem{ID: "a", CreatedAt: time.Now()})
	h.Prepend(HistoryItem{ID: "b", CreatedAt: time.Now()})
	h.Prepend(HistoryItem{ID: "c", CreatedAt: time.Now()})

	items := h.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "a", items[2].ID)
}

func TestHistoryAllowsDuplicates(t *testing.T) {
	h := NewHistory(0)
	item := HistoryItem{ID: "same", Title: "CSRレポート"}

	h.Prepend(item)
	h.Prepend(item)

	assert.Equal(t, 2, h.Len())
}

func TestHistoryCapDropsOldest(t *testing.T) {
	h := NewHistory(2)

	h.Prepend(HistoryItem{ID: "a"})
	h.Prepend(HistoryItem{ID: "b"})
	h.Prepend(HistoryItem{ID: "c"})

	items := h.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestHistoryItemsReturnsCopy(t *testing.T) {
	h := NewHistory(0)
	h.Prepend(HistoryItem{ID: "a"})

	items := h.Items()
	items[0].ID = "mutated"

	assert.Equal(t, "a", h.Items()[0].ID)
}

func TestHistoryConcurrentPrepend(t *testing.T) {
	h := NewHistory(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h.Prepend(HistoryItem{ID: strconv.Itoa(n)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, h.Len())
}
