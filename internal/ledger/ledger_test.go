package ledger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test GetState / PutState round trips
func TestMemoryLedger_GetPutState(t *testing.T) {
	t.Parallel()

	l := NewMemoryLedger()
	require.NoError(t, l.PutState("member1", []byte(`{"balance":5000}`)))

	// Table-driven test cases
	tests := []struct {
		name      string
		key       string
		wantValue []byte
		wantError bool
	}{
		{name: "existing_key", key: "member1", wantValue: []byte(`{"balance":5000}`), wantError: false},
		{name: "missing_key", key: "memberX", wantValue: nil, wantError: true},
		{name: "empty_key", key: "", wantValue: nil, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			value, err := l.GetState(tc.key)
			if tc.wantError {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrKeyNotFound)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantValue, value)
			}
		})
	}
}

func TestMemoryLedger_PutState_RejectsBadWrites(t *testing.T) {
	t.Parallel()

	l := NewMemoryLedger()

	require.Error(t, l.PutState("", []byte(`{}`)))
	require.Error(t, l.PutState("key1", nil))
	require.Error(t, l.PutState("key1", []byte{}))

	_, err := l.GetState("key1")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

// Returned slices must be copies; mutating them must not corrupt stored state.
func TestMemoryLedger_GetState_ReturnsCopy(t *testing.T) {
	t.Parallel()

	l := NewMemoryLedger()
	require.NoError(t, l.PutState("vehicle1", []byte(`{"owner":"memberA"}`)))

	value, err := l.GetState("vehicle1")
	require.NoError(t, err)
	value[0] = 'X'

	again, err := l.GetState("vehicle1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"owner":"memberA"}`), again)
}

// Test PutBatch atomicity
func TestMemoryLedger_PutBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		writes    []Write
		wantError bool
	}{
		{
			name: "all_valid",
			writes: []Write{
				{Key: "a", Value: []byte(`1`)},
				{Key: "b", Value: []byte(`2`)},
				{Key: "c", Value: []byte(`3`)},
			},
			wantError: false,
		},
		{
			name: "one_bad_write_rejects_all",
			writes: []Write{
				{Key: "a", Value: []byte(`1`)},
				{Key: "", Value: []byte(`2`)},
			},
			wantError: true,
		},
		{
			name: "empty_value_rejects_all",
			writes: []Write{
				{Key: "a", Value: []byte(`1`)},
				{Key: "b", Value: nil},
			},
			wantError: true,
		},
		{name: "empty_batch", writes: nil, wantError: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := NewMemoryLedger()
			err := l.PutBatch(tc.writes)
			if tc.wantError {
				require.Error(t, err)
				// nothing from the batch may have landed
				for _, w := range tc.writes {
					if w.Key == "" {
						continue
					}
					_, getErr := l.GetState(w.Key)
					require.ErrorIs(t, getErr, ErrKeyNotFound)
				}
			} else {
				require.NoError(t, err)
				for _, w := range tc.writes {
					value, getErr := l.GetState(w.Key)
					require.NoError(t, getErr)
					require.Equal(t, w.Value, value)
				}
			}
		})
	}
}

func TestMemoryLedger_PutBatch_OverwritesExisting(t *testing.T) {
	t.Parallel()

	l := NewMemoryLedger()
	require.NoError(t, l.PutState("listing1", []byte(`{"listingState":"FOR_SALE"}`)))

	require.NoError(t, l.PutBatch([]Write{
		{Key: "listing1", Value: []byte(`{"listingState":"SOLD"}`)},
		{Key: "vehicle1", Value: []byte(`{"owner":"memberB"}`)},
	}))

	value, err := l.GetState("listing1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"listingState":"SOLD"}`), value)
}

// Concurrent readers and writers must not race or lose writes.
func TestMemoryLedger_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	l := NewMemoryLedger()
	var wg sync.WaitGroup
	writerCount := 50

	for i := 0; i < writerCount; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key_%d", n)
			require.NoError(t, l.PutState(key, []byte(fmt.Sprintf(`{"n":%d}`, n))))
			_, err := l.GetState(key)
			require.NoError(t, err)
		}(i)
	}

	wg.Wait()

	for i := 0; i < writerCount; i++ {
		value, err := l.GetState(fmt.Sprintf("key_%d", i))
		require.NoError(t, err)
		require.Equal(t, []byte(fmt.Sprintf(`{"n":%d}`, i)), value)
	}
}
