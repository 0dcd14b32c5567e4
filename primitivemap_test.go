package primitivemap

import (
	"bytes"
	stderrors "errors"
	"maps"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/primitivemap/bucket"
	"github.com/indigo-web/primitivemap/bucketlist"
	"github.com/indigo-web/primitivemap/config"
	"github.com/indigo-web/primitivemap/errors"
	"github.com/indigo-web/primitivemap/hasher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("vec", func(t *testing.T) {
		m := DefaultVec[int, int]()
		require.NoError(t, m.Insert(1, 1))
		testKey(t, m.Get, 1, 1, true)
		require.Equal(t, config.Default().Buckets.Count, m.Buckets())
	})

	t.Run("linear probing", func(t *testing.T) {
		m := WithLinearProbing[int, int](new(bucketlist.Array64[bucket.Slot[int, int]]))
		require.NoError(t, m.Insert(1, 1))
		testKey(t, m.Get, 1, 1, true)
		require.Equal(t, 64, m.Buckets())
	})

	t.Run("custom", func(t *testing.T) {
		buckets := bucketlist.NewDynamic[bucket.Slot[int, int]](1000)
		m := Custom[int, int, bucket.Slot[int, int], *bucket.Slot[int, int]](buckets, hasher.Integer[int]{})
		require.NoError(t, m.Insert(1, 1))
		testKey(t, m.Get, 1, 1, true)
		require.Equal(t, 1000, m.Buckets())
	})

	t.Run("caller-owned array", func(t *testing.T) {
		var buckets bucketlist.Array16[bucket.Slot[string, int]]
		m := WithLinearProbing[string, int](&buckets)
		require.NoError(t, m.Insert("hello", 5))
		testKey(t, m.Get, "hello", 5, true)

		occupied := 0
		for i := range buckets {
			occupied += buckets[i].Len()
		}
		require.Equal(t, 1, occupied)
	})

	t.Run("pre-filled buckets", func(t *testing.T) {
		buckets := bucketlist.NewDynamic[bucket.Vec[string, int]](1)
		buckets[0].Insert("a", 1)

		require.PanicsWithError(t, "primitivemap: custom: "+errors.ErrBucketsNotEmpty.Error(), func() {
			WithBuckets[string, int, bucket.Vec[string, int], *bucket.Vec[string, int]](buckets)
		})
	})

	t.Run("chained with non-positive sizes", func(t *testing.T) {
		for _, count := range []int{0, -1} {
			cfg := config.Default()
			cfg.Buckets.Count = count
			cfg.Buckets.Prealloc = -1

			m := NewChained[string, int](cfg)
			require.Equal(t, config.Default().Buckets.Count, m.Buckets())
			require.NoError(t, m.Insert("hello", 1))
			testKey(t, m.Get, "hello", 1, true)
		}
	})

	t.Run("no buckets", func(t *testing.T) {
		require.Panics(t, func() {
			WithLinearProbing[int, int](bucketlist.Dynamic[bucket.Slot[int, int]]{})
		})
	})
}

func TestGetEmpty(t *testing.T) {
	t.Run("dynamic", func(t *testing.T) {
		m := DefaultVec[uint32, uint32]()
		for i := range uint32(1000) {
			testKey(t, m.Get, i, 0, false)
			require.Nil(t, m.Ref(i))
			require.False(t, m.Has(i))
		}
		require.Zero(t, m.Len())
	})

	t.Run("fixed", func(t *testing.T) {
		m := NewLinear64[uint32, uint32]()
		for i := range uint32(1000) {
			testKey(t, m.Get, i, 0, false)
		}
		require.Zero(t, m.Len())
	})
}

func TestInsertAndGet(t *testing.T) {
	t.Run("dynamic", func(t *testing.T) {
		m := DefaultVec[int8, uint32]()
		require.NoError(t, m.Insert(0, 10))
		testKey(t, m.Get, 0, 10, true)
		testKey(t, m.Get, 1, 0, false)
	})

	t.Run("fixed", func(t *testing.T) {
		m := NewLinear64[int16, uint32]()
		require.NoError(t, m.Insert(0, 10))
		testKey(t, m.Get, 0, 10, true)
		testKey(t, m.Get, 1, 0, false)
	})

	t.Run("struct keys", func(t *testing.T) {
		type point struct{ x, y int }

		m := NewVec[point, string](4)
		require.NoError(t, m.Insert(point{1, 2}, "a"))
		require.NoError(t, m.Insert(point{2, 1}, "b"))
		testKey(t, m.Get, point{1, 2}, "a", true)
		testKey(t, m.Get, point{2, 1}, "b", true)
		testKey(t, m.Get, point{1, 1}, "", false)
	})
}

func TestOverwrite(t *testing.T) {
	t.Run("dynamic", func(t *testing.T) {
		m := NewVec[string, int](1)
		require.NoError(t, m.Insert("hello", 1))
		require.NoError(t, m.Insert("world", 2))

		old, loaded, err := m.Swap("hello", 3)
		require.NoError(t, err)
		require.True(t, loaded)
		require.Equal(t, 1, old)

		testKey(t, m.Get, "hello", 3, true)
		testKey(t, m.Get, "world", 2, true)
		require.Equal(t, 2, m.Len())
		require.Equal(t, map[string]int{"hello": 3, "world": 2}, maps.Collect(m.All()))
	})

	t.Run("fixed", func(t *testing.T) {
		m := NewLinear64[int, int]()
		for i := range 10 {
			require.NoError(t, m.Insert(i, i))
		}
		for i := range 10 {
			require.NoError(t, m.Insert(i, -i))
		}

		require.Equal(t, 10, m.Len())
		for i := range 10 {
			testKey(t, m.Get, i, -i, true)
		}
	})

	t.Run("new key", func(t *testing.T) {
		m := DefaultVec[string, int]()
		old, loaded, err := m.Swap("hello", 1)
		require.NoError(t, err)
		require.False(t, loaded)
		require.Zero(t, old)
	})
}

func TestRef(t *testing.T) {
	test := func(t *testing.T, insert func(string, int) error, get func(string) (int, bool), ref func(string) *int) {
		require.NoError(t, insert("counter", 0))
		for range 10 {
			*ref("counter")++
		}

		testKey(t, get, "counter", 10, true)
		require.Nil(t, ref("nothing"))
	}

	t.Run("dynamic", func(t *testing.T) {
		m := DefaultVec[string, int]()
		test(t, m.Insert, m.Get, m.Ref)
	})

	t.Run("fixed", func(t *testing.T) {
		m := NewLinear64[string, int]()
		test(t, m.Insert, m.Get, m.Ref)
	})
}

func TestSaturation(t *testing.T) {
	t.Run("dynamic", func(t *testing.T) {
		m := NewVec[int, int](100)
		for i := range 10000 {
			require.NoError(t, m.Insert(i, i))
		}

		require.Equal(t, 10000, m.Len())
		for i := range 10000 {
			testKey(t, m.Get, i, i, true)
		}
	})

	t.Run("chained", func(t *testing.T) {
		cfg := config.Default()
		cfg.Buckets.Count = 10
		m := NewChained[string, string](cfg)

		keys := make([]string, 1000)
		for i := range keys {
			keys[i] = uniuri.NewLen(24)
			require.NoError(t, m.Insert(keys[i], keys[i]+"!"))
		}

		for _, key := range keys {
			testKey(t, m.Get, key, key+"!", true)
		}
	})

	t.Run("array", func(t *testing.T) {
		m := NewArray64[int, int]()
		for i := range 1000 {
			require.NoError(t, m.Insert(i, i*2))
		}

		for i := range 1000 {
			testKey(t, m.Get, i, i*2, true)
		}
	})

	t.Run("linear probing full load", func(t *testing.T) {
		m := NewLinear1024[int, int]()
		for i := range 1024 {
			require.NoError(t, m.Insert(i, i))
		}

		require.Equal(t, 1024, m.Len())
		for i := range 1024 {
			testKey(t, m.Get, i, i, true)
		}
	})
}

func TestCapacityExhaustion(t *testing.T) {
	m := NewLinear64[int, int]()
	for i := range 64 {
		require.NoError(t, m.Insert(i, i))
	}
	for i := range 64 {
		testKey(t, m.Get, i, i, true)
	}

	err := m.Insert(64, 64)
	require.ErrorIs(t, err, errors.ErrCapacityExhausted)
	require.True(t, stderrors.Is(err, errors.ErrCapacityExhausted))

	_, _, err = m.Swap(65, 65)
	require.ErrorIs(t, err, errors.ErrCapacityExhausted)

	t.Run("existing entries are intact", func(t *testing.T) {
		require.Equal(t, 64, m.Len())
		for i := range 64 {
			testKey(t, m.Get, i, i, true)
		}
		testKey(t, m.Get, 64, 0, false)
	})

	t.Run("overwriting is still possible", func(t *testing.T) {
		for i := range 64 {
			require.NoError(t, m.Insert(i, i+1))
		}
		for i := range 64 {
			testKey(t, m.Get, i, i+1, true)
		}
	})

	t.Run("runtime-sized list", func(t *testing.T) {
		m := WithLinearProbing[int, int](bucketlist.NewFixed[bucket.Slot[int, int]](3))
		require.NoError(t, m.Insert(1, 1))
		require.NoError(t, m.Insert(2, 2))
		require.NoError(t, m.Insert(3, 3))
		require.ErrorIs(t, m.Insert(4, 4), errors.ErrCapacityExhausted)
	})

	t.Run("logged", func(t *testing.T) {
		var out bytes.Buffer
		cfg := config.Default()
		cfg.Log.Logger = zerolog.New(&out).Level(zerolog.WarnLevel)

		m := WithLinearProbing[string, int](new(bucketlist.Array16[bucket.Slot[string, int]])).Tune(cfg)
		for range 16 {
			require.NoError(t, m.Insert(uniuri.New(), 0))
		}
		require.Empty(t, out.String())

		require.ErrorIs(t, m.Insert("one too many", 0), errors.ErrCapacityExhausted)
		require.Contains(t, out.String(), `"level":"warn"`)
		require.Contains(t, out.String(), `"key":"one too many"`)
		require.Contains(t, out.String(), `"buckets":16`)
	})
}

// collider sends every key into the same bucket.
type collider[K comparable] struct {
	hasher.Modulo
}

func (collider[K]) Hash(K) uint64 {
	return 0
}

func TestCollisions(t *testing.T) {
	t.Run("chaining", func(t *testing.T) {
		buckets := bucketlist.NewDynamic[bucket.Small[int, int]](8)
		m := Custom[int, int, bucket.Small[int, int], *bucket.Small[int, int]](buckets, collider[int]{})
		for i := range 100 {
			require.NoError(t, m.Insert(i, i))
		}

		require.Equal(t, 100, buckets[0].Len())
		require.True(t, buckets[0].Spilled())
		for i := 1; i < len(buckets); i++ {
			require.Zero(t, buckets[i].Len())
		}
		for i := range 100 {
			testKey(t, m.Get, i, i, true)
		}
	})

	t.Run("linear probing", func(t *testing.T) {
		var buckets bucketlist.Array16[bucket.Slot[int, int]]
		m := Custom[int, int, bucket.Slot[int, int], *bucket.Slot[int, int]](&buckets, collider[int]{})
		for i := range 16 {
			require.NoError(t, m.Insert(i, i))
		}

		// every key landed at the first free slot after the address
		for i := range 16 {
			value, found := buckets[i].Get(i)
			require.True(t, found)
			require.Equal(t, i, value)
		}

		// the same key must be found in its own slot rather than duplicated into a free one
		require.NoError(t, m.Insert(5, 55))
		testKey(t, m.Get, 5, 55, true)
		require.Equal(t, 16, m.Len())
	})

	t.Run("pair away from its address", func(t *testing.T) {
		// collider addresses every key to 0, so slot 3 is away from the search sequence start
		var buckets bucketlist.Array16[bucket.Slot[int, int]]
		buckets[3].Insert(5, 1)

		require.Panics(t, func() {
			Custom[int, int, bucket.Slot[int, int], *bucket.Slot[int, int]](&buckets, collider[int]{})
		})

		// once emptied, the same storage is accepted and the key lands at its address
		buckets[3] = bucket.Slot[int, int]{}
		m := Custom[int, int, bucket.Slot[int, int], *bucket.Slot[int, int]](&buckets, collider[int]{})
		require.NoError(t, m.Insert(5, 1))
		require.NoError(t, m.Insert(5, 2))
		require.Equal(t, 1, m.Len())
		require.Equal(t, map[int]int{5: 2}, maps.Collect(m.All()))

		value, found := buckets[0].Get(5)
		require.True(t, found)
		require.Equal(t, 2, value)
	})
}

func TestAll(t *testing.T) {
	m := NewVec[string, int](3)
	want := make(map[string]int)
	for i := range 50 {
		key := uniuri.NewLen(8)
		want[key] = i
		require.NoError(t, m.Insert(key, i))
	}

	require.Equal(t, want, maps.Collect(m.All()))

	t.Run("break", func(t *testing.T) {
		count := 0
		for range m.All() {
			count++
			if count == 5 {
				break
			}
		}
		require.Equal(t, 5, count)
	})
}

func TestMarshalJSON(t *testing.T) {
	m := NewLinear64[string, int]()
	require.NoError(t, m.Insert("b", 2))
	require.NoError(t, m.Insert("a", 1))

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1,"b":2}`, string(data))

	empty, err := DefaultVec[int, int]().MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "{}", string(empty))
}

func testKey[K comparable, V any](t *testing.T, get func(K) (V, bool), key K, wantedValue V, wantedFound bool) {
	value, found := get(key)
	require.Equal(t, wantedFound, found)
	require.Equal(t, wantedValue, value)
}
