package interner

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// numShards is the shard count for the interning map, a power of two so
// shard selection is a cheap mask. Chosen generously relative to typical
// GOMAXPROCS so parallel search workers rarely collide on the same shard.
const numShards = 64

type shard struct {
	mu      sync.RWMutex
	byKey   map[string]Handle
	records []Record
}

func newShard() *shard {
	return &shard{byKey: make(map[string]Handle)}
}

// Store is the process-wide value interner plus its secondary operation
// caches (Add/Neg/Leq), all independently sharded.
type Store struct {
	shards [numShards]*shard

	addCache *pairCache
	negCache *unaryCache
	leqCache *pairBoolCache
}

// NewStore constructs an empty Store. The zero value is not usable;
// always go through NewStore (mirrors core.NewGraph's constructor
// convention of never relying on Go's zero value for shared state).
func NewStore() *Store {
	s := &Store{
		addCache: newPairCache(),
		negCache: newUnaryCache(),
		leqCache: newPairBoolCache(),
	}
	for i := range s.shards {
		s.shards[i] = newShard()
	}
	return s
}

// shardFor returns the shard index for a canonical key string.
func shardFor(key string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return h.Sum32() % numShards
}

// Intern canonicalizes rec's option order (sets, not sequences — order
// must not affect identity) and returns its Handle, creating a new
// Record only if no equal one exists yet. Concurrent Intern calls on an
// equal Record resolve to a single winning Handle; losers' Records are
// discarded.
func (s *Store) Intern(rec Record) Handle {
	rec.Left = sortedCopy(rec.Left)
	rec.Right = sortedCopy(rec.Right)
	key := canonicalKey(rec)
	idx := shardFor(key)
	sh := s.shards[idx]

	sh.mu.RLock()
	if h, ok := sh.byKey[key]; ok {
		sh.mu.RUnlock()
		return h
	}
	sh.mu.RUnlock()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if h, ok := sh.byKey[key]; ok {
		// Lost the race: another goroutine interned an equal Record
		// between our RUnlock and this Lock. Discard rec, return theirs.
		glog.V(2).Infof("interner: shard %d lost insert race for key %q", idx, key)
		return h
	}
	local := uint32(len(sh.records))
	sh.records = append(sh.records, rec)
	h := handleOf(idx, local)
	sh.byKey[key] = h
	return h
}

// Lookup returns the Record for h. h must have been returned by Intern on
// this Store. Lookup on the zero Handle panics, as does a foreign Handle
// whose index is out of range; a foreign Handle whose index is in range
// returns whatever Record this Store holds at that index.
func (s *Store) Lookup(h Handle) Record {
	if h == Nil {
		panic("interner: Lookup(Nil)")
	}
	sh := s.shards[h.shard()]
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.records[h.index()]
}

func sortedCopy(hs []Handle) []Handle {
	if len(hs) == 0 {
		return nil
	}
	out := make([]Handle, len(hs))
	copy(out, hs)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// canonicalKey renders rec into a string unique to its (kind, numeric
// parts, option-handle sets) — independent of the order options were
// supplied in, since Left/Right are sets.
func canonicalKey(rec Record) string {
	var b strings.Builder
	b.WriteByte(byte(rec.Kind))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(rec.Num.Num(), 10))
	b.WriteByte('/')
	b.WriteString(strconv.FormatUint(uint64(rec.Num.Exp()), 10))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(rec.Nim.Int()))
	b.WriteByte('|')
	writeHandles(&b, rec.Left)
	b.WriteByte('|')
	writeHandles(&b, rec.Right)
	return b.String()
}

func writeHandles(b *strings.Builder, hs []Handle) {
	for i, h := range hs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(h), 10))
	}
}
