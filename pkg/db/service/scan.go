package service

import (
	"sort"
	"strconv"
	"strings"

	"xmirrord/internal/log"
)

const (
	// KeyPrefix namespaces mirror hashes: xmirror:mirror:<decimal id>.
	KeyPrefix = "xmirror:mirror:"
	// ScanCount is the COUNT hint sent with every SCAN page.
	ScanCount = 100
)

func MirrorKey(id uint64) string {
	return KeyPrefix + strconv.FormatUint(id, 10)
}

// ParseMirrorKey extracts the id from a mirror key. Keys outside the
// namespace or with a non-numeric suffix are reported as not ok.
func ParseMirrorKey(key string) (uint64, bool) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(key[len(KeyPrefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// scanIds walks the keyspace with SCAN, one page at a time, until the server
// returns cursor 0. SCAN may return a key more than once, so ids are
// deduplicated before sorting.
func scanIds(backend Backend) ([]uint64, error) {
	seen := make(map[uint64]struct{})
	var cursor uint64
	pages := 0
	for {
		keys, next, err := backend.Scan(cursor, KeyPrefix+"*", ScanCount).Result()
		if err != nil {
			return nil, err
		}
		pages++
		for _, key := range keys {
			id, ok := ParseMirrorKey(key)
			if !ok {
				log.Debugf("Skipping key %q outside the mirror namespace", key)
				continue
			}
			seen[id] = struct{}{}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	ids := make([]uint64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	log.Debugf("Scanned %d mirror ids in %d pages", len(ids), pages)
	return ids, nil
}
