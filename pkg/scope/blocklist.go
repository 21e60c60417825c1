package scope

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const blocklistSize = 10000

// Blocklist remembers revoked token ids for one token lifetime.
type Blocklist struct {
	ids *expirable.LRU[string, struct{}]
}

// NewBlocklist keeps entries for ttl. Under pressure the oldest entries are
// evicted first.
func NewBlocklist(ttl time.Duration) *Blocklist {
	return &Blocklist{
		ids: expirable.NewLRU[string, struct{}](blocklistSize, nil, ttl),
	}
}

func (b *Blocklist) Add(id string) {
	b.ids.Add(id, struct{}{})
}

func (b *Blocklist) Contains(id string) bool {
	return b.ids.Contains(id)
}
