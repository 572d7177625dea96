package teams

import (
	"sync"

	"github.com/samber/mo"
)

// TeamIDCache memoizes the resolved team id for the lifetime of the process.
// It only guards memory access; two callers that miss at the same time will both fetch.
type TeamIDCache struct {
	mutex  sync.RWMutex
	teamID mo.Option[string]
}

func NewTeamIDCache() *TeamIDCache {
	return &TeamIDCache{teamID: mo.None[string]()}
}

func (c *TeamIDCache) Get() mo.Option[string] {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.teamID
}

func (c *TeamIDCache) Set(teamID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.teamID = mo.Some(teamID)
}

func (c *TeamIDCache) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.teamID = mo.None[string]()
}
