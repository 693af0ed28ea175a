package jobs

import (
	"log"

	"biolink.GO/core/cache"
)

// CachePruneJob drops expired catalog cache entries. Scheduled via
// config.CronJobs; expired entries are otherwise only evicted lazily.
func CachePruneJob(args ...string) {
	pruned := cache.GetInstance().PruneExpired()
	if pruned > 0 {
		log.Printf("cron: pruned %d expired cache entries", pruned)
	}
}
