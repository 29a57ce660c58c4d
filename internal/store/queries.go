package store

// Web cache queries.
const (
	queryGetCacheEntry = `SELECT data FROM web_cache WHERE key = $1`

	queryPutCacheEntry = `INSERT INTO web_cache (key, data, updated_at)
VALUES (@key, @data, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
)
