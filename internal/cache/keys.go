package cache

// AvailabilityKey is the cache key for the computed free times of a date
// (date in YYYY-MM-DD form). Every mutation touching that date must Del it.
func AvailabilityKey(date string) string {
	return "available:" + date
}
