package cache

// Invalidator is the write-side view of a cache, handed to services that must
// drop derived results after they mutate source data.
type Invalidator interface {
	Invalidate(pattern string) int
}

// CompanyScope is the substring shared by every key of one company.
// Keys are built as "<namespace>:<companyID>:<suffix>".
func CompanyScope(companyID string) string {
	return ":" + companyID + ":"
}
