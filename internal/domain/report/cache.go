package report

import "github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"

// CacheKey is the report cache key for a company month
func CacheKey(companyID string, month calendar.Month) string {
	return CacheKeyPrefix(companyID) + month.Key()
}

// CacheKeyPrefix matches every cached report of a company
func CacheKeyPrefix(companyID string) string {
	return "report:" + companyID + ":"
}
