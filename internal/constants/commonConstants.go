package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSession CachePrefix = "SESSION_"
	CacheKeySnapshot   CachePrefix = "DIRECTORY_SNAPSHOT"
)

const (
	// UpcomingEventWindow is how far ahead the notification feed looks
	// for events worth telling a student about.
	UpcomingEventWindow = 3 * 24 * time.Hour
)
