package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUserRole contextKey = "user_role"
)

const (
	RoleAdmin = "admin"
)

const (
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderForwardedFor  = "X-Forwarded-For"
	RequestHeaderRealIP        = "X-Real-IP"
	ContentTypeJSON            = "application/json"
	ContentTypeXLSX            = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV             = "text/csv"
)

const (
	HeaderRateLimit          = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitWindow    = "X-RateLimit-Window"
)

const (
	ResponseErrorRequestLimitExceeded = "request limit exceeded"
	ResponseErrorPrepareShutdown      = "server is preparing to shut down"
	ResponseErrorUnhealthy            = "server is unhealthy"
)

const (
	PaymentStatusPending              = "Pending"
	PaymentStatusAwaitingVerification = "Awaiting Verification"
	PaymentStatusPaid                 = "Paid"
)

const (
	EntryStatusNotUsed = "Not Used"
	EntryStatusUsed    = "Used"
)

const (
	PassTypeEntry             = "entry"
	PassTypeEntryStarter      = "entry_starter"
	PassTypeEntryStarterLunch = "entry_starter_lunch"
)

const (
	// Group discount breakpoints: 10% from 5 passes, 15% from 8.
	GroupDiscountMinPasses      = 5
	GroupDiscountPercent        = 10
	LargeGroupDiscountMinPasses = 8
	LargeGroupDiscountPercent   = 15

	CouplePasses = 2
)

const (
	BookingDateFormat = "2006-01-02 15:04:05"
	DateFormat        = time.RFC3339
)

const (
	Empty = ""
)
