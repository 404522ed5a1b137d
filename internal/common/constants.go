package common

const (
	AppStorefront = "storefront"

	AudienceStorefront = "storefront"

	SessionCookieName = "storefront_session"

	// Post-login landing page when no intended URL was recorded.
	DefaultLandingPath = "/products"

	LoginPath = "/login"
	RootPath  = "/"

	NoticeInvalidCredentials = "Invalid user/password combination"
	NoticeLoggedOut          = "Logged out"
	NoticeLoginRequired      = "Please log in"
)
