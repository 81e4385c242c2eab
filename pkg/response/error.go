package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound      = "Movie not found"
	FeaturedLoadFailed = "Could not load movie details."
	UserNotFound       = "Cannot find user"
	PageNotFound       = "Page not found"
	InvalidRating      = "Rating must be a number between 1 and 5"
	InvalidCatalogId   = "Invalid catalog movie id"
	//----------------------
	InvalidCredentials = "Login credentials not correct"
	//----------------------
	EmailAlreadyExist = "This email already exists"
	InvalidEmail      = "Invalid email address"
	//----------------------
	UserRegistered   = "User registered successfully"
	ProfileUpdated   = "Profile updated successfully!"
	AddedToWatchlist = "'%s' added to your watchlist!"
	//----------------------
)

// Flash categories, rendered as css classes.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)
