package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the landing page.
	RouteRoot = "/"
	// RoutePortfolio is the filterable photo listing.
	RoutePortfolio = "/portfolio"
	// RouteServices is the static services page.
	RouteServices = "/services"
	// RouteAbout is the static about page.
	RouteAbout = "/about"
	// RouteContact is the static contact page.
	RouteContact = "/contact"
	// RouteOrder is the booking form and submission route.
	RouteOrder = "/order"
	// RouteRegister is the account creation route.
	RouteRegister = "/register"
	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteHealthz is the liveness check.
	RouteHealthz = "/healthz"

	// RouteAdmin is the admin dashboard.
	RouteAdmin = "/admin"
	// RouteAdminOrders is the admin order listing.
	RouteAdminOrders = "/orders"
	// RouteAdminPhotos is the admin photo listing.
	RouteAdminPhotos = "/photos"
	// RouteAdminOrderStatus is the order status update route.
	RouteAdminOrderStatus = "/order/{id}/status"
)

const (
	redirectRoot        = RouteRoot
	redirectOrder       = RouteOrder
	redirectRegister    = RouteRegister
	redirectLogin       = RouteLogin
	redirectAdmin       = RouteAdmin
	redirectAdminOrders = RouteAdmin + RouteAdminOrders
)
