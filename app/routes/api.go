// Package routes wires the HTTP surface: controllers, auth gates and the
// websocket endpoint.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/shallerhub/app/controllers"
	"github.com/shashiranjanraj/shallerhub/app/jobs"
	"github.com/shashiranjanraj/shallerhub/app/repositories"
	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/middleware"
	"github.com/shashiranjanraj/shallerhub/pkg/rbac"
	"github.com/shashiranjanraj/shallerhub/pkg/router"
	"github.com/shashiranjanraj/shallerhub/pkg/storage"
	"github.com/shashiranjanraj/shallerhub/pkg/ws"
)

// LocationHub streams user live-location updates to connected clients.
var LocationHub = ws.NewHub()

// Services builds the full service graph against the Mongo repositories.
func Services() (*services.AdminService, *services.VendorService, *services.UserService, *services.CatalogService, *services.FeedService) {
	adminRepo := repositories.NewAdminRepository()
	vendorRepo := repositories.NewVendorRepository()
	userRepo := repositories.NewUserRepository()
	catalogRepo := repositories.NewCatalogRepository()

	return services.NewAdminService(adminRepo, vendorRepo),
		services.NewVendorService(vendorRepo),
		services.NewUserService(userRepo, jobs.QueueOTPNotifier{}),
		services.NewCatalogService(catalogRepo, storage.Default()),
		services.NewFeedService(vendorRepo)
}

// RegisterAPI mounts every endpoint under /api plus the websocket and
// metrics handlers.
func RegisterAPI(r *router.Router) {
	adminSvc, vendorSvc, userSvc, catalogSvc, feedSvc := Services()

	adminController := controllers.NewAdminController(adminSvc)
	vendorController := controllers.NewVendorController(vendorSvc)
	userController := controllers.NewUserController(userSvc)
	catalogController := controllers.NewCatalogController(catalogSvc)
	feedController := controllers.NewFeedController(feedSvc)

	api := r.Group("/api")

	// Public.
	api.Post("/admin/login", "admin.login", adminController.Login)
	api.Post("/vendor/login", "vendor.login", vendorController.Login)
	api.Post("/user/send-otp", "user.send-otp", userController.SendOTP)
	api.Post("/user/verify-otp", "user.verify-otp", userController.VerifyOTP)
	api.Get("/feed/shops", "feed.shops", feedController.Shops)
	api.Get("/categories", "categories.index", catalogController.Categories)
	api.Get("/categories/{id}", "categories.show", catalogController.Category)
	api.Get("/subcategories/{id}/items", "items.index", catalogController.Items)

	// Admin-only.
	admin := api.Group("/admin", middleware.AuthMiddleware, rbac.HasRole("admin"))
	admin.Get("/vendors", "admin.vendors.index", adminController.Vendors)
	admin.Post("/vendors", "admin.vendors.create", adminController.CreateVendor)
	admin.Get("/vendors/{id}", "admin.vendors.show", adminController.Vendor)
	admin.Delete("/vendors/{id}", "admin.vendors.delete", adminController.DeleteVendor)
	admin.Put("/vendors/{id}/review", "admin.vendors.review", adminController.ReviewShop)
	admin.Get("/users", "admin.users.index", userController.Users)
	admin.Get("/users/{id}", "admin.users.show", userController.User)

	// Catalog writes are admin-only as well.
	catalog := api.Group("", middleware.AuthMiddleware, rbac.HasRole("admin"))
	catalog.Post("/categories", "categories.create", catalogController.CreateCategory)
	catalog.Put("/categories/{id}", "categories.update", catalogController.UpdateCategory)
	catalog.Delete("/categories/{id}", "categories.delete", catalogController.DeleteCategory)
	catalog.Post("/categories/{id}/subcategories", "subcategories.create", catalogController.AddSubCategory)
	catalog.Put("/subcategories/{id}", "subcategories.update", catalogController.UpdateSubCategory)
	catalog.Delete("/subcategories/{id}", "subcategories.delete", catalogController.DeleteSubCategory)
	catalog.Post("/subcategories/{id}/items", "items.create", catalogController.CreateItem)
	catalog.Put("/items/{id}", "items.update", catalogController.UpdateItem)
	catalog.Delete("/items/{id}", "items.delete", catalogController.DeleteItem)

	// Vendor-only.
	vendor := api.Group("/vendor", middleware.AuthMiddleware, rbac.HasRole("vendor"))
	vendor.Get("/profile", "vendor.profile", vendorController.Profile)
	vendor.Post("/shaller", "vendor.shaller.create", vendorController.CreateShop)
	vendor.Put("/shaller", "vendor.shaller.update", vendorController.UpdateShop)
	vendor.Put("/shaller/status", "vendor.shaller.status", vendorController.SetWorkingStatus)

	// User-only.
	user := api.Group("/user", middleware.AuthMiddleware, rbac.HasRole("user"))
	user.Get("/profile", "user.profile", userController.Profile)
	user.Put("/personal-info", "user.personal-info", userController.UpdatePersonalInfo)
	user.Put("/location", "user.location", userController.UpdateLocation)
	user.Get("/addresses", "user.addresses.index", userController.Addresses)
	user.Post("/addresses", "user.addresses.create", userController.AddAddress)
	user.Put("/addresses/{id}", "user.addresses.update", userController.UpdateAddress)
	user.Delete("/addresses/{id}", "user.addresses.delete", userController.DeleteAddress)

	// Live location stream.
	r.Get("/ws/location", "ws.location", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, LocationHub)
	})
}
