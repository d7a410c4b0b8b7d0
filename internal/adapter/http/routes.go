package http

import (
	"github.com/labstack/echo/v4"

	mw "ashgrove-backend/internal/adapter/middleware"
	"ashgrove-backend/internal/config"
	"ashgrove-backend/internal/domain/user"
)

// Handlers bundles everything RegisterRoutes needs.
type Handlers struct {
	Auth        *AuthHandler
	Submissions *SubmissionHandler
	AdminSubs   *AdminSubmissionsHandler
	Content     *ContentHandler
	Uploads     *UploadHandler
	Verifier    mw.TokenVerifier
	Store       mw.CounterStore
	RateLimits  config.RateLimitConfig
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.Validator = NewValidator()

	e.GET("/health", Health)

	// Public site.
	e.GET("/pages/:slug", h.Content.GetPublishedPage)
	e.GET("/gallery", h.Content.ListPublishedGallery)
	e.GET("/faqs", h.Content.ListPublishedFAQs)
	e.GET("/redirects", h.Content.ListRedirects)

	e.POST("/submissions/enquiry", h.Submissions.Create,
		mw.RateLimit(h.Store, h.RateLimits.SubmissionLimit, h.RateLimits.SubmissionWindow, "enquiries"))

	// Session endpoints sit outside the token guard but inside the
	// general limiter so login cannot be brute forced freely.
	generalLimit := mw.RateLimit(h.Store, h.RateLimits.GeneralLimit, h.RateLimits.GeneralWindow, "admin")
	authGroup := e.Group("/admin/auth", generalLimit)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/logout", h.Auth.Logout)

	admin := e.Group("/admin", generalLimit, mw.JWTAuth(h.Verifier))

	manageContent := mw.RequirePermission(user.PermManageContent)

	pages := admin.Group("/pages", manageContent)
	pages.GET("", h.Content.ListPages)
	pages.POST("", h.Content.CreatePage)
	pages.GET("/:id", h.Content.GetPage)
	pages.PUT("/:id", h.Content.UpdatePage)
	pages.DELETE("/:id", h.Content.DeletePage)

	gallery := admin.Group("/gallery", manageContent)
	gallery.GET("", h.Content.ListGallery)
	gallery.POST("", h.Content.CreateGalleryItem)
	gallery.GET("/:id", h.Content.GetGalleryItem)
	gallery.PUT("/:id", h.Content.UpdateGalleryItem)
	gallery.DELETE("/:id", h.Content.DeleteGalleryItem)

	faqs := admin.Group("/faqs", manageContent)
	faqs.GET("", h.Content.ListFAQs)
	faqs.POST("", h.Content.CreateFAQ)
	faqs.GET("/:id", h.Content.GetFAQ)
	faqs.PUT("/:id", h.Content.UpdateFAQ)
	faqs.DELETE("/:id", h.Content.DeleteFAQ)

	redirects := admin.Group("/redirects", manageContent)
	redirects.POST("", h.Content.CreateRedirect)
	redirects.GET("/:id", h.Content.GetRedirect)
	redirects.PUT("/:id", h.Content.UpdateRedirect)
	redirects.DELETE("/:id", h.Content.DeleteRedirect)

	subs := admin.Group("/submissions", mw.RequirePermission(user.PermViewSubmissions))
	subs.GET("", h.AdminSubs.List)
	subs.GET("/export", h.AdminSubs.Export)
	subs.GET("/:id", h.AdminSubs.Get)

	admin.POST("/uploads", h.Uploads.Upload, mw.RequirePermission(user.PermUploadAssets))
}
