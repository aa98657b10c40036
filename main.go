package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/spf13/cobra"
	_ "github.com/undanganku/undanganku/migrations"
	"github.com/undanganku/undanganku/utils"
)

func main() {
	app := pocketbase.New()

	// Register migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: false,
	})

	// Register backup-now command for manual backups
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "backup-now",
		Short: "Create a backup and upload it to S3 immediately",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatalf("Failed to bootstrap: %v", err)
			}
			if err := runBackup(app); err != nil {
				log.Fatalf("Backup failed: %v", err)
			}
		},
	})

	// Register seed-demo command for a ready-to-browse demo account
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "seed-demo",
		Short: "Create a demo account with a sample invitation",
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.Bootstrap(); err != nil {
				log.Fatalf("Failed to bootstrap: %v", err)
			}
			if err := seedDemoData(app); err != nil {
				log.Fatalf("Seeding failed: %v", err)
			}
		},
	})

	// OnServe hook - runs when the server starts
	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		// Configure SMTP for owner notifications
		configureSMTP(app)

		// Security headers middleware
		e.Router.BindFunc(securityHeadersMiddleware)

		// Register custom routes
		registerRoutes(e, app)

		// Serve frontend SPA
		serveFrontend(e)

		// Start the backup scheduler (runs at 2 AM WIB daily)
		go scheduleBackups(app)

		return e.Next()
	})

	// Start the application
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// securityHeadersMiddleware adds security headers to all responses
func securityHeadersMiddleware(e *core.RequestEvent) error {
	h := e.Response.Header()

	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-XSS-Protection", "1; mode=block")

	// HSTS - enforce HTTPS for 1 year, include subdomains
	h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

	// Invitation pages embed YouTube players and Google Maps, and pull
	// fonts from Google Fonts
	h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; font-src https://fonts.gstatic.com; img-src 'self' data: https:; media-src 'self' https:; connect-src 'self'; frame-src https://www.youtube.com https://www.google.com; frame-ancestors 'none'")

	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

	return e.Next()
}

// registerRoutes sets up all custom API endpoints
func registerRoutes(e *core.ServeEvent, app *pocketbase.PocketBase) {
	// API info (with and without trailing slash)
	e.Router.GET("/api", handleAPIRoot())
	e.Router.GET("/api/{$}", handleAPIRoot())

	// Auth (rate limited by IP, no token yet)
	e.Router.POST("/api/auth/register", handleRegister(app)).BindFunc(utils.RateLimitPublic)
	e.Router.POST("/api/auth/login", handleLogin(app)).BindFunc(utils.RateLimitPublic)
	e.Router.GET("/api/auth/me", handleMe()).BindFunc(utils.RequireAuth)

	// Themes (static registry)
	e.Router.GET("/api/themes", handleListThemes())
	e.Router.GET("/api/themes/{id}", handleGetTheme())

	// Public guest endpoints (rate limited to prevent abuse)
	e.Router.GET("/api/public/invitation/{id}", handlePublicInvitation(app)).BindFunc(utils.RateLimitPublic)
	e.Router.GET("/api/public/messages/{id}", handlePublicMessages(app)).BindFunc(utils.RateLimitPublic)
	e.Router.POST("/api/public/rsvp/{id}", handleSubmitRSVP(app)).BindFunc(utils.RateLimitPublic)
	e.Router.POST("/api/public/messages/{id}", handleSubmitMessage(app)).BindFunc(utils.RateLimitPublic)

	// Invitation management (owner scoped)
	e.Router.GET("/api/invitations", handleListInvitations(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.POST("/api/invitations", handleCreateInvitation(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.GET("/api/invitations/{id}", handleGetInvitation(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.PUT("/api/invitations/{id}", handleUpdateInvitation(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.DELETE("/api/invitations/{id}", handleDeleteInvitation(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.GET("/api/invitations/{id}/stats", handleInvitationStats(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)

	// RSVP management
	e.Router.GET("/api/invitations/{id}/rsvps", handleListRSVPs(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.DELETE("/api/rsvps/{id}", handleDeleteRSVP(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)

	// Message management
	e.Router.GET("/api/invitations/{id}/messages", handleListMessages(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.PUT("/api/messages/{id}/reply", handleReplyMessage(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.DELETE("/api/messages/{id}", handleDeleteMessage(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)

	// Guest list management
	e.Router.GET("/api/invitations/{id}/guests", handleListGuests(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.POST("/api/invitations/{id}/guests", handleCreateGuest(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.PUT("/api/invitations/{id}/guests/{guestId}", handleUpdateGuest(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)
	e.Router.DELETE("/api/invitations/{id}/guests/{guestId}", handleDeleteGuest(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)

	// Audit trail (admin role required; viewers are rejected)
	e.Router.GET("/api/admin/audit-logs", handleListAuditLogs(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAdmin)

	// Music upload
	e.Router.POST("/api/upload/music", handleUploadMusic(app)).BindFunc(utils.RateLimitAuth).BindFunc(utils.RequireAuth)

	// Uploaded music files
	e.Router.GET("/uploads/music/{path...}", func(re *core.RequestEvent) error {
		dir := filepath.Join(app.DataDir(), "uploads", "music")
		return re.FileFS(os.DirFS(dir), re.Request.PathValue("path"))
	}).BindFunc(utils.RateLimitPublic)

	// Public guest-facing invitation page
	e.Router.GET("/undangan/{id}", handleInvitationPage(app)).BindFunc(utils.RateLimitPublic)
}

// serveFrontend serves the admin SPA
func serveFrontend(e *core.ServeEvent) {
	// Check if frontend dist exists
	staticDir := "./pb_public"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		staticDir = "../frontend/dist"
	}

	// Serve static files
	e.Router.GET("/{path...}", func(re *core.RequestEvent) error {
		path := re.Request.PathValue("path")

		// Don't handle API routes - let them 404 if not matched
		if len(path) >= 4 && path[:4] == "api/" {
			return re.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
		}

		// Root path or empty - serve index.html
		if path == "" || path == "/" {
			return re.FileFS(os.DirFS(staticDir), "index.html")
		}

		filePath := staticDir + "/" + path

		// Check if file exists (and is not a directory)
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return re.FileFS(os.DirFS(staticDir), path)
		}

		// SPA fallback - serve index.html for client-side routing
		return re.FileFS(os.DirFS(staticDir), "index.html")
	})
}
