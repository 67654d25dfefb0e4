// Package config collects every environment setting the server reads, with
// defaults for everything that can reasonably have one.
package config

import (
	"os"
	"strings"
)

// Config holds the runtime configuration for the API server.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	// DevMode runs the server on in-memory repositories and a placeholder
	// uploader, so no Mongo or Cloudinary credentials are needed.
	DevMode bool

	CloudinaryURL string

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	// SnapshotCachePath is where the last known good storefront snapshot is
	// persisted between restarts. Empty disables persistence.
	SnapshotCachePath string

	GeoIPBaseURL   string
	WhatsAppNumber string
	WatermarkText  string
	AllowedOrigins []string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getenv("MONGODB_DATABASE", "starlink"),
		DevMode:       isTrue(os.Getenv("DEV_MODE")),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		AdminUsername: getenv("ADMIN_USERNAME", "StarLala"),
		AdminPassword: getenv("ADMIN_PASSWORD", "Panchkutir32"),
		JWTSecret:     getenv("JWT_SECRET", "starlink-dev-secret"),

		SnapshotCachePath: getenv("SNAPSHOT_CACHE_PATH", "storefront-snapshot.json"),

		GeoIPBaseURL:   getenv("GEOIP_BASE_URL", "https://ipapi.co"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "+919967381180"),
		WatermarkText:  getenv("WATERMARK_TEXT", "STARLINK JEWELS"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isTrue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
