package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starlinkjewels/storefront-backend/internal/config"
	"github.com/starlinkjewels/storefront-backend/internal/modules/analytics"
	"github.com/starlinkjewels/storefront-backend/internal/modules/auth"
	"github.com/starlinkjewels/storefront-backend/internal/modules/catalog"
	"github.com/starlinkjewels/storefront-backend/internal/modules/content"
	"github.com/starlinkjewels/storefront-backend/internal/modules/editorial"
	"github.com/starlinkjewels/storefront-backend/internal/modules/media"
	"github.com/starlinkjewels/storefront-backend/internal/modules/site"
	"github.com/starlinkjewels/storefront-backend/internal/modules/snapshot"
	"github.com/starlinkjewels/storefront-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on environment")
	}
	cfg := config.Load()

	var db *mongo.Database
	if !cfg.DevMode {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		var err error
		db, err = store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			slog.Error("connecting to mongodb failed", "error", err)
			os.Exit(1)
		}
		slog.Info("connected to mongodb", "database", cfg.MongoDatabase)
	} else {
		slog.Info("dev mode: using in-memory stores")
	}

	// Repositories
	var (
		categoryRepo catalog.CategoryRepository
		productRepo  catalog.ProductRepository

		bannerRepo      content.Repository[content.Banner]
		galleryRepo     content.Repository[content.GalleryItem]
		featuredRepo    content.Repository[content.FeaturedItem]
		instagramRepo   content.Repository[content.InstagramPost]
		testimonialRepo content.Repository[content.Testimonial]

		blogRepo  editorial.BlogRepository
		guideRepo editorial.GuideRepository

		contactRepo site.ContactRepository
		promoRepo   site.PromoRepository
		officeRepo  site.OfficeRepository

		visitorRepo analytics.Repository
	)
	if cfg.DevMode {
		categoryRepo = catalog.NewMemoryCategoryRepository()
		productRepo = catalog.NewMemoryProductRepository()
		bannerRepo = content.NewMemoryBannerRepository()
		galleryRepo = content.NewMemoryGalleryRepository()
		featuredRepo = content.NewMemoryFeaturedRepository()
		instagramRepo = content.NewMemoryInstagramRepository()
		testimonialRepo = content.NewMemoryTestimonialRepository()
		blogRepo = editorial.NewMemoryBlogRepository()
		guideRepo = editorial.NewMemoryGuideRepository()
		contactRepo = site.NewMemoryContactRepository()
		promoRepo = site.NewMemoryPromoRepository()
		officeRepo = site.NewMemoryOfficeRepository()
		visitorRepo = analytics.NewMemoryRepository()
	} else {
		categoryRepo = catalog.NewMongoCategoryRepository(db)
		productRepo = catalog.NewMongoProductRepository(db)
		bannerRepo = content.NewMongoBannerRepository(db)
		galleryRepo = content.NewMongoGalleryRepository(db)
		featuredRepo = content.NewMongoFeaturedRepository(db)
		instagramRepo = content.NewMongoInstagramRepository(db)
		testimonialRepo = content.NewMongoTestimonialRepository(db)
		blogRepo = editorial.NewMongoBlogRepository(db)
		guideRepo = editorial.NewMongoGuideRepository(db)
		contactRepo = site.NewMongoContactRepository(db)
		promoRepo = site.NewMongoPromoRepository(db)
		officeRepo = site.NewMongoOfficeRepository(db)
		visitorRepo = analytics.NewMongoRepository(db)
	}

	// Uploader
	var upl media.Uploader
	if cfg.DevMode || cfg.CloudinaryURL == "" {
		upl = media.PlaceholderUploader{}
	} else {
		cu, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			slog.Error("configuring uploads failed", "error", err)
			os.Exit(1)
		}
		upl = cu
	}

	// Services
	checker, err := auth.NewStaticChecker(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		slog.Error("configuring admin credentials failed", "error", err)
		os.Exit(1)
	}
	authSvc := auth.NewService(checker, []byte(cfg.JWTSecret))
	siteSvc := site.NewService(contactRepo, promoRepo, officeRepo)
	catalogSvc := catalog.NewService(categoryRepo, productRepo, func(ctx context.Context) string {
		if c, err := siteSvc.Contact(ctx); err == nil && c.WhatsApp != "" {
			return c.WhatsApp
		}
		return cfg.WhatsAppNumber
	})
	contentSvc := content.NewService(bannerRepo, galleryRepo, featuredRepo, instagramRepo, testimonialRepo)
	editorialSvc := editorial.NewService(blogRepo, guideRepo)
	analyticsSvc := analytics.NewService(visitorRepo, analytics.NewGeoClient(cfg.GeoIPBaseURL))
	mediaSvc := media.NewService(upl, cfg.WatermarkText)
	snapshotSvc := snapshot.NewService(snapshot.Sources{
		Prepare:      siteSvc.EnsureDefaults,
		Banners:      contentSvc.ListBanners,
		Categories:   catalogSvc.ListCategories,
		Products:     catalogSvc.ListProducts,
		Gallery:      contentSvc.ListGallery,
		Featured:     contentSvc.ListFeatured,
		Blogs:        editorialSvc.ListBlogs,
		Instagram:    contentSvc.ListInstagramPosts,
		Testimonials: contentSvc.ListTestimonials,
		Promo:        siteSvc.Promo,
		Contact:      siteSvc.Contact,
	}, snapshot.NewFileStore(cfg.SnapshotCachePath), snapshot.NewWarmer())

	// Handlers
	authHandler := auth.NewHandler(authSvc)
	catalogHandler := catalog.NewHandler(catalogSvc)
	contentHandler := content.NewHandler(contentSvc)
	editorialHandler := editorial.NewHandler(editorialSvc)
	siteHandler := site.NewHandler(siteSvc)
	analyticsHandler := analytics.NewHandler(analyticsSvc)
	mediaHandler := media.NewHandler(mediaSvc)
	snapshotHandler := snapshot.NewHandler(snapshotSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	authHandler.RegisterRoutes(r)
	snapshotHandler.RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r)
	contentHandler.RegisterRoutes(r)
	editorialHandler.RegisterRoutes(r)
	siteHandler.RegisterRoutes(r)
	analyticsHandler.RegisterRoutes(r)

	r.Route("/api/v1/admin", func(admin chi.Router) {
		admin.Use(auth.RequireAdmin(authSvc))
		catalogHandler.RegisterAdminRoutes(admin)
		contentHandler.RegisterAdminRoutes(admin)
		editorialHandler.RegisterAdminRoutes(admin)
		siteHandler.RegisterAdminRoutes(admin)
		analyticsHandler.RegisterAdminRoutes(admin)
		mediaHandler.RegisterAdminRoutes(admin)
		snapshotHandler.RegisterAdminRoutes(admin)
	})

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr, "devMode", cfg.DevMode)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
