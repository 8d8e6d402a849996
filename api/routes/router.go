package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emoorm/storefront/api/controllers"
	"github.com/emoorm/storefront/api/middleware"
	cartsvc "github.com/emoorm/storefront/internal/cart"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/internal/clientstate"
	followsvc "github.com/emoorm/storefront/internal/follow"
	sellersvc "github.com/emoorm/storefront/internal/seller"
	wishlistsvc "github.com/emoorm/storefront/internal/wishlist"
	"github.com/emoorm/storefront/pkg/config"
	"github.com/emoorm/storefront/pkg/events"
	"github.com/emoorm/storefront/pkg/logger"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	RedisPinger controllers.Pinger
	Registry    *prometheus.Registry

	Catalog     *catalog.Cache
	Remote      controllers.RemoteCatalog
	ClientState *clientstate.Store
	Cart        cartsvc.Service
	Wishlist    wishlistsvc.Service
	Follow      followsvc.Service
	Seller      sellersvc.Service
	Broadcaster *events.Broadcaster
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
		middleware.Identity(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DBPinger, d.RedisPinger, d.Catalog))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(d.Catalog, logg))
			r.Get("/products/{productId}", controllers.ProductDetail(d.Catalog, logg))
			r.Get("/categories", controllers.ListCategories(d.Catalog, logg))
			r.Get("/categories/{category}/products", controllers.BrowseCategory(d.Remote, logg))
			r.Get("/brands", controllers.ListBrands(d.Catalog, logg))
			r.Get("/deals", controllers.ListDeals(d.Catalog, logg))
			r.Get("/deals/live", controllers.LiveDeals(d.Remote, logg))
			r.Get("/search", controllers.RemoteSearch(d.Remote, logg))
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.ListStores(d.Catalog, logg))
			r.Get("/{storeId}", controllers.StoreDetail(d.Catalog, logg))
			r.Get("/{storeId}/products", controllers.StoreProducts(d.Catalog, d.Remote, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser(logg))
				r.Post("/{storeId}/follow", controllers.FollowStore(d.Follow, logg))
				r.Delete("/{storeId}/follow", controllers.UnfollowStore(d.Follow, logg))
				r.Get("/{storeId}/follow", controllers.FollowStatus(d.Follow, logg))
			})
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/suggestions", controllers.SearchSuggestions(d.Catalog, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireDevice(logg))
				r.Get("/history", controllers.SearchHistory(d.ClientState, logg))
				r.Post("/history", controllers.RecordSearch(d.ClientState, logg))
				r.Delete("/history", controllers.ClearSearchHistory(d.ClientState, logg))
				r.Get("/recommendations", controllers.Recommendations(d.Catalog, d.ClientState, logg))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireDevice(logg))
			r.Get("/", controllers.CartView(d.Cart, logg))
			r.Post("/items", controllers.CartAdd(d.Cart, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateQuantity(d.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemove(d.Cart, logg))
			r.Delete("/", controllers.CartClear(d.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(middleware.RequireDevice(logg))
			r.Get("/", controllers.WishlistView(d.Wishlist, logg))
			r.Get("/ids", controllers.WishlistIDs(d.Wishlist, logg))
			r.Post("/items", controllers.WishlistAdd(d.Wishlist, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemove(d.Wishlist, logg))
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Use(middleware.RequireDevice(logg))
			r.Get("/banners", controllers.DismissedBanners(d.ClientState, logg))
			r.Post("/banners/dismiss", controllers.DismissBanner(d.ClientState, logg))
		})

		r.Route("/account", func(r chi.Router) {
			r.Use(middleware.RequireUser(logg))
			r.Put("/avatar", controllers.UpdateAvatar(d.Broadcaster, logg))
			r.Get("/avatar/stream", controllers.AvatarStream(d.Broadcaster, logg))
		})

		r.Route("/seller", func(r chi.Router) {
			r.Use(middleware.RequireSeller(logg))
			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.SellerListProducts(d.Seller, logg))
				r.Post("/", controllers.SellerCreateProduct(d.Seller, logg))
				r.Put("/{productId}", controllers.SellerUpdateProduct(d.Seller, logg))
				r.Delete("/{productId}", controllers.SellerDeleteProduct(d.Seller, logg))
			})
			r.Route("/store", func(r chi.Router) {
				r.Get("/", controllers.SellerStoreProfile(d.Remote, logg))
				r.Put("/settings", controllers.SellerUpdateSettings(d.Seller, logg))
				r.Put("/about", controllers.SellerUpdateAbout(d.Seller, logg))
				r.Put("/location", controllers.SellerUpdateLocation(d.Seller, logg))
				r.Put("/genres", controllers.SellerReplaceGenres(d.Seller, logg))
				r.Post("/photos", controllers.SellerAddPhoto(d.Seller, logg))
				r.Delete("/photos/{photoId}", controllers.SellerRemovePhoto(d.Seller, logg))
			})
		})
	})

	return r
}
