package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires repositories, services, and controllers onto a router
// backed by the given Badger DB. Uploaded images are stored under
// uploadDir and served back at /uploads/.
func SetupRoutes(db *badger.DB, uploadDir string) *mux.Router {
	router := mux.NewRouter()

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Instrument(metrics))

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	imageService := services.NewImageService(postRepo, uploadDir)
	postService := services.NewPostService(postRepo, commentRepo, imageService)
	commentService := services.NewCommentService(commentRepo, postRepo)
	statsService := services.NewStatsService(postRepo, commentRepo)

	postController := controllers.NewPostController(postService, imageService)
	commentController := controllers.NewCommentController(commentService)
	tagController := controllers.NewTagController(statsService, postService)
	statsController := controllers.NewStatsController(statsService)

	router.HandleFunc("/", welcome).Methods("GET")

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id:[0-9]+}/image", postController.UploadImage).Methods("POST")

	// Comments endpoints
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	// Tags and statistics
	router.HandleFunc("/tags", tagController.Index).Methods("GET")
	router.HandleFunc("/tags/{tag}/posts", tagController.Posts).Methods("GET")
	router.HandleFunc("/stats", statsController.Show).Methods("GET")

	// Operational endpoints and stored images
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return router
}

// welcome serves a small endpoint directory at the root path
func welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Welcome to Inkwell","endpoints":{"posts":"/posts","tags":"/tags","stats":"/stats"}}`))
}

// StartServer starts the HTTP server on the specified address with the
// given router, allowing cross-origin requests from any frontend.
func StartServer(addr string, router http.Handler) error {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return http.ListenAndServe(addr, cors(router))
}
