package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	auth "github.com/chanuka789/QS-Tools/internal/auth"
	drawing "github.com/chanuka789/QS-Tools/internal/calc/drawing"
	autodesign "github.com/chanuka789/QS-Tools/internal/calc/premium/autodesign"
	batch "github.com/chanuka789/QS-Tools/internal/calc/premium/batch"
	importer "github.com/chanuka789/QS-Tools/internal/calc/premium/importer"
	recommend "github.com/chanuka789/QS-Tools/internal/calc/premium/recommend"
	schedule "github.com/chanuka789/QS-Tools/internal/calc/premium/schedule"
	report "github.com/chanuka789/QS-Tools/internal/calc/report"
	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
	config "github.com/chanuka789/QS-Tools/internal/config"
	profile "github.com/chanuka789/QS-Tools/internal/profile"
	repo "github.com/chanuka789/QS-Tools/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB, cfg *config.Config) {
	userRepo := repo.NewPostgresUserDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.Server.RateRPS), cfg.Server.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	stairH := &stair.Handler{Defaults: cfg.DefaultStair}
	drawingH := &drawing.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	scheduleH := &schedule.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/stair/calc", stairH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/stair/defaults", stairH.GetDefaults).Methods("GET")
	secureApi.HandleFunc("/tools/stair/live", stairH.Live).Methods("GET")
	secureApi.HandleFunc("/tools/stair/draw", drawingH.Draw).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/stair/batch", batchH.Stair).Methods("POST")
	secureApi.HandleFunc("/tools/stair/import", importerH.Stair).Methods("POST")
	secureApi.HandleFunc("/tools/stair/schedule", scheduleH.Export).Methods("POST")
	secureApi.HandleFunc("/tools/stair/autosize", autodesignH.Stair).Methods("POST")
	secureApi.HandleFunc("/tools/stair/order", recommendH.Order).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.Handle("/profile/{id:[0-9]+}", authEnv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/profile/index.html")
	})))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Printf("Starting server on %s", cfg.Server.Addr)
	HandleList(mux, db, cfg)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped cleanly")

	wg.Wait()
}
