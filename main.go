// File: carexpert/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carexpert/api"
	"carexpert/app"
	"carexpert/booking"
	"carexpert/config"
	"carexpert/mockapi"
	"carexpert/nav"
	"carexpert/notify"
	"carexpert/search"
	"carexpert/session"
	"carexpert/utils"

	"go.uber.org/zap"
)

// The binary is the development harness: it starts the in-memory mock
// backend, then drives the headless client through the find-a-doctor and
// booking flow against it.
func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Start the mock API server.
	store := mockapi.NewStore()
	router := mockapi.NewEngine(store)

	port := config.AppConfig.MockPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting mock API on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: mock API failed to start: %v", err)
		}
	}()

	go runDemo("http://" + srv.Addr)

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: stopped gracefully")
}

// debounceWindow turns the DEBOUNCE_MILLIS setting into the search debounce
// duration, keeping the stock window when the setting is absent.
func debounceWindow() time.Duration {
	if ms := config.AppConfig.DebounceMillis; ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return search.DefaultWindow
}

// runDemo walks the client through login, doctor search, and a booking.
func runDemo(baseURL string) {
	logger := utils.GetLogger()
	ctx := context.Background()

	client, err := api.NewClient(baseURL)
	if err != nil {
		logger.Sugar().Fatalf("demo: failed to build client: %v", err)
	}

	sessionStore := session.NewStore()
	center := notify.NewCenter()
	center.Subscribe(func(n notify.Notification) {
		logger.Info("toast", zap.String("level", string(n.Level)), zap.String("message", n.Message))
	})

	router := nav.NewRouter(sessionStore)

	// Signed out, /doctors must redirect to login.
	match := router.Resolve(nav.Location{Path: "/doctors"})
	if !match.Decision.Allowed {
		logger.Info("guard redirect",
			zap.String("to", match.Decision.RedirectTo),
			zap.String("from", match.Decision.From.Path))
	}

	result, err := client.Login(ctx, mockapi.SeedPatientEmail, mockapi.SeedPassword)
	if err != nil {
		logger.Sugar().Fatalf("demo: login failed: %v", err)
	}
	if err := sessionStore.SetFromToken(result.Token); err != nil {
		logger.Sugar().Fatalf("demo: bad session token: %v", err)
	}
	logger.Info("signed in", zap.String("user", result.User.Name), zap.String("role", result.User.Role))

	page := app.NewDoctorsPage(client, sessionStore, center, debounceWindow())
	defer page.Close()
	page.Mount(ctx)

	page.SetQuery("alice")
	time.Sleep(600 * time.Millisecond) // let the debounce window elapse
	logger.Info(page.CountLabel(), zap.String("query", page.Query()))

	doctors := page.Filtered()
	if len(doctors) == 0 {
		logger.Sugar().Fatal("demo: expected at least one doctor for query")
	}

	if page.OpenBooking(doctors[0].ID) {
		dialog := page.Booking()
		dialog.SetDate(booking.MinDate(time.Now().AddDate(0, 0, 3)))
		dialog.SetTime("10:30")
		dialog.SetNotes("Occasional chest pain after exercise.")
		if err := page.SubmitBooking(ctx); err != nil {
			logger.Warn("demo: booking failed", zap.Error(err))
		}
	}

	appts, err := client.FetchMyAppointments(ctx)
	if err == nil {
		logger.Info("appointments", zap.Int("count", len(appts)))
	}
}
