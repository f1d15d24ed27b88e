package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gen2brain/beeep"
	"github.com/joho/godotenv"

	"zenwell-client/config"
	"zenwell-client/internal/auth"
	authUC "zenwell-client/internal/auth/usecase"
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/model"
	"zenwell-client/internal/notification"
	notificationUC "zenwell-client/internal/notification/usecase"
	"zenwell-client/internal/realtime"
	"zenwell-client/internal/session"
	"zenwell-client/pkg/log"
)

const appName = "Zenwell"

func main() {
	// Optional .env next to the binary; real env vars win.
	_ = godotenv.Load()

	email := flag.String("email", os.Getenv("ZENWELL_EMAIL"), "account email (skipped when a stored session exists)")
	password := flag.String("password", os.Getenv("ZENWELL_PASSWORD"), "account password")
	logout := flag.Bool("logout", false, "log out, clear the stored session, and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store session.Store
	if cfg.Session.Path != "" {
		store = session.NewFileStore(cfg.Session.Path)
	} else {
		store = session.NewMemoryStore()
	}

	// Channel lifecycle is tied to the session: created after login, torn
	// down with it on logout or exit.
	channel := realtime.New(realtime.Config{
		URL:              cfg.Realtime.URL,
		PingInterval:     cfg.Realtime.PingInterval,
		PongWait:         cfg.Realtime.PongWait,
		WriteWait:        cfg.Realtime.WriteWait,
		ReconnectInitial: cfg.Realtime.ReconnectInitial,
		ReconnectMax:     cfg.Realtime.ReconnectMax,
	}, store, logger)

	onSessionEnded := func() {
		channel.Disconnect()
		logger.Info(ctx, "Session ended, please log in again")
	}

	client := httpclient.New(httpclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, store, logger, onSessionEnded)

	authSvc := authUC.New(logger, client, store, onSessionEnded)
	notificationSvc := notificationUC.New(logger, client)

	if *logout {
		if err := authSvc.Logout(ctx); err != nil {
			logger.Warnf(ctx, "Logout finished with error: %v", err)
		}
		return
	}

	identity, err := ensureSession(ctx, authSvc, *email, *password)
	if err != nil {
		logger.Errorf(ctx, "Authentication failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Authenticated as user %s (%s)", identity.UserID, identity.Role)

	channel.OnMessage(func(kind realtime.MessageKind, payload json.RawMessage) {
		handleMessage(ctx, logger, notificationSvc, kind, payload)
	})

	if err := channel.Connect(ctx, identity.UserID); err != nil {
		logger.Errorf(ctx, "Failed to start realtime channel: %v", err)
		os.Exit(1)
	}
	defer channel.Disconnect()

	// Show anything missed while offline.
	if history, err := notificationSvc.List(ctx); err != nil {
		logger.Warnf(ctx, "Failed to fetch notification history: %v", err)
	} else {
		for _, n := range history {
			if !n.Read {
				logger.Infof(ctx, "Unread: %s", n.Message)
			}
		}
	}

	logger.Info(ctx, "Listening for notifications, Ctrl+C to exit")
	<-ctx.Done()
	logger.Info(ctx, "Shutting down")
}

// ensureSession reuses a stored session when one exists and logs in
// otherwise.
func ensureSession(ctx context.Context, authSvc auth.UseCase, email, password string) (auth.Identity, error) {
	if authSvc.IsAuthenticated() {
		if identity, err := authSvc.CurrentUser(); err == nil {
			return identity, nil
		}
	}
	return authSvc.Login(ctx, auth.LoginInput{Email: email, Password: password})
}

func handleMessage(ctx context.Context, logger log.Logger, notificationSvc notification.UseCase, kind realtime.MessageKind, payload json.RawMessage) {
	var title, body string
	switch kind {
	case realtime.KindNotification:
		n, err := notificationSvc.DecodeNotification(payload)
		if err != nil {
			logger.Warnf(ctx, "Undecodable notification payload: %v", err)
			return
		}
		title = n.Title
		if title == "" {
			title = appName
		}
		body = n.Message
	case realtime.KindBooking:
		update, err := notificationSvc.DecodeBookingUpdate(payload)
		if err != nil {
			logger.Warnf(ctx, "Undecodable booking payload: %v", err)
			return
		}
		title = fmt.Sprintf("%s booking", appName)
		body = bookingText(update)
	default:
		return
	}

	logger.Infof(ctx, "%s: %s", title, body)
	if err := beeep.Notify(title, body, ""); err != nil {
		// Desktop notifications are opportunistic; the log line above is
		// the delivery of record.
		logger.Debugf(ctx, "Desktop notification failed: %v", err)
	}
}

func bookingText(update model.BookingUpdate) string {
	if update.Message != "" {
		return update.Message
	}
	switch update.Status {
	case model.BookingStatusConfirmed:
		return fmt.Sprintf("Your booking with %s is confirmed", update.PractitionerName)
	case model.BookingStatusCancelled:
		return fmt.Sprintf("Your booking with %s was cancelled", update.PractitionerName)
	default:
		return fmt.Sprintf("Booking with %s is now %s", update.PractitionerName, update.Status)
	}
}
