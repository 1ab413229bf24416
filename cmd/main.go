package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/internal/logger"
	"github.com/daniilgb/budgetwise/internal/push"
	"github.com/daniilgb/budgetwise/internal/routes"
	"github.com/daniilgb/budgetwise/utils"
)

// Subscriptions unseen for this long are pruned by the daily sweep.
const staleSubscriptionAge = 90 * 24 * time.Hour

func main() {
	seed := flag.Bool("seed", false, "populate the database with demo users and transactions, then exit")
	seedUsers := flag.Int("seed-users", 5, "number of demo users to create with -seed")
	seedTransactions := flag.Int("seed-transactions", 40, "transactions per demo user with -seed")
	flag.Parse()

	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found, using process environment")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	if *seed {
		userIDs, err := utils.SeedDemoData(ctx, pool, *seedUsers, *seedTransactions)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding demo data failed")
		}
		log.Info().Int("users", len(userIDs)).Int("transactions_per_user", *seedTransactions).Msg("demo data seeded")
		return
	}

	vapidPublic := os.Getenv("VAPID_PUBLIC_KEY")
	vapidPrivate := os.Getenv("VAPID_PRIVATE_KEY")
	vapidSubject := os.Getenv("VAPID_SUBJECT")
	if vapidSubject == "" {
		vapidSubject = "mailto:admin@budgetwise.app"
	}
	if vapidPublic == "" || vapidPrivate == "" {
		log.Warn().Msg("VAPID keys not configured, push delivery will fail until they are set")
	}
	sender := push.NewWebPushSender(vapidPublic, vapidPrivate, vapidSubject)
	notifier := push.NewNotifier(&database.SubscriptionStore{Pool: pool}, sender, log)

	c := cron.New()
	_, err = c.AddFunc("@daily", func() {
		cutoff := time.Now().Add(-staleSubscriptionAge)
		removed, err := database.DeleteStalePushSubscriptions(context.Background(), pool, cutoff)
		if err != nil {
			log.Error().Err(err).Msg("stale subscription sweep failed")
			return
		}
		if removed > 0 {
			log.Info().Int64("removed", removed).Msg("pruned stale push subscriptions")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cron setup failed")
	}
	c.Start()

	r := routes.Setup(pool, notifier, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
