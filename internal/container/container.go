package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/admin"
	"github.com/saulo-duarte/question-bank/internal/answer"
	"github.com/saulo-duarte/question-bank/internal/auth"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/database"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/stats"
	"github.com/saulo-duarte/question-bank/internal/user"
)

type Container struct {
	Settings          *config.Settings
	DB                *gorm.DB
	Redis             *redis.Client
	Denylist          auth.Denylist
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	AdminContainer    *admin.AdminContainer
	StatsContainer    *stats.StatsContainer
	AuthHandler       *auth.Handler
}

// Bootstrap loads configuration, connects to the database, runs the
// startup migration and wires every service.
func Bootstrap(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	config.Init()
	auth.Init()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	var rdb *redis.Client
	denylist := auth.NewNoopDenylist()
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		denylist = auth.NewRedisDenylist(rdb)
	} else {
		config.WithContext(ctx).Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	c := New(cfg, db, denylist)
	c.Redis = rdb
	return c, nil
}

func New(cfg *config.Settings, db *gorm.DB, denylist auth.Denylist) *Container {
	userContainer := user.NewUserContainer(db, denylist, cfg.AccessTokenTTL)
	categoryRepo := category.NewRepository(db)
	answerRepo := answer.NewRepository(db)
	questionContainer := question.NewQuestionContainer(db, categoryRepo, answerRepo)
	adminContainer := admin.NewAdminContainer(db, categoryRepo, questionContainer.Repo)
	statsContainer := stats.NewStatsContainer(answerRepo)

	return &Container{
		Settings:          cfg,
		DB:                db,
		Denylist:          denylist,
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		AdminContainer:    adminContainer,
		StatsContainer:    statsContainer,
		AuthHandler:       auth.NewHandler(denylist),
	}
}

func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return err
		}
	}
	return database.Close(c.DB)
}
