package service

import (
	"fmt"
	"testing"
	"time"

	"studymo_backend/internal/config"
	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/pkg/database"
	"studymo_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// fakeQuota 内存版配额计数，替代 Redis
type fakeQuota struct {
	counts map[string]int
}

func newFakeQuota() *fakeQuota {
	return &fakeQuota{counts: map[string]int{}}
}

func (f *fakeQuota) key(userID uint, day string) string {
	return fmt.Sprintf("%d:%s", userID, day)
}

func (f *fakeQuota) Used(userID uint, day string) (int, error) {
	return f.counts[f.key(userID, day)], nil
}

func (f *fakeQuota) Incr(userID uint, day string) error {
	f.counts[f.key(userID, day)]++
	return nil
}

func seedTestCategory(t *testing.T, db *gorm.DB, key string, itemCount int) {
	t.Helper()

	category := &model.Category{Key: key, Name: "テスト", Icon: "🧪", Color: "#123456"}
	require.NoError(t, db.Create(category).Error)

	for i := 0; i < itemCount; i++ {
		item := &model.QuestionItem{
			ItemKey:       fmt.Sprintf("%s_item_%03d", key, i),
			CategoryID:    category.ID,
			Kind:          model.MultipleChoice,
			Prompt:        fmt.Sprintf("問題 %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: 1,
			Difficulty:    1,
		}
		require.NoError(t, db.Create(item).Error)
	}
}

type harness struct {
	db           *gorm.DB
	quota        *fakeQuota
	subscription *SubscriptionService
	progress     *ProgressService
	gamification *GamificationService
	session      *SessionService
	clock        *time.Time
}

// newHarness 组装完整的服务依赖图，时钟与洗牌均为确定性实现
func newHarness(t *testing.T) *harness {
	t.Helper()

	db := newTestDB(t)
	quota := newFakeQuota()

	catalogRepo := repository.NewCatalogRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	gamificationRepo := repository.NewGamificationRepository(db)

	cfg := &config.Config{}
	cfg.Session.DefaultItemCount = 10
	cfg.Session.MaxItemCount = 50

	subscription := NewSubscriptionService(subscriptionRepo, quota)
	progress := NewProgressService(progressRepo, catalogRepo)
	gamification := NewGamificationService(gamificationRepo, progressRepo)
	session := NewSessionService(catalogRepo, sessionRepo, subscription, progress, gamification, cfg)

	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	h := &harness{
		db:           db,
		quota:        quota,
		subscription: subscription,
		progress:     progress,
		gamification: gamification,
		session:      session,
		clock:        &clock,
	}

	now := func() time.Time { return *h.clock }
	subscription.Now = now
	progress.Now = now
	gamification.Now = now
	session.Now = now
	session.Shuffle = func(n int, swap func(i, j int)) {}

	return h
}

func (h *harness) advance(d time.Duration) {
	*h.clock = h.clock.Add(d)
}

func (h *harness) upgradePremium(t *testing.T, userID uint) {
	t.Helper()
	_, err := h.subscription.Upgrade(userID, model.PlanMonthly)
	require.NoError(t, err)
}
