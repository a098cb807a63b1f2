package service

import (
	"fmt"
	"testing"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを作ります。
// 接続は1本に制限するので、トランザクション内では必ず tx を使うこと
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for service testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db), "failed to migrate database for service testing")
	return db
}

// seedLesson はコース1件とレッスン1件、単語 n 件を登録します
func seedLesson(t *testing.T, db *gorm.DB, n int) (*model.Lesson, []*model.Vocabulary) {
	t.Helper()
	course := &model.Course{CourseID: uuid.New(), Title: "HSK1 " + uuid.NewString()[:8], HSKLevel: 1}
	require.NoError(t, db.Create(course).Error)

	lesson := &model.Lesson{LessonID: uuid.New(), CourseID: course.CourseID, Title: "第1課"}
	require.NoError(t, db.Create(lesson).Error)

	hanzi := []string{"你好", "谢谢", "再见", "老师", "学生", "朋友", "中国", "喜欢", "吃饭", "喝水"}
	vocabularies := make([]*model.Vocabulary, 0, n)
	for i := 0; i < n; i++ {
		v := &model.Vocabulary{
			VocabularyID: uuid.New(),
			LessonID:     lesson.LessonID,
			Hanzi:        fmt.Sprintf("%s%d", hanzi[i%len(hanzi)], i),
			Pinyin:       "pinyin",
			Meaning:      "意味",
			SortOrder:    i,
		}
		require.NoError(t, db.Create(v).Error)
		vocabularies = append(vocabularies, v)
	}
	return lesson, vocabularies
}

func testConfig() *config.Config {
	return &config.Config{
		Practice: config.PracticeConfig{
			MaxSessionDurationSec: 3600,
			ReviewLimit:           10,
		},
	}
}

// testServices は実リポジトリで組み立てたサービス一式
type testServices struct {
	lesson  LessonProgressService
	session SessionService
	attempt AttemptService
	course  CourseService
	review  ReviewService
}

func newTestServices(db *gorm.DB, cfg *config.Config) *testServices {
	catalogRepo := repository.NewGormCatalogRepository()
	itemRepo := repository.NewGormItemProgressRepository()
	lessonRepo := repository.NewGormLessonProgressRepository()
	sessionRepo := repository.NewGormSessionRepository()
	attemptRepo := repository.NewGormAttemptRepository()

	lessonSvc := NewLessonProgressService(db, catalogRepo, itemRepo, lessonRepo, sessionRepo)
	return &testServices{
		lesson:  lessonSvc,
		session: NewSessionService(db, sessionRepo, catalogRepo, lessonSvc, cfg),
		attempt: NewAttemptService(db, sessionRepo, attemptRepo, itemRepo, catalogRepo, lessonSvc),
		course:  NewCourseService(db, catalogRepo, itemRepo, lessonRepo),
		review:  NewReviewService(db, itemRepo, cfg),
	}
}
