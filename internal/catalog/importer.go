// Package catalog はコース → レッスン → 単語のカタログを XLSX から取り込みます
package catalog

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 必須の見出し (1行目)。列の順序は問わない
const (
	ColumnCourse   = "course"
	ColumnHSKLevel = "hsk_level"
	ColumnLesson   = "lesson"
	ColumnHanzi    = "hanzi"
	ColumnPinyin   = "pinyin"
	ColumnMeaning  = "meaning"
)

var requiredColumns = []string{ColumnCourse, ColumnHSKLevel, ColumnLesson, ColumnHanzi, ColumnPinyin, ColumnMeaning}

const DefaultSheetName = "Sheet1"

// ImportResult は取り込み結果
type ImportResult struct {
	TotalProcessed int
	CoursesCreated int
	LessonsCreated int
	Created        int // 新規登録した単語
	Skipped        int // 既に登録済みの単語
	Errors         []string
}

type Importer struct {
	db   *gorm.DB
	repo repository.CatalogRepository
}

func NewImporter(db *gorm.DB, repo repository.CatalogRepository) *Importer {
	return &Importer{db: db, repo: repo}
}

// Import は XLSX を読み込んで行ごとに登録します。
// 行単位のエラーは Errors に積んで続行し、ファイル自体が読めない場合のみ error を返す
func (im *Importer) Import(ctx context.Context, r io.Reader, sheetName string) (*ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("sheet", sheetName)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("catalog.Import: failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("catalog.Import: failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog.Import: sheet %q is empty", sheetName)
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("catalog.Import: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}
		result.TotalProcessed++

		rec, err := parseRow(row, columns)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return im.importRow(ctx, tx, rec, result)
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	logger.Info("Catalog import finished",
		"processed", result.TotalProcessed,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

type record struct {
	course   string
	hskLevel int
	lesson   string
	hanzi    string
	pinyin   string
	meaning  string
}

func (im *Importer) importRow(ctx context.Context, tx *gorm.DB, rec *record, result *ImportResult) error {
	course := &model.Course{Title: rec.course, HSKLevel: rec.hskLevel}
	created, err := im.repo.FindOrCreateCourse(ctx, tx, course)
	if err != nil {
		return err
	}
	if created {
		result.CoursesCreated++
	} else if course.HSKLevel != rec.hskLevel {
		return fmt.Errorf("course %q already exists with hsk_level %d", rec.course, course.HSKLevel)
	}

	lesson := &model.Lesson{CourseID: course.CourseID, Title: rec.lesson}
	created, err = im.repo.FindOrCreateLesson(ctx, tx, lesson)
	if err != nil {
		return err
	}
	if created {
		result.LessonsCreated++
	}

	vocabulary := &model.Vocabulary{
		LessonID: lesson.LessonID,
		Hanzi:    rec.hanzi,
		Pinyin:   rec.pinyin,
		Meaning:  rec.meaning,
	}
	created, err = im.repo.FindOrCreateVocabulary(ctx, tx, vocabulary)
	if err != nil {
		return err
	}
	if created {
		result.Created++
	} else {
		result.Skipped++
	}
	return nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(row []string, columns map[string]int) (*record, error) {
	cell := func(name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := &record{
		course:  cell(ColumnCourse),
		lesson:  cell(ColumnLesson),
		hanzi:   cell(ColumnHanzi),
		pinyin:  cell(ColumnPinyin),
		meaning: cell(ColumnMeaning),
	}
	for _, c := range []struct{ name, value string }{
		{ColumnCourse, rec.course}, {ColumnLesson, rec.lesson}, {ColumnHanzi, rec.hanzi}, {ColumnPinyin, rec.pinyin}, {ColumnMeaning, rec.meaning},
	} {
		if c.value == "" {
			return nil, fmt.Errorf("%s is empty", c.name)
		}
	}

	level, err := strconv.Atoi(cell(ColumnHSKLevel))
	if err != nil || level < 1 || level > 9 {
		return nil, fmt.Errorf("invalid hsk_level %q", cell(ColumnHSKLevel))
	}
	rec.hskLevel = level
	return rec, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
