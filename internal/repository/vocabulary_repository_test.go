package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langy/internal/model"
	"langy/internal/repository"
	"langy/internal/testutil"
)

func TestVocabularyRepository_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormVocabularyRepository()
	ctx := context.Background()
	user := testutil.CreateUser(t, db)
	other := testutil.CreateUser(t, db)

	category := &model.Category{Name: "Food", Color: "#f00", Icon: "🍎"}
	require.NoError(t, repository.NewGormCategoryRepository().Upsert(ctx, db, category))

	entry := &model.VocabularyEntry{
		WordID:         uuid.New(),
		UserID:         user.UserID,
		CategoryID:     &category.CategoryID,
		Original:       "apple",
		Translation:    "manzana",
		SourceLanguage: "en",
		TargetLanguage: "es",
	}
	require.NoError(t, repo.Create(ctx, db, entry))

	t.Run("正常系: カテゴリをPreloadして取得", func(t *testing.T) {
		got, err := repo.FindByID(ctx, db, user.UserID, entry.WordID)
		require.NoError(t, err)
		assert.Equal(t, "manzana", got.Translation)
		require.NotNil(t, got.Category)
		assert.Equal(t, "Food", got.Category.Name)
	})

	t.Run("異常系: 他人の単語は取得できない", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, other.UserID, entry.WordID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 部分更新", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, db, user.UserID, entry.WordID, map[string]interface{}{"context": "I ate an apple"}))
		got, err := repo.FindByID(ctx, db, user.UserID, entry.WordID)
		require.NoError(t, err)
		require.NotNil(t, got.Context)
		assert.Equal(t, "I ate an apple", *got.Context)
	})

	t.Run("正常系: 存在チェック", func(t *testing.T) {
		exists, err := repo.ExistsByOriginal(ctx, db, user.UserID, "apple", "es")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByOriginal(ctx, db, user.UserID, "apple", "fr")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("正常系: 原語と学習言語で取得", func(t *testing.T) {
		got, err := repo.FindByOriginal(ctx, db, user.UserID, "apple", "es")
		require.NoError(t, err)
		assert.Equal(t, entry.WordID, got.WordID)

		_, err = repo.FindByOriginal(ctx, db, user.UserID, "apple", "fr")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 削除後は取得できない", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, db, user.UserID, entry.WordID))
		_, err := repo.FindByID(ctx, db, user.UserID, entry.WordID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, db, user.UserID, entry.WordID), model.ErrNotFound)
	})
}

func TestVocabularyRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormVocabularyRepository()
	ctx := context.Background()
	user := testutil.CreateUser(t, db)

	base := time.Now().Add(-time.Hour)
	catID := uuid.New()
	require.NoError(t, db.Create(&model.Category{CategoryID: catID, Name: "Travel"}).Error)

	testutil.CreateWord(t, db, user.UserID, "one", func(w *model.VocabularyEntry) { w.CreatedAt = base })
	testutil.CreateWord(t, db, user.UserID, "two", func(w *model.VocabularyEntry) {
		w.CreatedAt = base.Add(time.Minute)
		w.CategoryID = &catID
	})
	testutil.CreateWord(t, db, user.UserID, "three", func(w *model.VocabularyEntry) { w.CreatedAt = base.Add(2 * time.Minute) })

	all, err := repo.List(ctx, db, user.UserID, model.WordListFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "three", all[0].Original)
	assert.Equal(t, "one", all[2].Original)

	limited, err := repo.List(ctx, db, user.UserID, model.WordListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	filtered, err := repo.List(ctx, db, user.UserID, model.WordListFilter{CategoryID: &catID, Limit: 50})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "two", filtered[0].Original)
}

func TestVocabularyRepository_FindForPractice(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormVocabularyRepository()
	ctx := context.Background()
	user := testutil.CreateUser(t, db)

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	testutil.CreateWord(t, db, user.UserID, "lv2", func(w *model.VocabularyEntry) { w.MasteryLevel = 2; w.XPPoints = 60 })
	testutil.CreateWord(t, db, user.UserID, "lv0-recent", func(w *model.VocabularyEntry) { w.LastPracticed = &recent })
	testutil.CreateWord(t, db, user.UserID, "lv0-old", func(w *model.VocabularyEntry) { w.LastPracticed = &old })
	testutil.CreateWord(t, db, user.UserID, "lv0-never")

	words, err := repo.FindForPractice(ctx, db, user.UserID, nil, 10)
	require.NoError(t, err)
	require.Len(t, words, 4)

	var got []string
	for _, w := range words {
		got = append(got, w.Original)
	}
	assert.Equal(t, []string{"lv0-never", "lv0-old", "lv0-recent", "lv2"}, got)

	words, err = repo.FindForPractice(ctx, db, user.UserID, nil, 2)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestVocabularyRepository_SaveAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormVocabularyRepository()
	ctx := context.Background()
	user := testutil.CreateUser(t, db)

	w1 := testutil.CreateWord(t, db, user.UserID, "a")
	testutil.CreateWord(t, db, user.UserID, "b")
	testutil.CreateWord(t, db, user.UserID, "c", func(w *model.VocabularyEntry) { w.MasteryLevel = 5; w.XPPoints = 260 })

	now := time.Now()
	w1.XPPoints = 30
	w1.MasteryLevel = 1
	w1.CorrectCount = 2
	w1.LastPracticed = &now
	require.NoError(t, repo.Save(ctx, db, w1))

	got, err := repo.FindByID(ctx, db, user.UserID, w1.WordID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.XPPoints)
	assert.Equal(t, 1, got.MasteryLevel)
	assert.Equal(t, 2, got.CorrectCount)
	assert.NotNil(t, got.LastPracticed)

	counts, err := repo.CountByMasteryLevel(ctx, db, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, []model.MasteryCount{
		{Level: 0, Count: 1},
		{Level: 1, Count: 1},
		{Level: 5, Count: 1},
	}, counts)
}
