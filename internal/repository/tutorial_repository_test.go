package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pracademy/internal/model"
)

func seedTutorials(t *testing.T, repo TutorialRepository) []model.Tutorial {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tutorials := []model.Tutorial{
		{Title: "생성형 AI 이해하기", VideoURL: "https://cdn.example.com/v1.mp4", Category: "기초", Difficulty: "초급", Published: true, CreatedAt: base},
		{Title: "업무 자동화 도구 만들기", VideoURL: "https://cdn.example.com/v2.mp4", Category: "응용", Difficulty: "중급", Published: true, CreatedAt: base.Add(time.Hour)},
		{Title: "프롬프트 엔지니어링 고급", VideoURL: "https://cdn.example.com/v3.mp4", Category: "고급", Difficulty: "고급", Published: false, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range tutorials {
		require.NoError(t, repo.Create(context.Background(), &tutorials[i]))
	}
	return tutorials
}

func TestTutorialRepository_ListOrdering(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	seedTutorials(t, repo)

	got, err := repo.List(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	assert.Equal(t, "프롬프트 엔지니어링 고급", got[0].Title)
	assert.Equal(t, "업무 자동화 도구 만들기", got[1].Title)
	assert.Equal(t, "생성형 AI 이해하기", got[2].Title)
}

func TestTutorialRepository_ListFilters(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	seedTutorials(t, repo)

	tests := []struct {
		name          string
		category      string
		publishedOnly bool
		wantTitles    []string
	}{
		{
			name:       "category exact match",
			category:   "기초",
			wantTitles: []string{"생성형 AI 이해하기"},
		},
		{
			name:       "sentinel returns all",
			category:   model.CategoryAll,
			wantTitles: []string{"프롬프트 엔지니어링 고급", "업무 자동화 도구 만들기", "생성형 AI 이해하기"},
		},
		{
			name:          "published only hides drafts",
			publishedOnly: true,
			wantTitles:    []string{"업무 자동화 도구 만들기", "생성형 AI 이해하기"},
		},
		{
			name:       "unknown category matches nothing",
			category:   "없는카테고리",
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.category, tt.publishedOnly)
			require.NoError(t, err)

			titles := make([]string, 0, len(got))
			for _, tutorial := range got {
				titles = append(titles, tutorial.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestTutorialRepository_CreateDraftStaysDraft(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	ctx := context.Background()

	draft := model.Tutorial{
		Title:      "초안 튜토리얼",
		VideoURL:   "https://cdn.example.com/draft.mp4",
		Category:   "기초",
		Difficulty: "초급",
		Published:  false,
	}
	require.NoError(t, repo.Create(ctx, &draft))

	got, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, got.Published)

	published, err := repo.List(ctx, "", true)
	require.NoError(t, err)
	assert.Empty(t, published)
}

func TestTutorialRepository_IncrementViews(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	created := seedTutorials(t, repo)

	ctx := context.Background()
	require.NoError(t, repo.IncrementViews(ctx, created[0].ID))

	got, err := repo.FindByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	// siblings untouched
	other, err := repo.FindByID(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.Views)
}

func TestTutorialRepository_Delete(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	created := seedTutorials(t, repo)

	ctx := context.Background()
	deleted, err := repo.Delete(ctx, created[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTutorialRepository_SumViews(t *testing.T) {
	repo := NewTutorialRepository(newTestDB(t))
	created := seedTutorials(t, repo)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViews(ctx, created[0].ID))
	}
	require.NoError(t, repo.IncrementViews(ctx, created[1].ID))

	sum, err := repo.SumViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sum)
}
