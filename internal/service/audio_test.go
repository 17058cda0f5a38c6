package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateAudio(t *testing.T, svc *AudioService, in CreateAudioInput) int64 {
	t.Helper()
	a, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return a.ID
}

func TestAudioCreateAndGet(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	id := mustCreateAudio(t, svc, CreateAudioInput{
		Title: "Morning News", URL: "/uploads/audio/a.mp3", CreatorID: 1, Category: "news", Duration: 120,
	})

	a, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Morning News", a.Title)
	assert.Zero(t, a.PlayCount)
	assert.Zero(t, a.LikeCount)
	assert.Zero(t, a.CommentCount)

	_, err = svc.GetByID(ctx, id+100)
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))
}

func TestAudioUpdatePartial(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	id := mustCreateAudio(t, svc, CreateAudioInput{
		Title: "Ep 1", Description: "pilot", URL: "/uploads/audio/1.mp3", CreatorID: 7, Category: "talk",
	})

	title := "Ep 1 (remastered)"
	a, err := svc.Update(ctx, id, UpdateAudioInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, a.Title)
	assert.Equal(t, "pilot", a.Description, "unspecified field must keep its value")
	assert.Equal(t, "talk", a.Category)
	assert.Equal(t, "/uploads/audio/1.mp3", a.URL)

	_, err = svc.Update(ctx, id+1, UpdateAudioInput{Title: &title})
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))
}

func TestAudioDelete(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	id := mustCreateAudio(t, svc, CreateAudioInput{Title: "x", URL: "/u", CreatorID: 1})
	require.NoError(t, svc.Delete(ctx, id))

	_, err := svc.GetByID(ctx, id)
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))

	err = svc.Delete(ctx, id)
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))
}

// 删除音频不会清理 profile 收藏集合里的引用（按设计保留）
func TestAudioDeleteLeavesCollectionsUntouched(t *testing.T) {
	db := newTestDB(t)
	audios := newAudioSvc(t, db)
	profiles := newProfileSvc(t, db)
	u := mustRegister(t, newUserSvc(t, db), "13800000001")
	ctx := context.Background()

	id := mustCreateAudio(t, audios, CreateAudioInput{Title: "x", URL: "/u", CreatorID: 1})
	require.NoError(t, profiles.Collect(ctx, u.ID, id))
	require.NoError(t, audios.Delete(ctx, id))

	p, err := profiles.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Contains(t, p.CollectAudioID, id)
}

func TestAudioLists(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	mustCreateAudio(t, svc, CreateAudioInput{Title: "jazz one", URL: "/1", CreatorID: 1, Category: "music"})
	mustCreateAudio(t, svc, CreateAudioInput{Title: "jazz two", URL: "/2", CreatorID: 1, Category: "music"})
	mustCreateAudio(t, svc, CreateAudioInput{Title: "daily news", URL: "/3", CreatorID: 2, Category: "news"})

	byCreator, err := svc.ListByCreator(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCreator, 2)

	byCategory, err := svc.ListByCategory(ctx, "news")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "daily news", byCategory[0].Title)

	found, err := svc.Search(ctx, "jazz")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := svc.Search(ctx, "opera")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlayCountSequentialIncrements(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	id := mustCreateAudio(t, svc, CreateAudioInput{Title: "x", URL: "/u", CreatorID: 1})
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.IncrementPlay(ctx, id))
	}

	a, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, a.PlayCount)
}

func TestLikeCountFloorsAtZero(t *testing.T) {
	svc := newAudioSvc(t, newTestDB(t))
	ctx := context.Background()

	id := mustCreateAudio(t, svc, CreateAudioInput{Title: "x", URL: "/u", CreatorID: 1})

	// 起点就是 0：unlike 是 no-op
	require.NoError(t, svc.DecrementLike(ctx, id))
	a, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, a.LikeCount)

	require.NoError(t, svc.IncrementLike(ctx, id))
	require.NoError(t, svc.IncrementLike(ctx, id))
	require.NoError(t, svc.DecrementLike(ctx, id))
	require.NoError(t, svc.DecrementLike(ctx, id))
	require.NoError(t, svc.DecrementLike(ctx, id))

	a, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, a.LikeCount, "like count must never go below zero")

	counterTarget := id + 999
	err = svc.IncrementPlay(ctx, counterTarget)
	require.Error(t, err)
	assert.Equal(t, 404, appCode(t, err))
}
