package service

import (
	"testing"
	"time"

	"lessoncms_backend/internals/constants"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func completeLesson(status string) *lessonModel.LessonModel {
	return &lessonModel.LessonModel{
		LessonTitle:                  "Hello, Go",
		LessonStatus:                 status,
		LessonContentLanguagePrimary: "en",
		LessonContentURLsByLanguage: datatypes.JSONMap{
			"en": "https://cdn.example.com/videos/hello-go.mp4",
		},
		LessonThumbnailAssetsByLanguage: datatypes.JSONMap{
			"en": map[string]interface{}{
				"portrait":  "https://cdn.example.com/thumbs/p.jpg",
				"landscape": "https://cdn.example.com/thumbs/l.jpg",
			},
		},
	}
}

func TestTransitionAllowedEdges(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(time.Hour)

	cases := []struct {
		from, to string
		ok       bool
	}{
		{constants.StatusDraft, constants.StatusScheduled, true},
		{constants.StatusDraft, constants.StatusPublished, true},
		{constants.StatusDraft, constants.StatusArchived, true},
		{constants.StatusScheduled, constants.StatusPublished, true},
		{constants.StatusScheduled, constants.StatusArchived, true},
		{constants.StatusPublished, constants.StatusArchived, true},
		{constants.StatusArchived, constants.StatusDraft, true},

		{constants.StatusPublished, constants.StatusDraft, false},
		{constants.StatusPublished, constants.StatusScheduled, false},
		{constants.StatusScheduled, constants.StatusDraft, false},
		{constants.StatusArchived, constants.StatusPublished, false},
		{constants.StatusArchived, constants.StatusScheduled, false},
	}

	for _, tc := range cases {
		lesson := completeLesson(tc.from)
		err := Transition(lesson, tc.to, constants.RoleEditor, now, &future)
		if tc.ok {
			assert.NoError(t, err, "%s → %s harus boleh", tc.from, tc.to)
		} else {
			require.Error(t, err, "%s → %s harus ditolak", tc.from, tc.to)
			ve, isVE := AsValidationError(err)
			require.True(t, isVE)
			assert.NotEmpty(t, ve.Details)
			assert.Equal(t, tc.from, lesson.LessonStatus, "status tidak boleh berubah saat gagal")
		}
	}
}

func TestTransitionRoleCheck(t *testing.T) {
	now := time.Now().UTC()

	lesson := completeLesson(constants.StatusDraft)
	err := Transition(lesson, constants.StatusPublished, constants.RoleViewer, now, nil)
	_, isPE := AsPermissionError(err)
	require.True(t, isPE, "viewer tidak boleh publish")
	assert.Equal(t, constants.StatusDraft, lesson.LessonStatus)

	lesson = completeLesson(constants.StatusDraft)
	require.NoError(t, Transition(lesson, constants.StatusPublished, constants.RoleEditor, now, nil))
	assert.Equal(t, constants.StatusPublished, lesson.LessonStatus)

	lesson = completeLesson(constants.StatusScheduled)
	require.NoError(t, Transition(lesson, constants.StatusPublished, constants.RoleSystem, now, nil))
}

func TestTransitionPublishSetsPublishedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	lesson := completeLesson(constants.StatusScheduled)
	require.NoError(t, Transition(lesson, constants.StatusPublished, constants.RoleEditor, now, nil))
	require.NotNil(t, lesson.LessonPublishedAt)
	assert.Equal(t, now, *lesson.LessonPublishedAt)
}

func TestTransitionPublishReportsAllMissingAssets(t *testing.T) {
	now := time.Now().UTC()

	lesson := &lessonModel.LessonModel{
		LessonStatus:                 constants.StatusScheduled,
		LessonContentLanguagePrimary: "en",
		// tanpa content URL, tanpa thumbnail sama sekali
	}

	err := Transition(lesson, constants.StatusPublished, constants.RoleEditor, now, nil)
	ve, isVE := AsValidationError(err)
	require.True(t, isVE)
	assert.Len(t, ve.Details, 3, "content URL + 2 varian thumbnail harus dilaporkan semua")
	assert.Contains(t, ve.Details, "Missing content URL for primary language.")
	assert.Contains(t, ve.Details, "Missing required lesson thumbnail 'portrait' for en.")
	assert.Contains(t, ve.Details, "Missing required lesson thumbnail 'landscape' for en.")

	// publish harus atomic: tidak ada mutasi apa pun saat gagal
	assert.Equal(t, constants.StatusScheduled, lesson.LessonStatus)
	assert.Nil(t, lesson.LessonPublishedAt)
}

func TestTransitionProgramPosterValidation(t *testing.T) {
	now := time.Now().UTC()

	program := &programModel.ProgramModel{
		ProgramStatus:          constants.StatusDraft,
		ProgramLanguagePrimary: "en",
		ProgramPosterAssetsByLanguage: datatypes.JSONMap{
			"en": map[string]interface{}{
				"portrait": "https://cdn.example.com/posters/p.jpg",
				// landscape sengaja kosong
			},
		},
	}

	err := Transition(program, constants.StatusPublished, constants.RoleAdmin, now, nil)
	ve, isVE := AsValidationError(err)
	require.True(t, isVE)
	assert.Equal(t, []string{"Missing required program poster 'landscape' for en."}, ve.Details)
	assert.Equal(t, constants.StatusDraft, program.ProgramStatus)

	// lengkapi poster → publish jalan
	program.ProgramPosterAssetsByLanguage["en"] = map[string]interface{}{
		"portrait":  "https://cdn.example.com/posters/p.jpg",
		"landscape": "https://cdn.example.com/posters/l.jpg",
	}
	require.NoError(t, Transition(program, constants.StatusPublished, constants.RoleAdmin, now, nil))
	assert.Equal(t, constants.StatusPublished, program.ProgramStatus)
	require.NotNil(t, program.ProgramPublishedAt)
}

func TestTransitionScheduleRequiresFuturePublishAt(t *testing.T) {
	now := time.Now().UTC()

	lesson := completeLesson(constants.StatusDraft)
	err := Transition(lesson, constants.StatusScheduled, constants.RoleEditor, now, nil)
	_, isVE := AsValidationError(err)
	require.True(t, isVE, "tanpa publish_at harus gagal")

	past := now.Add(-time.Minute)
	lesson = completeLesson(constants.StatusDraft)
	err = Transition(lesson, constants.StatusScheduled, constants.RoleEditor, now, &past)
	_, isVE = AsValidationError(err)
	require.True(t, isVE, "publish_at di masa lalu harus gagal")

	future := now.Add(30 * time.Minute)
	lesson = completeLesson(constants.StatusDraft)
	require.NoError(t, Transition(lesson, constants.StatusScheduled, constants.RoleEditor, now, &future))
	assert.Equal(t, constants.StatusScheduled, lesson.LessonStatus)
	require.NotNil(t, lesson.LessonPublishAt)
	assert.Equal(t, future, *lesson.LessonPublishAt)
}

func TestTransitionUnknownTargetStatus(t *testing.T) {
	lesson := completeLesson(constants.StatusDraft)
	err := Transition(lesson, "live", constants.RoleAdmin, time.Now().UTC(), nil)
	_, isVE := AsValidationError(err)
	require.True(t, isVE)
}
