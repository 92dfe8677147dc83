package scheduler

import (
	"testing"
	"time"

	"lessoncms_backend/internals/constants"
	lessonModel "lessoncms_backend/internals/features/cms/lessons/model"
	programModel "lessoncms_backend/internals/features/cms/programs/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func scheduledLesson(programID uuid.UUID, publishAt time.Time, complete bool) lessonModel.LessonModel {
	l := lessonModel.LessonModel{
		LessonID:                     uuid.New(),
		LessonProgramID:              programID,
		LessonTitle:                  "Lesson",
		LessonStatus:                 constants.StatusScheduled,
		LessonPublishAt:              &publishAt,
		LessonContentLanguagePrimary: "en",
	}
	if complete {
		l.LessonContentURLsByLanguage = datatypes.JSONMap{"en": "https://cdn.example.com/v.mp4"}
		l.LessonThumbnailAssetsByLanguage = datatypes.JSONMap{
			"en": map[string]interface{}{
				"portrait":  "https://cdn.example.com/p.jpg",
				"landscape": "https://cdn.example.com/l.jpg",
			},
		}
	}
	return l
}

func draftProgram() *programModel.ProgramModel {
	return &programModel.ProgramModel{
		ProgramID:              uuid.New(),
		ProgramTitle:           "Program",
		ProgramStatus:          constants.StatusDraft,
		ProgramLanguagePrimary: "en",
	}
}

func TestPlanCycleNothingDueBeforePublishAt(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lesson := scheduledLesson(program.ProgramID, publishAt, true)

	now := publishAt.Add(-time.Minute)
	plan := PlanCycle(
		[]lessonModel.LessonModel{lesson},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		now,
	)

	assert.Empty(t, plan.Lessons)
	assert.Empty(t, plan.Programs)
	assert.Empty(t, plan.Skipped)
}

func TestPlanCyclePromotesDueLessonAndCascades(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lesson := scheduledLesson(program.ProgramID, publishAt, true)

	now := publishAt // now >= T sudah due
	plan := PlanCycle(
		[]lessonModel.LessonModel{lesson},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		now,
	)

	require.Len(t, plan.Lessons, 1)
	promoted := plan.Lessons[0]
	assert.Equal(t, constants.StatusPublished, promoted.LessonStatus)
	require.NotNil(t, promoted.LessonPublishedAt)
	assert.Equal(t, now, *promoted.LessonPublishedAt)

	// cascade: program draft ikut naik, tanpa validasi poster
	require.Len(t, plan.Programs, 1)
	assert.Equal(t, constants.StatusPublished, plan.Programs[0].ProgramStatus)
	require.NotNil(t, plan.Programs[0].ProgramPublishedAt)
	assert.Empty(t, plan.Skipped)
}

func TestPlanCycleRetryUntilReady(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lesson := scheduledLesson(program.ProgramID, publishAt, false) // asset belum lengkap

	plan := PlanCycle(
		[]lessonModel.LessonModel{lesson},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		publishAt.Add(time.Hour),
	)

	// lesson TIDAK dipromosikan dan TIDAK kehilangan jadwalnya
	assert.Empty(t, plan.Lessons)
	assert.Empty(t, plan.Programs)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, lesson.LessonID, plan.Skipped[0].LessonID)
	assert.Contains(t, plan.Skipped[0].Reasons, "Missing content URL for primary language.")
}

func TestPlanCycleFailureDoesNotBlockOthers(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	broken := scheduledLesson(program.ProgramID, publishAt, false)
	ready := scheduledLesson(program.ProgramID, publishAt, true)

	plan := PlanCycle(
		[]lessonModel.LessonModel{broken, ready},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		publishAt,
	)

	require.Len(t, plan.Lessons, 1)
	assert.Equal(t, ready.LessonID, plan.Lessons[0].LessonID)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, broken.LessonID, plan.Skipped[0].LessonID)
	require.Len(t, plan.Programs, 1)
}

func TestPlanCycleProgramPromotedOncePerCycle(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := scheduledLesson(program.ProgramID, publishAt, true)
	b := scheduledLesson(program.ProgramID, publishAt, true)

	plan := PlanCycle(
		[]lessonModel.LessonModel{a, b},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		publishAt,
	)

	assert.Len(t, plan.Lessons, 2)
	assert.Len(t, plan.Programs, 1, "program yang sama hanya naik sekali per cycle")
}

func TestPlanCycleNoCascadeForPublishedOrArchivedProgram(t *testing.T) {
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	published := draftProgram()
	published.ProgramStatus = constants.StatusPublished
	archived := draftProgram()
	archived.ProgramStatus = constants.StatusArchived

	a := scheduledLesson(published.ProgramID, publishAt, true)
	b := scheduledLesson(archived.ProgramID, publishAt, true)

	plan := PlanCycle(
		[]lessonModel.LessonModel{a, b},
		map[uuid.UUID]*programModel.ProgramModel{
			published.ProgramID: published,
			archived.ProgramID:  archived,
		},
		publishAt,
	)

	assert.Len(t, plan.Lessons, 2)
	assert.Empty(t, plan.Programs, "program published/archived tidak ikut cascade")
}

func TestPlanCycleIdempotent(t *testing.T) {
	program := draftProgram()
	publishAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lesson := scheduledLesson(program.ProgramID, publishAt, true)

	first := PlanCycle(
		[]lessonModel.LessonModel{lesson},
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		publishAt,
	)
	require.Len(t, first.Lessons, 1)

	// cycle kedua melihat state hasil cycle pertama: tidak ada yang scheduled lagi
	second := PlanCycle(
		first.Lessons,
		map[uuid.UUID]*programModel.ProgramModel{program.ProgramID: program},
		publishAt.Add(time.Minute),
	)
	assert.Empty(t, second.Lessons, "cycle kedua tidak boleh promote apa pun")
	assert.Empty(t, second.Skipped)
}
