package service

import (
	"testing"
	"time"

	"ranchops/internal/model"

	"github.com/stretchr/testify/assert"
)

func datePtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestBreedingStatusBornWinsOverOverdue(t *testing.T) {
	today := day("2026-08-27")
	b := model.BreedingRecord{
		ExpectedBirthDate: datePtr("2026-08-01"), // long past
		ActualBirthDate:   datePtr("2026-08-05"),
	}
	assert.Equal(t, "born", breedingStatus(b, today))
}

func TestBreedingStatusOverdueWhenExpectedPassed(t *testing.T) {
	today := day("2026-08-27")
	b := model.BreedingRecord{ExpectedBirthDate: datePtr("2026-08-26")}
	assert.Equal(t, "overdue", breedingStatus(b, today))
}

func TestBreedingStatusPregnantOnExpectedDay(t *testing.T) {
	// The expected day itself is not overdue yet.
	today := day("2026-08-27")
	b := model.BreedingRecord{ExpectedBirthDate: datePtr("2026-08-27")}
	assert.Equal(t, "pregnant", breedingStatus(b, today))
}

func TestBreedingStatusPregnantBeforeExpected(t *testing.T) {
	today := day("2026-08-27")
	b := model.BreedingRecord{ExpectedBirthDate: datePtr("2026-12-01")}
	assert.Equal(t, "pregnant", breedingStatus(b, today))
}

func TestBreedingStatusPregnantWithoutExpectedDate(t *testing.T) {
	today := day("2026-08-27")
	assert.Equal(t, "pregnant", breedingStatus(model.BreedingRecord{}, today))
}
