package services

import (
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCycleForUserFallsBackToPartner(t *testing.T) {
	repos := newTestRepositories(t)
	owner, partner := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)

	saved, err := service.SaveCycle(owner.ID, "2025-02-01", 30, 6, time.Now())
	require.NoError(t, err)
	require.Equal(t, owner.CoupleCode, saved.CoupleCode)

	fromPartner, err := service.CycleForUser(partner.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, fromPartner.ID)
	require.Equal(t, "2025-02-01", fromPartner.LastPeriodDate)
}

func TestSaveCycleNormalizesLengths(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)

	saved, err := service.SaveCycle(owner.ID, "2025-02-01", 0, 0, time.Now())
	require.NoError(t, err)
	require.Equal(t, models.DefaultCycleLength, saved.CycleLength)
	require.Equal(t, models.DefaultPeriodLength, saved.PeriodLength)
}

func TestStartPeriodFirstTimeCreatesBaseline(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)

	result, err := service.StartPeriod(owner.ID, "2025-01-01", "", time.Now())
	require.NoError(t, err)
	require.Equal(t, "Nuovo ciclo registrato!", result.Message)
	require.Nil(t, result.ActualCycleLength, "first period has nothing to measure against")
	require.NotEmpty(t, result.HistoryID)

	cycle, err := service.CycleForUser(owner.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-01-01", cycle.LastPeriodDate)
	require.Equal(t, models.DefaultCycleLength, cycle.CycleLength)
}

func TestStartPeriodMeasuresAgainstPrevious(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)
	now := time.Now()

	_, err := service.StartPeriod(owner.ID, "2025-01-01", "", now)
	require.NoError(t, err)

	// 30 days later against the default 28-day expectation.
	result, err := service.StartPeriod(owner.ID, "2025-01-31", "", now)
	require.NoError(t, err)
	require.NotNil(t, result.ActualCycleLength)
	require.Equal(t, 30, *result.ActualCycleLength)
	require.NotNil(t, result.WasEarly)
	require.False(t, *result.WasEarly)
	require.NotNil(t, result.DaysDifference)
	require.Equal(t, 2, *result.DaysDifference)
}

func TestStartPeriodEarlyReportsAbsoluteDifference(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)
	now := time.Now()

	_, err := service.StartPeriod(owner.ID, "2025-01-01", "", now)
	require.NoError(t, err)

	result, err := service.StartPeriod(owner.ID, "2025-01-26", "", now)
	require.NoError(t, err)
	require.NotNil(t, result.WasEarly)
	require.True(t, *result.WasEarly)
	require.Equal(t, 3, *result.DaysDifference)
}

func TestStartPeriodReestimatesCycleLength(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)
	now := time.Now()

	starts := []string{"2025-01-01", "2025-01-31", "2025-03-02", "2025-04-01"}
	for _, start := range starts {
		_, err := service.StartPeriod(owner.ID, start, "", now)
		require.NoError(t, err)
	}

	// Three measured 30-day cycles outweigh the 28-day default.
	cycle, err := service.CycleForUser(owner.ID)
	require.NoError(t, err)
	require.Equal(t, 30, cycle.CycleLength)
}

func TestHistoryReportStatsAndRegularity(t *testing.T) {
	repos := newTestRepositories(t)
	owner, partner := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)
	now := time.Now()

	for _, start := range []string{"2025-01-01", "2025-01-29", "2025-02-26", "2025-03-26"} {
		_, err := service.StartPeriod(owner.ID, start, "", now)
		require.NoError(t, err)
	}

	report, err := service.HistoryReport(owner.ID)
	require.NoError(t, err)
	require.Equal(t, 4, report.Stats.TotalTracked)
	require.NotNil(t, report.Stats.AverageCycleLength)
	require.Equal(t, 28.0, *report.Stats.AverageCycleLength)
	require.Equal(t, "molto regolare", report.Stats.Regularity)
	require.Equal(t, "2025-03-26", report.History[0].PeriodStartDate, "history must be newest first")

	// The partner reads the same history through the couple code.
	partnerReport, err := service.HistoryReport(partner.ID)
	require.NoError(t, err)
	require.Equal(t, 4, partnerReport.Stats.TotalTracked)
}

func TestEndPeriodUnknownRecord(t *testing.T) {
	repos := newTestRepositories(t)
	owner, _ := registerCouple(t, repos)
	service := NewCycleService(repos.Cycles, repos.Users)

	err := service.EndPeriod(owner.ID, "missing", "2025-01-05")
	require.Error(t, err)
}
