package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/stats"
)

// StatsHandler exposes the chart-feeding aggregates.
type StatsHandler struct {
	analyzer *stats.Analyzer
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(analyzer *stats.Analyzer) *StatsHandler {
	return &StatsHandler{analyzer: analyzer}
}

// Progress returns the per-day reps/weight/volume series for one exercise.
func (h *StatsHandler) Progress(c *gin.Context) {
	exercise := c.Param("exercise")
	if exercise == "" {
		abortWithError(c, http.StatusBadRequest, "exercise is required")
		return
	}

	points, err := h.analyzer.ExerciseProgress(c.Request.Context(), exercise)
	if err != nil {
		log.Errorf("exercise progress for %q error: %s", exercise, err)
		abortWithError(c, http.StatusInternalServerError, "failed to compute exercise progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": exercise, "progress": points})
}

// Consistency returns distinct workout days per week or month.
func (h *StatsHandler) Consistency(c *gin.Context) {
	period := stats.Period(c.DefaultQuery("period", string(stats.PeriodWeek)))
	if period != stats.PeriodWeek && period != stats.PeriodMonth {
		abortWithError(c, http.StatusBadRequest, "period must be week or month")
		return
	}

	buckets, err := h.analyzer.Consistency(c.Request.Context(), period)
	if err != nil {
		log.Errorf("consistency (%s) error: %s", period, err)
		abortWithError(c, http.StatusInternalServerError, "failed to compute consistency")
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "consistency": buckets})
}

// CategoryDistribution returns per-category set counts or volume totals.
func (h *StatsHandler) CategoryDistribution(c *gin.Context) {
	metric, ok := parseMetric(c)
	if !ok {
		return
	}

	entries, err := h.analyzer.CategoryDistribution(c.Request.Context(), metric)
	if err != nil {
		log.Errorf("category distribution (%s) error: %s", metric, err)
		abortWithError(c, http.StatusInternalServerError, "failed to compute category distribution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"metric": metric, "categories": entries})
}

// TopExercises returns the top-n exercises by set count or volume.
func (h *StatsHandler) TopExercises(c *gin.Context) {
	metric, ok := parseMetric(c)
	if !ok {
		return
	}

	topN := stats.DefaultTopN
	if nStr := c.Query("n"); nStr != "" {
		var err error
		topN, err = strconv.Atoi(nStr)
		if err != nil || topN < 1 {
			abortWithError(c, http.StatusBadRequest, "n must be a positive integer")
			return
		}
	}

	entries, err := h.analyzer.TopExercises(c.Request.Context(), metric, topN)
	if err != nil {
		log.Errorf("top exercises (%s, n=%d) error: %s", metric, topN, err)
		abortWithError(c, http.StatusInternalServerError, "failed to compute top exercises")
		return
	}
	c.JSON(http.StatusOK, gin.H{"metric": metric, "exercises": entries})
}

func parseMetric(c *gin.Context) (stats.Metric, bool) {
	metric := stats.Metric(c.DefaultQuery("metric", string(stats.MetricVolume)))
	if metric != stats.MetricSets && metric != stats.MetricVolume {
		abortWithError(c, http.StatusBadRequest, "metric must be sets or volume")
		return "", false
	}
	return metric, true
}
