package api

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/domain"
	"alcyxob/irontrack/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// LogSetRequest defines the expected JSON for logging one performed set.
type LogSetRequest struct {
	Date     string  `json:"date" binding:"omitempty"` // YYYY-MM-DD, defaults to today
	Category string  `json:"category" binding:"required"`
	Exercise string  `json:"exercise" binding:"required"`
	Weight   float64 `json:"weight" binding:"omitempty,gte=0"`
	Reps     int     `json:"reps" binding:"required,gte=1"`
}

// RegisterExerciseRequest defines the expected JSON for registering a
// custom category/exercise pair.
type RegisterExerciseRequest struct {
	Category string `json:"category" binding:"required"`
	Exercise string `json:"exercise" binding:"required"`
}

type SetsResponse struct {
	Sets  []domain.WorkoutSet `json:"sets"`
	Total int                 `json:"total"`
}

// LogSet records one performed set.
func (h *WorkoutHandler) LogSet(c *gin.Context) {
	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid set: "+err.Error())
		return
	}

	set, err := h.workoutService.LogSet(c.Request.Context(), req.Date, req.Category, req.Exercise, req.Weight, req.Reps)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) || errors.Is(err, service.ErrInvalidDate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("failed to log set [%s / %s]: %s", req.Category, req.Exercise, err)
		abortWithError(c, http.StatusInternalServerError, "failed to save set")
		return
	}

	log.Debugf("set logged: %d reps @ %.1fkg for %s on %s", set.Reps, set.Weight, set.Exercise, set.Date)
	c.JSON(http.StatusCreated, set)
}

// RegisterExercise adds a custom exercise to the catalog via its
// placeholder row.
func (h *WorkoutHandler) RegisterExercise(c *gin.Context) {
	var req RegisterExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "category and exercise are required")
		return
	}

	set, err := h.workoutService.RegisterExercise(c.Request.Context(), req.Category, req.Exercise)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("failed to register exercise [%s / %s]: %s", req.Category, req.Exercise, err)
		abortWithError(c, http.StatusInternalServerError, "failed to register exercise")
		return
	}

	c.JSON(http.StatusCreated, set)
}

// ListSets returns history rows, optionally filtered by date or
// exercise. ?only_logged=true drops placeholder rows, which the
// past-sets views use.
func (h *WorkoutHandler) ListSets(c *gin.Context) {
	onlyLogged := false
	if onlyLoggedStr := c.Query("only_logged"); onlyLoggedStr != "" {
		var err error
		onlyLogged, err = strconv.ParseBool(onlyLoggedStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "failed to parse only_logged param")
			return
		}
	}

	sets, err := h.workoutService.Sets(c.Request.Context(), service.SetFilter{
		Date:       c.Query("date"),
		Exercise:   c.Query("exercise"),
		OnlyLogged: onlyLogged,
	})
	if err != nil {
		log.Errorf("list sets error: %s", err)
		abortWithError(c, http.StatusInternalServerError, "failed to load sets")
		return
	}

	c.JSON(http.StatusOK, SetsResponse{Sets: sets, Total: len(sets)})
}

// GetCategories returns the selectable category names.
func (h *WorkoutHandler) GetCategories(c *gin.Context) {
	categories, err := h.workoutService.Categories(c.Request.Context())
	if err != nil {
		log.Errorf("get categories error: %s", err)
		abortWithError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryExercises returns the selectable exercises for one category.
func (h *WorkoutHandler) GetCategoryExercises(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		abortWithError(c, http.StatusBadRequest, "category is required")
		return
	}
	exercises, err := h.workoutService.ExercisesFor(c.Request.Context(), category)
	if err != nil {
		log.Errorf("get exercises for category %q error: %s", category, err)
		abortWithError(c, http.StatusInternalServerError, "failed to load exercises")
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "exercises": exercises})
}

// Export streams the full table as CSV or JSON for download.
func (h *WorkoutHandler) Export(c *gin.Context) {
	sets, err := h.workoutService.Sets(c.Request.Context(), service.SetFilter{})
	if err != nil {
		log.Errorf("export error: %s", err)
		abortWithError(c, http.StatusInternalServerError, "failed to load sets")
		return
	}

	switch format := c.DefaultQuery("format", "csv"); format {
	case "json":
		c.Header("Content-Disposition", `attachment; filename="workout_log.json"`)
		c.JSON(http.StatusOK, sets)
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="workout_log.csv"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		writer := csv.NewWriter(c.Writer)
		_ = writer.Write([]string{"date", "category", "exercise", "weight", "reps"})
		for _, set := range sets {
			_ = writer.Write([]string{
				set.Date,
				set.Category,
				set.Exercise,
				strconv.FormatFloat(set.Weight, 'f', -1, 64),
				strconv.Itoa(set.Reps),
			})
		}
		writer.Flush()
	default:
		abortWithError(c, http.StatusBadRequest, "unknown export format: "+format)
	}
}
