package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stellarlinkco/answerbench/internal/app"
	"github.com/stellarlinkco/answerbench/internal/program"
	"github.com/stellarlinkco/answerbench/internal/store"
)

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

type askResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type evalResponse struct {
	ID             string               `json:"id"`
	Dataset        string               `json:"dataset"`
	Provider       string               `json:"provider"`
	SplitRatio     float64              `json:"split_ratio"`
	TrainSize      int                  `json:"train_size"`
	ValidationSize int                  `json:"validation_size"`
	Correct        int                  `json:"correct"`
	Total          int                  `json:"total"`
	Accuracy       float64              `json:"accuracy"`
	StartedAt      time.Time            `json:"started_at"`
	FinishedAt     time.Time            `json:"finished_at"`
	Predictions    []program.Prediction `json:"predictions,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetDataset(c *gin.Context) {
	if s.ds == nil {
		respondError(c, http.StatusInternalServerError, errors.New("no dataset configured"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":     s.ds.Name,
		"examples": s.ds.Len(),
	})
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing question"))
		return
	}

	answer, err := s.prog.Run(c.Request.Context(), question)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, askResponse{
		Question: question,
		Answer:   answer,
	})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	outcome, err := app.Evaluate(c.Request.Context(), s.config, s.ds, s.prog, s.pname, s.store)
	if err != nil {
		if errors.Is(err, program.ErrEmptyValidationSet) {
			respondError(c, http.StatusUnprocessableEntity, err)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, evalResponseFromRecord(outcome.Record, outcome.Report.Predictions))
}

func (s *Server) handleListEvals(c *gin.Context) {
	if s.store == nil {
		respondError(c, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	limit, err := parseLimitParam(c.Query("limit"), 20)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	recs, err := s.store.ListEvals(c.Request.Context(), store.EvalFilter{
		Dataset:  strings.TrimSpace(c.Query("dataset")),
		Provider: strings.TrimSpace(c.Query("provider")),
		Limit:    limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]evalResponse, 0, len(recs))
	for _, rec := range recs {
		// Listings omit per-example predictions; fetch one eval for detail.
		resp := evalResponseFromRecord(rec, nil)
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetEval(c *gin.Context) {
	if s.store == nil {
		respondError(c, http.StatusServiceUnavailable, errors.New("no store configured"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("missing eval id"))
		return
	}

	rec, err := s.store.GetEval(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, fmt.Errorf("eval %q not found", id))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, evalResponseFromRecord(rec, predictionsFromRecords(rec.Predictions)))
}

func evalResponseFromRecord(rec *store.EvalRecord, predictions []program.Prediction) evalResponse {
	if rec == nil {
		return evalResponse{}
	}
	return evalResponse{
		ID:             rec.ID,
		Dataset:        rec.Dataset,
		Provider:       rec.Provider,
		SplitRatio:     rec.SplitRatio,
		TrainSize:      rec.TrainSize,
		ValidationSize: rec.ValidationSize,
		Correct:        rec.Correct,
		Total:          rec.Total,
		Accuracy:       rec.Accuracy,
		StartedAt:      rec.StartedAt,
		FinishedAt:     rec.FinishedAt,
		Predictions:    predictions,
	}
}

func predictionsFromRecords(in []store.PredictionRecord) []program.Prediction {
	out := make([]program.Prediction, 0, len(in))
	for _, p := range in {
		out = append(out, program.Prediction{
			Question:  p.Question,
			Expected:  p.Expected,
			Predicted: p.Predicted,
			Correct:   p.Correct,
		})
	}
	return out
}

func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseLimitParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return n, nil
}
