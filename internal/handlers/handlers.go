package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto the wire. Validation maps
// to 400, missing entities to 404, duplicates and conflicts to 409,
// credential failures to 401; anything else hides behind the fallback 500
// message.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// requireActor pulls the authenticated actor out of the request context.
// Absence means the auth middleware did not run; the request is rejected.
func requireActor(c *gin.Context, logger *slog.Logger) (domain.User, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return actor, ok
}

// parseLedgerParams reads the shared ledger filter query parameters:
// from (YYYY-MM-DD), year+month, direction, limit and nextToken.
func parseLedgerParams(c *gin.Context) (dto.ListTransactionsParams, error) {
	var params dto.ListTransactionsParams

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return params, errors.New("from must be formatted YYYY-MM-DD")
		}
		params.From = &from
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.New("year must be numeric")
		}
		params.Year = year
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return params, errors.New("month must be 1..12")
		}
		params.Month = time.Month(month)
	}
	if raw := c.Query("direction"); raw != "" {
		dir := domain.FlowDirection(raw)
		if !dir.Valid() {
			return params, errors.New("direction must be INFLOW or OUTFLOW")
		}
		params.Direction = &dir
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return params, errors.New("limit must be a positive integer")
		}
		params.Limit = limit
	}
	if raw := c.Query("nextToken"); raw != "" {
		token := raw
		params.NextToken = &token
	}

	return params, nil
}
