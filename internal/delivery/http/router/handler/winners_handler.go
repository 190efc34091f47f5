package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expo/internal/delivery/http/response"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const dateOnlyLayout = "2006-01-02"

// WinnersHandlerParams holds dependencies for WinnersHandler, injected by Fx.
type WinnersHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// WinnersHandler serves the owner leaderboard
type WinnersHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewWinnersHandler is the constructor for WinnersHandler
func NewWinnersHandler(params WinnersHandlerParams) *WinnersHandler {
	return &WinnersHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetWinners ranks owners, as JSON or as CSV with format=csv
func (h *WinnersHandler) GetWinners(c echo.Context) error {
	query, err := parseWinnersQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if c.QueryParam("format") == formatCSV {
		data, err := h.reportUC.WinnersCSV(ctx, query)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.CSV(c, "winners_report.csv", data)
	}

	report, err := h.reportUC.Winners(ctx, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

func parseWinnersQuery(c echo.Context) (usecase.WinnersQuery, error) {
	query := usecase.WinnersQuery{
		Criteria: usecase.WinnersCriteria(c.QueryParam("criteria")),
		Limit:    usecase.DefaultWinnersLimit,
	}
	if query.Criteria == "" {
		query.Criteria = usecase.CriteriaRevenue
	}

	if err := echo.QueryParamsBinder(c).Int("limit", &query.Limit).BindError(); err != nil {
		return query, domainerrors.ErrValidationFailed.WithDetails("limit must be an integer")
	}

	var err error
	if query.DateFrom, err = parseDateParam(c.QueryParam("dateFrom")); err != nil {
		return query, domainerrors.ErrValidationFailed.WithDetails("dateFrom is not a valid date")
	}
	if query.DateTo, err = parseDateParam(c.QueryParam("dateTo")); err != nil {
		return query, domainerrors.ErrValidationFailed.WithDetails("dateTo is not a valid date")
	}

	return query, nil
}

// parseDateParam accepts RFC 3339 timestamps and bare dates. A bare date
// means midnight UTC. An empty value is an open bound.
func parseDateParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}

	return time.Parse(dateOnlyLayout, raw)
}
