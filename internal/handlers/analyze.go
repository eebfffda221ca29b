package handlers

import (
	"context"
	"fmt"
	"net/http"

	"cpace/internal/cache"
	"cpace/internal/models"

	"github.com/labstack/echo/v4"
)

// LeadAnalyzer runs the AI qualification analysis for one contact.
type LeadAnalyzer interface {
	Analyze(ctx context.Context, contact models.Contact, counts *models.EngagementCounts, events []models.Event) (*models.LeadAnalysis, error)
}

// AnalyzeContactHandler handles AI lead qualification requests
// @Summary Analyze a contact
// @Description Run AI lead qualification for a contact. Results are cached per contact; a repeat request returns the cached analysis flagged as such.
// @Tags analysis
// @Accept json
// @Produce json
// @Param contactId path int true "Contact ID"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/contacts/{contactId}/analyze [post]
func AnalyzeContactHandler(crmClient ContactReader, leads LeadAnalyzer, analyses *cache.AnalysisCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := contactIDParam(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		}

		// Cache check happens before any network work.
		if cached, ok := analyses.Get(contactID); ok {
			cached.Cached = true
			return c.JSON(http.StatusOK, cached)
		}

		ctx := c.Request().Context()

		detail, err := crmClient.GetContact(ctx, contactID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("CRM API error: %v", err),
			})
		}

		// Events are best-effort context; a failed fetch degrades to an
		// empty list rather than failing the analysis.
		events, err := crmClient.GetContactEvents(ctx, contactID)
		if err != nil {
			events = nil
		}

		analysis, err := leads.Analyze(ctx, detail.Data, &detail.Counts, events)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Analysis error: %v", err),
			})
		}

		result := models.AnalysisResult{
			ContactID:   contactID,
			ContactName: detail.Data.FullName(),
			Analysis:    *analysis,
			Cached:      false,
		}
		analyses.Put(contactID, result)

		return c.JSON(http.StatusOK, result)
	}
}

// ClearAnalysisCacheHandler handles clearing cached analyses, either one
// contact's entry or the whole cache when no contact id is given
// @Summary Clear cached analyses
// @Description Remove one contact's cached analysis, or all of them
// @Tags analysis
// @Produce json
// @Param contactId path int false "Contact ID"
// @Success 200 {object} models.CacheClearResponse
// @Router /api/analysis-cache [delete]
func ClearAnalysisCacheHandler(analyses *cache.AnalysisCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if param := c.Param("contactId"); param != "" {
			contactID, err := contactIDParam(c)
			if err != nil {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			}
			analyses.Clear(contactID)
			return c.JSON(http.StatusOK, models.CacheClearResponse{
				Message: fmt.Sprintf("Cleared cached analysis for contact %d", contactID),
				Entries: analyses.Size(),
			})
		}

		analyses.ClearAll()
		return c.JSON(http.StatusOK, models.CacheClearResponse{
			Message: "Cleared all cached analyses",
			Entries: analyses.Size(),
		})
	}
}
