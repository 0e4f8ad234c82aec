package handlers

import (
	"errors"
	"log"
	"net/http"

	"retail_assistant/internal/adapter/tools"
	"retail_assistant/internal/usecase"
	"retail_assistant/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	log.Printf("[%s][handler] request failed path=%s status=%d err=%v", area, c.FullPath(), appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context, area string, err error) {
	log.Printf("[%s][handler] invalid payload path=%s err=%v", area, c.FullPath(), err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var (
		unresolved *usecase.UnresolvedItemsError
		lookup     *usecase.CatalogLookupError
		invalid    *usecase.ValidationError
	)

	switch {
	case errors.As(err, &unresolved):
		items := make([]map[string]any, 0, len(unresolved.Items))
		for _, it := range unresolved.Items {
			items = append(items, lookupDetails(it.Cause, map[string]any{"label": it.Label}))
		}
		return pkg.NewDomainError("PRODUCT_NOT_AVAILABLE", unresolved.Error(), err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"items": items, "suggestions": unresolved.Suggestions})
	case errors.As(err, &lookup):
		return pkg.NewDomainError("CATALOG_LOOKUP_FAILED", lookup.Error(), err, http.StatusUnprocessableEntity).
			WithDetails(lookupDetails(lookup, map[string]any{}))
	case errors.As(err, &invalid):
		details := map[string]any{}
		if invalid.Field != "" {
			details["field"] = invalid.Field
		}
		return pkg.NewDomainError("INVALID_INPUT", invalid.Error(), err, http.StatusBadRequest).WithDetails(details)
	case errors.Is(err, usecase.ErrState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, tools.ErrUnknownTool):
		return pkg.NewDomainError("TOOL_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func lookupDetails(e *usecase.CatalogLookupError, into map[string]any) map[string]any {
	if e == nil {
		return into
	}
	into["reason"] = e.Reason
	into["field"] = e.Field
	into["value"] = e.Value
	into["suggestions"] = e.Suggestions
	return into
}
