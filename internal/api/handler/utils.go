package handler

import (
	"net/http"

	"portfolio_api/internal/common"
	"portfolio_api/internal/platform/config"
)

// respondError renders a service error with the status mapped from its kind.
// Internal details are hidden in production; elsewhere the wrapped message is
// returned to ease debugging.
func respondError(w http.ResponseWriter, err error) {
	status := common.HTTPStatusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError && config.AppConfig != nil && config.AppConfig.IsProduction() {
		message = "Internal server error"
	}
	common.RespondWithError(w, status, message)
}
