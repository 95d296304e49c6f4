package main

import (
	"net/http"

	"loocator/internal/params"
)

// listAllRatingsHandler godoc
//
//	@Summary		List all ratings (admin)
//	@Description	Returns every rating in the system, newest first, for moderation.
//	@Tags			admin
//	@Produce		json
//	@Param			page	query		int				false	"Page number (default: 1)"
//	@Param			limit	query		int				false	"Items per page (default: 15)"
//	@Success		200		{object}	map[string]any	"ratings with pagination"
//	@Failure		401		{object}	error			"Unauthorized"
//	@Failure		403		{object}	error			"Forbidden"
//	@Failure		500		{object}	error			"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/admin/ratings [get]
func (app *application) listAllRatingsHandler(w http.ResponseWriter, r *http.Request) {
	pg := params.ParsePagination(r.URL.Query())

	list, total, err := app.ratings.ListAll(r.Context(), pg.Limit, pg.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	pg.ComputeMeta(total)

	response := map[string]interface{}{
		"ratings":    list,
		"pagination": pg,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
