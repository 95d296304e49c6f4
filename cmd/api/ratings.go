package main

import (
	"errors"
	"net/http"
	"strconv"

	"loocator/internal/ratings"
	"loocator/internal/store"

	"github.com/go-chi/chi/v5"
)

type createRatingPayload struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// createToiletRatingHandler godoc
//
//	@Summary		Rate a toilet
//	@Description	Submits the caller's rating for a toilet. Rating the same toilet again replaces the previous score and comment.
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			toiletID	path		int					true	"Toilet ID"
//	@Param			payload		body		createRatingPayload	true	"Score and optional comment"
//	@Success		201			{object}	store.Rating		"Rating stored"
//	@Failure		400			{object}	error				"Invalid score or payload"
//	@Failure		401			{object}	error				"Unauthorized"
//	@Failure		404			{object}	error				"Toilet not found"
//	@Failure		500			{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID}/ratings [post]
func (app *application) createToiletRatingHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	var payload createRatingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	rating, err := app.ratings.Submit(r.Context(), ratings.SubmitInput{
		ToiletID:  toiletID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Score:     payload.Score,
		Comment:   payload.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrInvalidScore):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, ratings.ErrUnauthenticated):
			app.unauthorizedErrorResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, rating); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getToiletRatingsHandler godoc
//
//	@Summary		List a toilet's ratings
//	@Description	Returns a toilet's ratings newest first, together with the stored aggregate.
//	@Tags			ratings
//	@Produce		json
//	@Param			toiletID	path		int				true	"Toilet ID"
//	@Success		200			{object}	map[string]any	"ratings, total and average"
//	@Failure		400			{object}	error			"Invalid toilet ID"
//	@Failure		404			{object}	error			"Toilet not found"
//	@Failure		500			{object}	error			"Internal server error"
//	@Router			/toilets/{toiletID}/ratings [get]
func (app *application) getToiletRatingsHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	toilet, err := app.store.Toilets.GetByID(r.Context(), toiletID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	list, err := app.ratings.ListForToilet(r.Context(), toiletID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"ratings": list,
		"total":   toilet.TotalRatings,
		"average": toilet.AverageRating,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteToiletRatingHandler godoc
//
//	@Summary		Delete a rating
//	@Description	Deletes a rating. Only its author or an admin may do this; the toilet's aggregate is recomputed afterwards.
//	@Tags			ratings
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet ID"
//	@Param			ratingID	path		int		true	"Rating ID"
//	@Success		200			{object}	map[string]string	"rating deleted"
//	@Failure		400			{object}	error	"Invalid rating ID"
//	@Failure		401			{object}	error	"Unauthorized"
//	@Failure		403			{object}	error	"Caller is neither author nor admin"
//	@Failure		404			{object}	error	"Rating not found"
//	@Failure		500			{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID}/ratings/{ratingID} [delete]
func (app *application) deleteToiletRatingHandler(w http.ResponseWriter, r *http.Request) {
	ratingID, err := strconv.ParseInt(chi.URLParam(r, "ratingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid rating ID"))
		return
	}

	user := getUserFromContext(r)

	if err := app.ratings.Delete(r.Context(), ratingID, user.ID); err != nil {
		switch {
		case errors.Is(err, ratings.ErrUnauthenticated):
			app.unauthorizedErrorResponse(w, r, err)
		case errors.Is(err, ratings.ErrNotOwner):
			app.forbiddenResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "rating deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
