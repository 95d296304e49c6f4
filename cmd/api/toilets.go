package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"loocator/internal/params"
	"loocator/internal/sharecode"
	"loocator/internal/store"

	"github.com/go-chi/chi/v5"
)

type createToiletPayload struct {
	Location string   `json:"location" validate:"required,max=500"`
	Images   []string `json:"images" validate:"omitempty,max=3,dive,url"`
}

// createToiletHandler godoc
//
//	@Summary		Create a toilet
//	@Description	Registers a new toilet in the directory. Admin only.
//	@Tags			toilets
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createToiletPayload	true	"Location and optional image URLs"
//	@Success		201		{object}	store.Toilet		"Toilet created"
//	@Failure		400		{object}	error				"Bad request"
//	@Failure		403		{object}	error				"Forbidden"
//	@Failure		500		{object}	error				"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets [post]
func (app *application) createToiletHandler(w http.ResponseWriter, r *http.Request) {
	var payload createToiletPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	toilet := &store.Toilet{
		Location: payload.Location,
		Images:   payload.Images,
	}

	if err := app.store.Toilets.Create(r.Context(), toilet); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, toilet); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listToiletsHandler godoc
//
//	@Summary		List toilets
//	@Description	Returns toilets newest first. Optional ?search= filters by location substring.
//	@Tags			toilets
//	@Produce		json
//	@Param			search	query		string			false	"Location filter"
//	@Param			page	query		int				false	"Page number (default: 1)"
//	@Param			limit	query		int				false	"Items per page (default: 15)"
//	@Success		200		{object}	map[string]any	"toilets with pagination"
//	@Failure		500		{object}	error			"Internal server error"
//	@Router			/toilets [get]
func (app *application) listToiletsHandler(w http.ResponseWriter, r *http.Request) {
	pg := params.ParsePagination(r.URL.Query())
	search := r.URL.Query().Get("search")

	toilets, total, err := app.store.Toilets.List(r.Context(), search, pg.Limit, pg.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	pg.ComputeMeta(total)

	response := map[string]interface{}{
		"toilets":    toilets,
		"pagination": pg,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getToiletHandler godoc
//
//	@Summary		Get a toilet
//	@Description	Returns one toilet with its stored rating aggregate.
//	@Tags			toilets
//	@Produce		json
//	@Param			toiletID	path		int				true	"Toilet ID"
//	@Success		200			{object}	store.Toilet	"Toilet"
//	@Failure		400			{object}	error			"Invalid toilet ID"
//	@Failure		404			{object}	error			"Toilet not found"
//	@Failure		500			{object}	error			"Internal server error"
//	@Router			/toilets/{toiletID} [get]
func (app *application) getToiletHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := app.jsonResponse(w, http.StatusOK, toilet); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateToiletHandler godoc
//
//	@Summary		Update a toilet
//	@Description	Updates a toilet's location and/or image gallery. Admin only. Rating fields cannot be set here.
//	@Tags			toilets
//	@Accept			json
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet ID"
//	@Param			body		body		object	true	"Fields to update: location, images"
//	@Success		204			{string}	string	"Toilet updated"
//	@Failure		400			{object}	error	"Bad request"
//	@Failure		404			{object}	error	"Toilet not found"
//	@Failure		500			{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID} [patch]
func (app *application) updateToiletHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	var payload struct {
		Location *string   `json:"location"`
		Images   *[]string `json:"images"`
	}
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := make(map[string]interface{})
	if payload.Location != nil {
		updates["location"] = *payload.Location
	}
	if payload.Images != nil {
		if len(*payload.Images) > store.MaxToiletImages {
			app.badRequestResponse(w, r, fmt.Errorf("at most %d images allowed", store.MaxToiletImages))
			return
		}
		updates["images"] = *payload.Images
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	if err := app.store.Toilets.Update(r.Context(), toiletID, updates); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteToiletHandler godoc
//
//	@Summary		Delete a toilet
//	@Description	Removes a toilet and all of its ratings. Admin only.
//	@Tags			toilets
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet ID"
//	@Success		204			{string}	string	"Toilet deleted"
//	@Failure		400			{object}	error	"Invalid toilet ID"
//	@Failure		404			{object}	error	"Toilet not found"
//	@Failure		500			{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID} [delete]
func (app *application) deleteToiletHandler(w http.ResponseWriter, r *http.Request) {
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

	// Clean up the gallery before dropping the row. A Cloudinary failure
	// is logged but does not block the delete.
	for _, url := range toilet.Images {
		if err := app.deletePhotoFromCloudinary(url); err != nil {
			app.logger.Errorw("error deleting toilet photo", "toilet_id", toiletID, "url", url, "error", err)
		}
	}

	if err := app.store.Toilets.Delete(r.Context(), toiletID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadToiletPhotoHandler godoc
//
//	@Summary		Upload a toilet photo
//	@Description	Uploads an image to Cloudinary and appends its URL to the toilet's gallery (max 3). Admin only.
//	@Tags			toilets
//	@Accept			mpfd
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet ID"
//	@Param			image		formData	file	true	"JPEG or PNG image (max 5 MB)"
//	@Success		200			{object}	map[string]string	"Uploaded photo URL"
//	@Failure		400			{object}	error	"Bad request"
//	@Failure		404			{object}	error	"Toilet not found"
//	@Failure		409			{object}	error	"Gallery already full"
//	@Failure		500			{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID}/photos [post]
func (app *application) uploadToiletPhotoHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	exists, err := app.store.Toilets.Exists(r.Context(), toiletID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponse(w, r, store.ErrNotFound)
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		app.badRequestResponse(w, r, errors.New("unable to parse form, file size limit is 5MB"))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("unable to retrieve file"))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		app.badRequestResponse(w, r, errors.New("only jpeg and png images are allowed"))
		return
	}

	url, err := app.uploadToiletImage(file, toiletID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Toilets.AddPhotoURL(r.Context(), toiletID, url); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			// The row was full; the orphaned upload gets removed.
			if delErr := app.deletePhotoFromCloudinary(url); delErr != nil {
				app.logger.Errorw("error deleting orphaned photo", "url", url, "error", delErr)
			}
			app.conflictResponse(w, r, fmt.Errorf("toilet already has %d photos", store.MaxToiletImages))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteToiletPhotoHandler godoc
//
//	@Summary		Delete a toilet photo
//	@Description	Removes a photo URL from the toilet's gallery and deletes the asset from Cloudinary. Admin only.
//	@Tags			toilets
//	@Produce		json
//	@Param			toiletID	path		int		true	"Toilet ID"
//	@Param			photo_url	query		string	true	"Photo URL to remove"
//	@Success		200			{object}	map[string]string	"photo deleted"
//	@Failure		400			{object}	error	"Bad request"
//	@Failure		500			{object}	error	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/toilets/{toiletID}/photos [delete]
func (app *application) deleteToiletPhotoHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, errors.New("photo_url query parameter is required"))
		return
	}

	if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Toilets.RemovePhotoURL(r.Context(), toiletID, photoURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "photo deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getToiletShareCodeHandler godoc
//
//	@Summary		Get a toilet's share code
//	@Description	Returns the opaque code QR stickers encode for this toilet.
//	@Tags			toilets
//	@Produce		json
//	@Param			toiletID	path		int					true	"Toilet ID"
//	@Success		200			{object}	map[string]string	"share code"
//	@Failure		400			{object}	error				"Invalid toilet ID"
//	@Failure		404			{object}	error				"Toilet not found"
//	@Failure		500			{object}	error				"Internal server error"
//	@Router			/toilets/{toiletID}/qr [get]
func (app *application) getToiletShareCodeHandler(w http.ResponseWriter, r *http.Request) {
	toiletID, err := strconv.ParseInt(chi.URLParam(r, "toiletID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid toilet ID"))
		return
	}

	exists, err := app.store.Toilets.Exists(r.Context(), toiletID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponse(w, r, store.ErrNotFound)
		return
	}

	code, err := app.shareCodes.Encode(toiletID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"code": code,
		"url":  fmt.Sprintf("%s/qr/%s", app.config.frontendURL, code),
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// resolveShareCodeHandler godoc
//
//	@Summary		Resolve a share code
//	@Description	Resolves a QR share code back to its toilet.
//	@Tags			toilets
//	@Produce		json
//	@Param			code	path		string			true	"Share code"
//	@Success		200		{object}	store.Toilet	"Toilet"
//	@Failure		400		{object}	error			"Invalid share code"
//	@Failure		404		{object}	error			"Toilet not found"
//	@Failure		500		{object}	error			"Internal server error"
//	@Router			/qr/{code} [get]
func (app *application) resolveShareCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	toiletID, err := app.shareCodes.Decode(code)
	if err != nil {
		if errors.Is(err, sharecode.ErrInvalidCode) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
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

	if err := app.jsonResponse(w, http.StatusOK, toilet); err != nil {
		app.internalServerError(w, r, err)
	}
}
