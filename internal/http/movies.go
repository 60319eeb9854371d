package http

import (
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"movievault/internal/domain"
	"movievault/internal/storage"
)

type createMovieRequest struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Poster   string   `json:"poster"`
	FullPlot string   `json:"fullplot"`
	Genres   []string `json:"genres"`
}

// updateMovieRequest is the PATCH allow-list. Fields outside it are ignored,
// and a body touching none of them is rejected.
type updateMovieRequest struct {
	Title    *string `json:"title"`
	Year     *int    `json:"year"`
	Poster   *string `json:"poster"`
	FullPlot *string `json:"fullplot"`
}

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genres      []string `json:"genres"`
	Poster      string   `json:"poster,omitempty"`
	FullPlot    string   `json:"fullplot,omitempty"`
	LastUpdated string   `json:"lastupdated,omitempty"`
}

// listMovies serves both a by-id lookup (?id=) and a filtered listing. The
// listing projects id/title/year/genres only; the single item carries the full
// document, matching the two projections of the original surface.
func (h *Handler) listMovies(c *gin.Context) {
	if rawID := c.Query("id"); rawID != "" {
		id, ok := resourceID(c, rawID)
		if !ok {
			return
		}
		movie, err := h.movies.Get(c.Request.Context(), id)
		if err != nil {
			h.respondServiceError(c, err)
			return
		}
		respondOK(c, http.StatusOK, "movie fetched successfully", movieToResponse(*movie, true))
		return
	}

	filter := domain.MovieFilter{
		TitlePrefix: strings.TrimSpace(c.Query("name")),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			filter.Year = year
		}
	}
	filter.Genres = genreList(c)

	movies, err := h.movies.List(c.Request.Context(), filter)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	resp := make([]MovieResponse, len(movies))
	for i := range movies {
		resp[i] = movieToResponse(movies[i], false)
	}
	respondOK(c, http.StatusOK, "movies fetched successfully", resp)
}

// genreList accepts both repeated genres params and a comma separated value.
func genreList(c *gin.Context) []string {
	var genres []string
	for _, raw := range c.QueryArray("genres") {
		for _, g := range strings.Split(raw, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}
	}
	return genres
}

func (h *Handler) createMovie(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.movies.Create(c.Request.Context(), &domain.Movie{
		Title:    req.Title,
		Year:     req.Year,
		Poster:   req.Poster,
		FullPlot: req.FullPlot,
		Genres:   req.Genres,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "movie add successful", movieToResponse(*movie, true))
}

func (h *Handler) updateMovie(c *gin.Context) {
	id, ok := resourceID(c, c.Param("id"))
	if !ok {
		return
	}

	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body")
		return
	}

	movie, err := h.movies.Update(c.Request.Context(), id, domain.MovieUpdate{
		Title:    req.Title,
		Year:     req.Year,
		Poster:   req.Poster,
		FullPlot: req.FullPlot,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "movie updated successfully", movieToResponse(*movie, true))
}

func (h *Handler) deleteMovie(c *gin.Context) {
	id, ok := resourceID(c, c.Param("id"))
	if !ok {
		return
	}

	movie, err := h.movies.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	if h.storage != nil {
		h.deleteStoredPoster(c, movie.Poster)
	}

	respondOK(c, http.StatusOK, "movie deleted successfully", movieToResponse(*movie, true))
}

// deleteStoredPoster best-effort removes an uploaded poster object. External
// poster URLs are left alone.
func (h *Handler) deleteStoredPoster(c *gin.Context, poster string) {
	bucket, key, err := storage.ParseLocation(poster)
	if err != nil {
		return
	}
	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()
	if err := h.storage.DeleteObject(ctx, bucket, key); err != nil {
		h.logger.WithError(err).Warn("delete stored poster")
	}
}

func (h *Handler) uploadPoster(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		respondErr(c, http.StatusBadRequest, "poster storage not configured")
		return
	}

	id, ok := resourceID(c, c.Param("id"))
	if !ok {
		return
	}

	// existence first, so a bad id never leaves an orphan object
	if _, err := h.movies.Get(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("poster")
	if err != nil {
		respondErr(c, http.StatusBadRequest, "poster file is required")
		return
	}
	defer file.Close()

	key := path.Join(h.keyPrefix, "posters", id)
	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	location, err := h.storage.PutObject(ctx, h.bucket, key, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.WithError(err).Error("upload poster")
		respondErr(c, http.StatusInternalServerError, "internal server error")
		return
	}

	movie, err := h.movies.SetPoster(c.Request.Context(), id, location)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "poster uploaded successfully", movieToResponse(*movie, true))
}

func (h *Handler) posterURL(c *gin.Context) {
	id, ok := resourceID(c, c.Param("id"))
	if !ok {
		return
	}

	movie, err := h.movies.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	if movie.Poster == "" {
		respondErr(c, http.StatusNotFound, "poster not set")
		return
	}

	bucket, key, err := storage.ParseLocation(movie.Poster)
	if err != nil {
		// plain external URL, hand it back as-is
		respondOK(c, http.StatusOK, "poster fetched successfully", gin.H{"url": movie.Poster})
		return
	}

	if h.storage == nil {
		respondErr(c, http.StatusBadRequest, "poster storage not configured")
		return
	}

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()
	url, err := h.storage.ObjectURL(ctx, bucket, key, 15*time.Minute)
	if err != nil {
		h.logger.WithError(err).Error("presign poster")
		respondErr(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respondOK(c, http.StatusOK, "poster fetched successfully", gin.H{"url": url})
}

func movieToResponse(movie domain.Movie, full bool) MovieResponse {
	resp := MovieResponse{
		ID:     movie.ID,
		Title:  movie.Title,
		Year:   movie.Year,
		Genres: movie.Genres,
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if full {
		resp.Poster = movie.Poster
		resp.FullPlot = movie.FullPlot
		resp.LastUpdated = movie.LastUpdated.Format(time.RFC3339)
	}
	return resp
}
