package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brewsearch/brew/core"
	"github.com/brewsearch/brew/message"
)

const defaultNumResults = 10

type searchRequest struct {
	Query      string `json:"query"`
	NumResults int    `json:"num_results"`
}

type generateRequest struct {
	Profile     *core.Profile `json:"profile"`
	Tone        string        `json:"tone"`
	YourContext string        `json:"yourContext"`
}

// searchHit is a profile with its similarity score attached. Raw
// vectors live outside the profile, so nothing here leaks them.
type searchHit struct {
	*core.Profile
	SimilarityScore float64 `json:"similarity_score"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Brew Search Service", "status": "running"})
}

func (s *Server) handleHealth(c *gin.Context) {
	index := s.searcher.Index()
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"profiles_loaded":    index.Len(),
		"embeddings_loaded":  index.Len(),
		"backend_configured": s.searcher.Backend(),
	})
}

func (s *Server) handleSearchGet(c *gin.Context) {
	numResults := defaultNumResults
	if raw := c.Query("num_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "num_results must be an integer"})
			return
		}
		numResults = n
	}

	s.runSearch(c, c.Query("query"), numResults)
}

func (s *Server) handleSearchPost(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if req.NumResults == 0 {
		req.NumResults = defaultNumResults
	}

	s.runSearch(c, req.Query, req.NumResults)
}

func (s *Server) runSearch(c *gin.Context, query string, numResults int) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	results, err := s.searcher.Search(ctx, query, numResults)
	if err != nil {
		s.writeSearchError(c, err)
		return
	}

	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{Profile: r.Profile, SimilarityScore: r.Score})
	}
	c.JSON(http.StatusOK, hits)
}

func (s *Server) handleProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid profile id"})
		return
	}

	profile, err := s.searcher.Index().Profile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleProfiles(c *gin.Context) {
	index := s.searcher.Index()
	profiles := index.Profiles()

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit < len(profiles) {
			profiles = profiles[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    index.Len(),
		"profiles": profiles,
	})
}

func (s *Server) handleGenerateMessage(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	msg, err := s.generator.Generate(ctx, req.Profile, message.Tone(req.Tone), req.YourContext)
	if err != nil {
		s.writeGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (s *Server) writeSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "query parameter is required"})
	case errors.Is(err, core.ErrBackendNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "embedding backend not configured"})
	default:
		s.logger.Error("search failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "search failed"})
	}
}

func (s *Server) writeGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, message.ErrProfileRequired), errors.Is(err, message.ErrSenderContextRequired):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "profile and yourContext are required"})
	case errors.Is(err, core.ErrBackendNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "generation backend not configured"})
	default:
		s.logger.Error("message generation failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to generate message"})
	}
}
