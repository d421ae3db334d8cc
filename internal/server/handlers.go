package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/internal/metrics"
)

type solveResponse struct {
	Letters string   `json:"letters"`
	Count   int      `json:"count"`
	Words   []string `json:"words"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Char     string `json:"char,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"words": s.finder.NumWords(),
		"nodes": s.finder.NumNodes(),
	})
}

func (s *Server) solve(c *gin.Context) {
	letters := c.Query("letters")
	order, err := ParseOrder(c.DefaultQuery("sort", string(OrderAlpha)))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if s.maxLetters > 0 && len(letters) > s.maxLetters {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("board has %d letters; at most %d allowed", len(letters), s.maxLetters),
		})
		return
	}

	start := time.Now()
	words, err := s.solver.Solve(letters)
	metrics.ObserveSolve(len(words), time.Since(start), err)

	var invalid *wordpool.InvalidCharacterError
	if errors.As(err, &invalid) {
		pos := invalid.Position
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:    err.Error(),
			Char:     string(invalid.Char),
			Position: &pos,
		})
		return
	}
	if err != nil {
		s.log.Error("Failed to solve board", err, "letters", letters)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	if words == nil {
		words = []string{}
	}
	SortWords(words, order)
	c.JSON(http.StatusOK, solveResponse{
		Letters: letters,
		Count:   len(words),
		Words:   words,
	})
}

func (s *Server) word(c *gin.Context) {
	word := c.Param("word")
	c.JSON(http.StatusOK, gin.H{
		"word":  word,
		"found": s.finder.Contains(word),
	})
}
