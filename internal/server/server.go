// Package server maps the translation service onto HTTP with gin. The
// translate handler accepts form or JSON bodies and serves the same
// contract on both of its routes.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/valpere/medtran/internal"
	"github.com/valpere/medtran/internal/logging"
	"github.com/valpere/medtran/internal/service"
)

const indexBody = "<h1>medtran is running: medical-domain English/French machine translation</h1>"

// supportedLanguages maps accepted translate_to values to display names.
var supportedLanguages = gin.H{
	"french":  "French",
	"fr":      "French",
	"english": "English",
	"en":      "English",
}

type translateForm struct {
	TranslateTo        string `form:"translate_to" json:"translate_to"`
	EnglishText        string `form:"english_text" json:"english_text"`
	FrenchText         string `form:"french_text" json:"french_text"`
	GroundTruthEnglish string `form:"ground_truth_english" json:"ground_truth_english"`
	GroundTruthFrench  string `form:"ground_truth_french" json:"ground_truth_french"`
}

// frenchResponse and englishResponse fix the success payload key order:
// text first, then the two scores. Scores are JSON null unless computed.
type frenchResponse struct {
	FrenchText string   `json:"french_text"`
	Meteor     *float64 `json:"meteor_score"`
	BLEU       *float64 `json:"bleu_score"`
}

type englishResponse struct {
	EnglishText string   `json:"english_text"`
	Meteor      *float64 `json:"meteor_score"`
	BLEU        *float64 `json:"bleu_score"`
}

type errorResponse struct {
	Result  bool   `json:"Result"`
	Message string `json:"Message"`
}

// NewRouter wires the routes and middleware around the service. Callers
// set gin's mode before this.
func NewRouter(svc *service.Service) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), logging.GinLogger(), logging.GinRecovery())

	r.GET("/", index)
	r.GET("/api/languages", languages)

	h := &handler{svc: svc}
	r.POST("/translate", h.translate)
	r.POST("/ai/translate/fr-en", h.translate)

	return r
}

// requestID tags every request with a uuid, echoed in the X-Request-ID
// response header and picked up by the request logger.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(logging.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexBody))
}

func languages(c *gin.Context) {
	c.JSON(http.StatusOK, supportedLanguages)
}

type handler struct {
	svc *service.Service
}

func (h *handler) translate(c *gin.Context) {
	var form translateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.svc.Translate(c.Request.Context(), service.Request{
		ID:                 c.GetString(logging.RequestIDKey),
		TargetLanguage:     form.TranslateTo,
		EnglishText:        form.EnglishText,
		FrenchText:         form.FrenchText,
		GroundTruthEnglish: form.GroundTruthEnglish,
		GroundTruthFrench:  form.GroundTruthFrench,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error()})
		return
	}

	// The success key names the target language's text field. ParseTarget
	// cannot fail here: the service already validated the same value.
	d, _ := internal.ParseTarget(form.TranslateTo)
	if d == internal.ToEnglish {
		c.JSON(http.StatusOK, englishResponse{
			EnglishText: result.TranslatedText,
			Meteor:      result.Meteor,
			BLEU:        result.BLEU,
		})
		return
	}
	c.JSON(http.StatusOK, frenchResponse{
		FrenchText: result.TranslatedText,
		Meteor:     result.Meteor,
		BLEU:       result.BLEU,
	})
}
