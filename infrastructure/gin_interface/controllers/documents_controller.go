package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/inbound"
	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/application/services"
	"github.com/SomSamantray/AI-Script-Creator/domain"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type DocumentsController interface {
	SubmitDocument(c *gin.Context)
	GetDocument(c *gin.Context)
	StreamProgress(c *gin.Context)
	GetAudioOutput(c *gin.Context)
	DownloadAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type documentsController struct {
	logger       outbound.LoggerPort
	submitter    inbound.DocumentSubmitterPort
	progressFeed inbound.ProgressFeedPort
	documents    outbound.DocumentStorePort
	audioOutputs outbound.AudioOutputStorePort
	artifacts    outbound.ArtifactStorePort
}

func NewDocumentsController(
	logger outbound.LoggerPort,
	submitter inbound.DocumentSubmitterPort,
	progressFeed inbound.ProgressFeedPort,
	documents outbound.DocumentStorePort,
	audioOutputs outbound.AudioOutputStorePort,
	artifacts outbound.ArtifactStorePort,
) DocumentsController {
	return &documentsController{
		logger:       logger,
		submitter:    submitter,
		progressFeed: progressFeed,
		documents:    documents,
		audioOutputs: audioOutputs,
		artifacts:    artifacts,
	}
}

func (d *documentsController) SubmitDocument(c *gin.Context) {
	var req dto.SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := d.submitter.Submit(c.Request.Context(), inbound.SubmitDocumentParams{
		Title:     req.Title,
		InputType: domain.InputType(req.InputType),
		Content:   req.Content,
		FileURL:   req.FileURL,
	})
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		d.logger.Error(err, "Failed to submit document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit document"})
		return
	}

	c.JSON(http.StatusAccepted, dto.SubmitDocumentResponse{
		DocumentID: doc.ID,
		Status:     string(doc.Status),
	})
}

func (d *documentsController) GetDocument(c *gin.Context) {
	doc, err := d.documents.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		d.logger.Error(err, "Failed to fetch document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document"})
		return
	}

	c.JSON(http.StatusOK, dto.DocumentResponse{
		DocumentID:         doc.ID,
		Title:              doc.Title,
		InputType:          string(doc.InputType),
		Status:             string(doc.Status),
		ProgressPercentage: doc.ProgressPercentage,
		CurrentStep:        doc.CurrentStep,
		ErrorMessage:       doc.ErrorMessage,
		CreatedAt:          doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          doc.UpdatedAt.Format(time.RFC3339),
	})
}

// StreamProgress writes newline-delimited JSON progress frames until the
// document reaches a terminal status or the client goes away.
func (d *documentsController) StreamProgress(c *gin.Context) {
	events, err := d.progressFeed.Stream(c.Request.Context(), c.Param("id"))
	if err != nil {
		d.logger.Error(err, "Failed to open progress stream")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open progress stream"})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	flusher, canFlush := c.Writer.(http.Flusher)

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				d.logger.Error(err, "Failed to marshal progress event")
				return
			}
			if _, err = c.Writer.Write(append(payload, '\n')); err != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
	}
}

func (d *documentsController) GetAudioOutput(c *gin.Context) {
	output, err := d.audioOutputs.GetByDocumentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audio output not found"})
			return
		}
		d.logger.Error(err, "Failed to fetch audio output")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audio output"})
		return
	}

	c.JSON(http.StatusOK, dto.AudioOutputResponse{
		DocumentID:      output.DocumentID,
		ScriptText:      output.ScriptText,
		AudioURL:        output.AudioURL,
		DurationSeconds: output.DurationSeconds,
		FileSizeBytes:   output.FileSizeBytes,
	})
}

func (d *documentsController) DownloadAudio(c *gin.Context) {
	documentID := c.Param("id")
	output, err := d.audioOutputs.GetByDocumentID(c.Request.Context(), documentID)
	if err != nil {
		if errors.Is(err, outbound.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audio output not found"})
			return
		}
		d.logger.Error(err, "Failed to fetch audio output")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audio output"})
		return
	}
	if output.AudioURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Audio not generated yet"})
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.Header("Content-Disposition", `attachment; filename="final.mp3"`)
	c.File(d.artifacts.FilePath(documentID))
}

func (d *documentsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/documents", d.SubmitDocument)
	g.GET("/api/documents/:id", d.GetDocument)
	g.GET("/api/documents/:id/progress", d.StreamProgress)
	g.GET("/api/audio/:id", d.GetAudioOutput)
	g.GET("/api/audio/:id/download", d.DownloadAudio)
}
