package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/application/services"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/adapters"
	"github.com/SomSamantray/AI-Script-Creator/infrastructure/gin_interface/controllers"
	"github.com/SomSamantray/AI-Script-Creator/queue"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	zeroLogger := adapters.NewZerologWrapper()

	llmConfig, err := config.GetLLMConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get LLM config")
	}

	ttsConfig, err := config.GetTTSConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get TTS config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	documents, chunks, audioOutputs, publisher := buildStores(zeroLogger)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)
	sourceFetcher := adapters.NewHTTPSourceFetcher(contentFetcher, zeroLogger)
	scriptGenerator := adapters.NewOpenAIScriptGenerator(llmConfig, zeroLogger)
	speechSynthesizer := adapters.NewElevenLabsSpeechSynthesizer(contentFetcher, ttsConfig, zeroLogger)
	transcoder := adapters.NewFFmpegTranscoder(zeroLogger)
	artifacts := adapters.NewLocalArtifactStore(zeroLogger, pipelineConfig.StorageRoot)

	recorder := services.NewProgressRecorder(zeroLogger, documents)
	segmenter := services.NewTextSegmenter(zeroLogger)
	pieceProducer := services.NewAudioPieceProducer(zeroLogger, speechSynthesizer, pipelineConfig.PieceCharacterBudget)
	stitcher := services.NewAudioStitcher(zeroLogger, transcoder)

	deadStore := queue.NewDeadJobStore(queue.DefaultDeadJobRetention)

	onExhausted := func(documentID string, cause error) {
		if err := recorder.RecordFailure(context.Background(), documentID, cause.Error()); err != nil {
			zeroLogger.ErrorWithFields(err, "Failed to record exhausted job failure", map[string]interface{}{
				"document_id": documentID,
			})
		}
	}

	// Queues are built back to front so each worker can enqueue its
	// successor.
	audioWorker := services.NewAudioWorker(zeroLogger, documents, audioOutputs, pieceProducer, stitcher, artifacts, publisher, recorder, pipelineConfig.WorkRoot)
	audioQueue, err := queue.New(queue.Config{
		Name:           "audio-generation",
		Concurrency:    pipelineConfig.AudioConcurrency,
		MaxAttempts:    pipelineConfig.MaxAttempts,
		InitialBackoff: pipelineConfig.InitialBackoff,
		OnExhausted:    onExhausted,
	}, audioWorker.Process, deadStore, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create audio queue")
	}

	scriptWorker := services.NewScriptWorker(zeroLogger, documents, chunks, audioOutputs, scriptGenerator, recorder, audioQueue)
	scriptQueue, err := queue.New(queue.Config{
		Name:           "script-generation",
		Concurrency:    pipelineConfig.ScriptConcurrency,
		MaxAttempts:    pipelineConfig.MaxAttempts,
		InitialBackoff: pipelineConfig.InitialBackoff,
		OnExhausted:    onExhausted,
	}, scriptWorker.Process, deadStore, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create script queue")
	}

	contentWorker := services.NewContentWorker(zeroLogger, documents, chunks, segmenter, sourceFetcher, recorder, scriptQueue)
	contentQueue, err := queue.New(queue.Config{
		Name:           "document-processing",
		Concurrency:    pipelineConfig.ContentConcurrency,
		MaxAttempts:    pipelineConfig.MaxAttempts,
		InitialBackoff: pipelineConfig.InitialBackoff,
		OnExhausted:    onExhausted,
	}, contentWorker.Process, deadStore, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create content queue")
	}

	orchestrator := services.NewPipelineOrchestrator(zeroLogger, workerPool, contentQueue, scriptQueue, audioQueue, deadStore)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = orchestrator.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start pipeline")
	}
	defer orchestrator.Stop()

	sweeper := services.NewCleanupSweeper(zeroLogger, pipelineConfig.StorageRoot, pipelineConfig.CleanupMaxAge, pipelineConfig.CleanupInterval)
	sweeper.Start(ctx)

	submitter := services.NewDocumentSubmitter(zeroLogger, documents, contentQueue)
	progressBridge := services.NewProgressBridge(zeroLogger, documents, workerPool, pipelineConfig.PollInterval)

	documentsController := controllers.NewDocumentsController(zeroLogger, submitter, progressBridge, documents, audioOutputs, artifacts)

	router := gin.Default()
	if err = router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	documentsController.RegisterRoutes(router)

	if err = router.Run(fmt.Sprintf(":%d", serverConfig.Port)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

// buildStores wires the Dynamo-backed stores when a documents table is
// configured, in-memory stores otherwise. The S3 mirror rides along only in
// Dynamo mode with a bucket configured.
func buildStores(logger outbound.LoggerPort) (outbound.DocumentStorePort, outbound.ChunkStorePort, outbound.AudioOutputStorePort, outbound.ArtifactPublisherPort) {
	if os.Getenv("DYNAMO_DOCUMENTS_TABLE") == "" {
		logger.Warn("No Dynamo tables configured, using in-memory stores")
		return adapters.NewMemoryDocumentStore(), adapters.NewMemoryChunkStore(), adapters.NewMemoryAudioOutputStore(), nil
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}
	awsConfig, err := config.GetAWSConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get AWS config")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	dynamoClient := dynamodb.New(sess)

	var publisher outbound.ArtifactPublisherPort
	if s3Config := config.GetS3Config(); s3Config.Enabled() {
		publisher = adapters.NewS3ArtifactPublisher(logger, sess, s3Config, awsConfig)
	}

	return adapters.NewDynamoDocumentStore(logger, dynamoClient, dynamoConfig),
		adapters.NewDynamoChunkStore(logger, dynamoClient, dynamoConfig),
		adapters.NewDynamoAudioOutputStore(logger, dynamoClient, dynamoConfig),
		publisher
}
