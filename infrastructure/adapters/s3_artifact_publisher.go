package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// s3ArtifactPublisher mirrors finished audio files to S3. The pipeline keeps
// serving the local copy; a failed upload is logged by the caller and never
// fails the document.
type s3ArtifactPublisher struct {
	logger    outbound.LoggerPort
	s3Svc     *s3.S3
	s3Config  *config.S3Config
	awsConfig *config.AWSConfig
}

func NewS3ArtifactPublisher(logger outbound.LoggerPort, sess *session.Session, s3Config *config.S3Config, awsConfig *config.AWSConfig) outbound.ArtifactPublisherPort {
	return &s3ArtifactPublisher{
		logger:    logger,
		s3Svc:     s3.New(sess),
		s3Config:  s3Config,
		awsConfig: awsConfig,
	}
}

func (s *s3ArtifactPublisher) Publish(ctx context.Context, documentID string, filePath string) (string, error) {
	itemPath := fmt.Sprintf("documents/%s/audio/final.mp3", documentID)

	file, err := os.Open(filePath)
	if err != nil {
		s.logger.Error(err, "Failed to open audio file for upload")
		return "", err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Error(closeErr, "Failed to close audio file")
		}
	}()

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(itemPath),
		Body:        file,
		ContentType: aws.String("audio/mpeg"),
	}

	if _, err = s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.Error(err, "Failed to upload audio file to S3")
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.awsConfig.Region, itemPath), nil
}
